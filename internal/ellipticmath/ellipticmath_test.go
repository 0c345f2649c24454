package ellipticmath

import (
	"math"
	"math/cmplx"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLandenFixedSteps(t *testing.T) {
	v := Landen(0.5, Steps)
	if len(v) != Steps {
		t.Fatalf("len = %d, want %d", len(v), Steps)
	}

	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			t.Fatalf("not monotonically decreasing at %d: %e >= %e", i, v[i], v[i-1])
		}
	}

	if v[len(v)-1] > 1e-15 {
		t.Fatalf("last modulus = %e, expected < 1e-15", v[len(v)-1])
	}
}

func TestLandenLimits(t *testing.T) {
	if v := Landen(0, Steps); len(v) != 1 || v[0] != 0 {
		t.Fatalf("Landen(0) = %v, want [0]", v)
	}

	if v := Landen(1, Steps); len(v) != 1 || v[0] != 1 {
		t.Fatalf("Landen(1) = %v, want [1]", v)
	}
}

func TestEllipKKnownValues(t *testing.T) {
	K, Kp := EllipK(0, Steps)
	if !almostEqual(K, math.Pi/2, 1e-12) {
		t.Fatalf("K(0) = %v, want pi/2", K)
	}

	if !math.IsInf(Kp, 1) {
		t.Fatalf("K'(0) = %v, want +Inf", Kp)
	}

	// K(1/sqrt2) = Gamma(1/4)^2 / (4 sqrt(pi))
	want := math.Pow(math.Gamma(0.25), 2) / (4 * math.Sqrt(math.Pi))

	K, Kp = EllipK(1/math.Sqrt2, Steps)
	if !almostEqual(K, want, 1e-10) || !almostEqual(Kp, want, 1e-10) {
		t.Fatalf("K(1/sqrt2) = (%v, %v), want %v", K, Kp, want)
	}

	if K1, _ := EllipK(1, Steps); !math.IsInf(K1, 1) {
		t.Fatalf("K(1) = %v, want +Inf", K1)
	}
}

func TestCDEEndpoints(t *testing.T) {
	const k = 0.7

	if cd := CDE(0, k, Steps); !almostEqual(real(cd), 1, 1e-12) {
		t.Fatalf("cd(0) = %v, want 1", cd)
	}

	if cd := CDE(1, k, Steps); cmplx.Abs(cd) > 1e-12 {
		t.Fatalf("cd(K) = %v, want 0", cd)
	}
}

func TestSNEMatchesRealForm(t *testing.T) {
	const k = 0.6

	u := []float64{0, 0.25, 0.5, 0.75, 1}
	real64 := SNEReal(u, k, Steps)

	for i, x := range u {
		c := SNE(complex(x, 0), k, Steps)
		if !almostEqual(real(c), real64[i], 1e-14) || math.Abs(imag(c)) > 1e-14 {
			t.Fatalf("sn(%v): complex %v vs real %v", x, c, real64[i])
		}
	}

	if !almostEqual(real64[0], 0, 1e-15) || !almostEqual(real64[4], 1, 1e-12) {
		t.Fatalf("sn endpoints = %v, %v", real64[0], real64[4])
	}
}

func TestACDEInvertsCDE(t *testing.T) {
	const k = 0.5

	for _, u := range []float64{0.2, 0.5, 0.8} {
		w := CDE(complex(u, 0), k, Steps)
		got := ACDE(w, k, Steps)

		if !almostEqual(real(got), u, 1e-8) || math.Abs(imag(got)) > 1e-8 {
			t.Fatalf("acd(cd(%v)) = %v", u, got)
		}
	}
}

func TestASNEInvertsSNEImaginary(t *testing.T) {
	const k = 0.4

	// sn of an imaginary argument is imaginary; asne must recover it.
	u := complex(0, 0.3)
	w := SNE(u, k, Steps)
	got := ASNE(w, k, Steps)

	if cmplx.Abs(got-u) > 1e-8 {
		t.Fatalf("asn(sn(%v)) = %v", u, got)
	}
}

func TestEllipDegSolvesDegreeEquation(t *testing.T) {
	for _, tc := range []struct {
		n  int
		k1 float64
	}{
		{2, 0.5},
		{4, 0.3},
		{5, 0.05},
	} {
		k := EllipDeg(tc.n, tc.k1, Steps)
		if k <= 0 || k >= 1 {
			t.Fatalf("EllipDeg(%d, %v) = %v out of (0,1)", tc.n, tc.k1, k)
		}

		K, Kp := EllipK(k, Steps)
		K1, K1p := EllipK(tc.k1, Steps)

		lhs := float64(tc.n) * Kp / K
		rhs := K1p / K1
		if !almostEqual(lhs, rhs, 1e-5*rhs) {
			t.Fatalf("n=%d: N*K'/K = %v, K1'/K1 = %v", tc.n, lhs, rhs)
		}
	}
}

func TestEllipDegSmallK1UsesNomeSeries(t *testing.T) {
	for _, n := range []int{2, 4, 8} {
		k := EllipDeg(n, 1e-8, Steps)
		if k <= 0 || k >= 1 || math.IsNaN(k) {
			t.Fatalf("EllipDeg(%d, 1e-8) = %v", n, k)
		}
	}
}

func TestSymmetricRemainder(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{0.5, 4, 0.5},
		{-0.5, 4, -0.5},
		{5, 4, 1},
		{-5, 4, -1},
		{3.5, 4, -0.5},
	}

	for _, tt := range tests {
		if got := symmetricRemainder(tt.x, tt.y); !almostEqual(got, tt.want, 1e-12) {
			t.Fatalf("symmetricRemainder(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
