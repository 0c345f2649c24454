package biquad

import (
	"math/cmplx"
	"testing"
)

func TestPoleZeroPairSecondOrder(t *testing.T) {
	// (z - 0.7 -+ 0.2j) poles, (z - 0.3 -+ 0.4j) zeros.
	c := Coefficients{B0: 1, B1: -0.6, B2: 0.25, A1: -1.4, A2: 0.53}
	pz := c.PoleZeroPair()

	if !sameRootSet(pz.Poles, [2]complex128{complex(0.7, 0.2), complex(0.7, -0.2)}, 1e-12) {
		t.Fatalf("poles = %v", pz.Poles)
	}
	if !sameRootSet(pz.Zeros, [2]complex128{complex(0.3, 0.4), complex(0.3, -0.4)}, 1e-12) {
		t.Fatalf("zeros = %v", pz.Zeros)
	}
}

func TestPoleZeroPairFirstOrder(t *testing.T) {
	c := Coefficients{B0: 1, B1: -0.2, A1: -0.8}
	pz := c.PoleZeroPair()

	if pz.Poles != [2]complex128{0.8, 0} {
		t.Fatalf("poles = %v", pz.Poles)
	}
	if pz.Zeros != [2]complex128{0.2, 0} {
		t.Fatalf("zeros = %v", pz.Zeros)
	}

	// Leading B0 = 0 is a pure delay times a first-order numerator.
	if z := (Coefficients{B1: 1, B2: 0.5}).Zeros(); z != [2]complex128{-0.5, 0} {
		t.Fatalf("degenerate zeros = %v", z)
	}
}

func TestPoleZeroPairsChainAndSliceAgree(t *testing.T) {
	coeffs := twoSectionCoeffs()
	a := PoleZeroPairs(coeffs)
	b := NewChain(coeffs).PoleZeroPairs()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("section %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		c    Coefficients
		want bool
	}{
		{smooth, true},
		{Coefficients{B0: 1, A1: -1.4, A2: 0.53}, true},
		{Coefficients{B0: 1, A1: -2, A2: 1}, false},
		{Coefficients{B0: 1, A1: -1.1}, false},
		{Coefficients{B0: 1, A2: 1.2}, false},
		{Coefficients{B0: 1, A1: 0.5, A2: -0.4}, true},
	}

	for _, tt := range tests {
		if got := tt.c.IsStable(); got != tt.want {
			t.Errorf("%+v: IsStable = %v, want %v", tt.c, got, tt.want)
		}

		p := tt.c.Poles()
		inside := cmplx.Abs(p[0]) < 1 && cmplx.Abs(p[1]) < 1
		if inside != tt.want {
			t.Errorf("%+v: poles %v disagree with triangle test", tt.c, p)
		}
	}
}

func sameRootSet(a, b [2]complex128, tol float64) bool {
	direct := cmplx.Abs(a[0]-b[0]) <= tol && cmplx.Abs(a[1]-b[1]) <= tol
	swapped := cmplx.Abs(a[0]-b[1]) <= tol && cmplx.Abs(a[1]-b[0]) <= tol
	return direct || swapped
}
