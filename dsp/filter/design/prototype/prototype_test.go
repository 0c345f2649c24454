package prototype

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// analogGain returns |H(jw)| for the pole/zero set, skipping zeros at
// infinity.
func analogGain(p Prototype, w float64) float64 {
	s := complex(0, w)
	h := complex(1, 0)

	for _, z := range p.Zeros {
		if cmplx.IsInf(z) {
			continue
		}
		h *= s - z
	}

	for _, q := range p.Poles {
		h /= s - q
	}

	return cmplx.Abs(h)
}

func assertLeftHalfPlane(t *testing.T, poles []complex128) {
	t.Helper()
	for i, p := range poles {
		if real(p) >= 0 || cmplx.IsNaN(p) {
			t.Fatalf("pole %d = %v not in the left half plane", i, p)
		}
	}
}

func assertConjugateSymmetric(t *testing.T, roots []complex128) {
	t.Helper()
	n := len(roots)
	for k := range n / 2 {
		if roots[n-1-k] != cmplx.Conj(roots[k]) {
			t.Fatalf("roots[%d]=%v and roots[%d]=%v are not conjugate", k, roots[k], n-1-k, roots[n-1-k])
		}
	}
}

func TestPoleAndZeroCounts(t *testing.T) {
	for n := 1; n <= 12; n++ {
		designs := map[string]func() (Prototype, error){
			"butterworth": func() (Prototype, error) { return Butterworth(n) },
			"chebyshev1":  func() (Prototype, error) { return Chebyshev1(n, 1) },
			"chebyshev2":  func() (Prototype, error) { return Chebyshev2(n, 40) },
			"elliptic":    func() (Prototype, error) { return Elliptic(n, 1, 40) },
			"bessel":      func() (Prototype, error) { return Bessel(n) },
		}

		for name, design := range designs {
			p, err := design()
			if err != nil {
				t.Fatalf("%s(%d): %v", name, n, err)
			}

			if p.Order() != n {
				t.Fatalf("%s(%d): %d poles", name, n, p.Order())
			}

			wantZeros := 0
			if name == "chebyshev2" || name == "elliptic" {
				wantZeros = n
			}
			if len(p.Zeros) != wantZeros {
				t.Fatalf("%s(%d): %d zeros, want %d", name, n, len(p.Zeros), wantZeros)
			}

			assertLeftHalfPlane(t, p.Poles)
		}
	}
}

func TestInvalidOrder(t *testing.T) {
	calls := []func() error{
		func() error { _, err := Butterworth(0); return err },
		func() error { _, err := Chebyshev1(-1, 1); return err },
		func() error { _, err := Chebyshev2(0, 40); return err },
		func() error { _, err := Elliptic(0, 1, 40); return err },
		func() error { _, err := Bessel(0); return err },
		func() error { _, err := Bessel(MaxBesselOrder + 1); return err },
	}

	for i, call := range calls {
		if err := call(); !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("case %d: err = %v, want ErrInvalidSpec", i, err)
		}
	}
}

func TestInvalidRipple(t *testing.T) {
	if _, err := Chebyshev1(4, 0); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("Chebyshev1 zero ripple: %v", err)
	}
	if _, err := Chebyshev2(4, -3); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("Chebyshev2 negative stopband: %v", err)
	}
	if _, err := Elliptic(4, 3, 3); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("Elliptic ripple >= stopband: %v", err)
	}
	if _, err := Elliptic(4, math.NaN(), 40); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("Elliptic NaN ripple: %v", err)
	}
}

func TestButterworthUnitCircle(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		p, _ := Butterworth(n)
		assertConjugateSymmetric(t, p.Poles)

		for i, q := range p.Poles {
			if math.Abs(cmplx.Abs(q)-1) > 1e-15 {
				t.Fatalf("n=%d pole %d magnitude %v", n, i, cmplx.Abs(q))
			}
		}

		// -3 dB at the cutoff for every order.
		if g := analogGain(p, 1); math.Abs(g-1/math.Sqrt2) > 1e-12 {
			t.Fatalf("n=%d |H(j1)| = %v", n, g)
		}
	}

	p, _ := Butterworth(3)
	if p.Poles[1] != -1 {
		t.Fatalf("middle pole = %v, want exactly -1", p.Poles[1])
	}
}

func TestChebyshev1Ripple(t *testing.T) {
	const ripple = 0.5
	for _, n := range []int{3, 4, 5} {
		p, err := Chebyshev1(n, ripple)
		if err != nil {
			t.Fatal(err)
		}
		assertConjugateSymmetric(t, p.Poles)

		// Normalize to the passband peak: 1 at DC for odd orders.
		peak := analogGain(p, 0)
		if n%2 == 0 {
			peak *= math.Pow(10, ripple/20)
		}

		edge := 20 * math.Log10(analogGain(p, 1)/peak)
		if math.Abs(edge+ripple) > 1e-9 {
			t.Fatalf("n=%d edge gain %v dB, want %v", n, edge, -ripple)
		}
	}
}

func TestChebyshevFirstOrderPoles(t *testing.T) {
	// Both first-order Chebyshev types reduce to a pole at -1/eps, so the edge
	// at 1 rad/s is down by exactly db.
	for _, db := range []float64{0.5, 1, 3} {
		eps := core.RippleEpsilon(db)

		p1, err := Chebyshev1(1, db)
		if err != nil {
			t.Fatal(err)
		}
		if got := p1.Poles[0]; cmplx.Abs(got-complex(-1/eps, 0)) > 1e-12 {
			t.Fatalf("Chebyshev1(1, %v) pole = %v, want %v", db, got, -1/eps)
		}

		p2, err := Chebyshev2(1, db)
		if err != nil {
			t.Fatal(err)
		}
		if got := p2.Poles[0]; cmplx.Abs(got-complex(-1/eps, 0)) > 1e-12 {
			t.Fatalf("Chebyshev2(1, %v) pole = %v, want %v", db, got, -1/eps)
		}
	}
}

func TestChebyshev2Stopband(t *testing.T) {
	const stop = 40.0
	for _, n := range []int{3, 4, 5} {
		p, err := Chebyshev2(n, stop)
		if err != nil {
			t.Fatal(err)
		}

		dc := analogGain(p, 0)
		for _, w := range []float64{1, 1.2, 2, 5, 20} {
			att := 20 * math.Log10(analogGain(p, w)/dc)
			if att > -stop+1e-9 {
				t.Fatalf("n=%d w=%v attenuation %v dB, want <= -%v", n, w, att, stop)
			}
		}

		for _, z := range p.Zeros {
			if cmplx.IsInf(z) {
				continue
			}
			if real(z) != 0 || math.Abs(imag(z)) < 1 {
				t.Fatalf("n=%d zero %v not on the imaginary axis beyond the edge", n, z)
			}
		}
	}

	p, _ := Chebyshev2(3, stop)
	if !cmplx.IsInf(p.Zeros[1]) {
		t.Fatalf("odd order middle zero = %v, want infinity", p.Zeros[1])
	}
}

func TestEllipticRipple(t *testing.T) {
	const ripple, stop = 1.0, 50.0
	for _, n := range []int{2, 3, 4, 5} {
		p, err := Elliptic(n, ripple, stop)
		if err != nil {
			t.Fatal(err)
		}
		assertConjugateSymmetric(t, p.Poles)

		peak := analogGain(p, 0)
		if n%2 == 0 {
			peak *= math.Pow(10, ripple/20)
		}

		edge := 20 * math.Log10(analogGain(p, 1)/peak)
		if math.Abs(edge+ripple) > 1e-3 {
			t.Fatalf("n=%d passband edge %v dB, want %v", n, edge, -ripple)
		}

		// Passband ripple stays within [-Rp, 0].
		for w := 0.0; w <= 1; w += 0.01 {
			g := 20 * math.Log10(analogGain(p, w)/peak)
			if g > 1e-3 || g < -ripple-1e-3 {
				t.Fatalf("n=%d w=%v passband gain %v dB", n, w, g)
			}
		}

		// Finite zeros are on the imaginary axis outside the passband.
		for _, z := range p.Zeros {
			if cmplx.IsInf(z) {
				continue
			}
			if real(z) != 0 || math.Abs(imag(z)) <= 1 {
				t.Fatalf("n=%d zero %v", n, z)
			}
		}
	}
}

func TestEllipticFirstOrder(t *testing.T) {
	p, err := Elliptic(1, 1, 40)
	if err != nil {
		t.Fatal(err)
	}

	eps := math.Sqrt(math.Pow(10, 0.1) - 1)
	if math.Abs(real(p.Poles[0])+1/eps) > 1e-6 || imag(p.Poles[0]) != 0 {
		t.Fatalf("pole = %v, want %v", p.Poles[0], -1/eps)
	}
	if !cmplx.IsInf(p.Zeros[0]) {
		t.Fatalf("zero = %v, want infinity", p.Zeros[0])
	}
}

func TestBesselCoefficients(t *testing.T) {
	// theta_3(s) = s^3 + 6s^2 + 15s + 15
	got := besselCoefficients(3)
	want := []float64{15, 15, 6, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("C(%d,3) = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBesselPoles(t *testing.T) {
	p, err := Bessel(2)
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range p.Poles {
		if math.Abs(real(q)+math.Sqrt(3)/2) > 1e-12 || math.Abs(math.Abs(imag(q))-0.5) > 1e-12 {
			t.Fatalf("pole %v, want -sqrt(3)/2 +- j/2", q)
		}
	}

	// The product of pole magnitudes is one after scaling.
	for _, n := range []int{3, 6, 10} {
		p, _ := Bessel(n)
		prod := 1.0
		for _, q := range p.Poles {
			prod *= cmplx.Abs(q)
		}
		if math.Abs(prod-1) > 1e-9 {
			t.Fatalf("n=%d pole magnitude product %v", n, prod)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a, _ := Elliptic(6, 0.5, 60)
	b, _ := Elliptic(6, 0.5, 60)
	for i := range a.Poles {
		if a.Poles[i] != b.Poles[i] || a.Zeros[i] != b.Zeros[i] {
			t.Fatal("Elliptic is not deterministic")
		}
	}
}
