package transform

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestPrewarp(t *testing.T) {
	w, err := Prewarp(0.25)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w-1) > 1e-15 {
		t.Fatalf("Prewarp(0.25) = %v, want 1", w)
	}

	for _, f := range []float64{0, -0.1, 0.5, 0.7, math.NaN()} {
		if _, err := Prewarp(f); !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("Prewarp(%v) err = %v", f, err)
		}
	}
}

func TestLowpassScales(t *testing.T) {
	out, err := Lowpass([]complex128{complex(-1, 1), cmplx.Inf()}, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(out[0]-complex(-1, 1)) > 1e-15 || !cmplx.IsInf(out[1]) {
		t.Fatalf("out = %v", out)
	}

	out, _ = Lowpass([]complex128{-1}, 0.1)
	if math.Abs(real(out[0])+math.Tan(0.1*math.Pi)) > 1e-15 {
		t.Fatalf("out = %v", out)
	}
}

func TestHighpassInverts(t *testing.T) {
	in := []complex128{-2, cmplx.Inf(), 0}

	out, err := Highpass(in, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(out[0]+0.5) > 1e-15 || out[1] != 0 || !cmplx.IsInf(out[2]) {
		t.Fatalf("out = %v", out)
	}
	if in[0] != -2 {
		t.Fatal("input modified")
	}
}

func TestBandpassRootsSolveQuadratic(t *testing.T) {
	const f1, f2 = 0.1, 0.2
	w1, w2 := math.Tan(math.Pi*f1), math.Tan(math.Pi*f2)
	w0sq, bw := w1*w2, w2-w1

	p := complex(-0.5, 0.8)
	out, err := Bandpass([]complex128{p, cmplx.Conj(p), cmplx.Inf()}, f1, f2)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	// Each mapped root s satisfies (s^2 + w0^2)/(bw*s) = p.
	for _, s := range out[:2] {
		if got := (s*s + complex(w0sq, 0)) / (complex(bw, 0) * s); cmplx.Abs(got-p) > 1e-12 {
			t.Fatalf("root %v maps back to %v, want %v", s, got, p)
		}
	}

	if out[4] != 0 || !cmplx.IsInf(out[5]) {
		t.Fatalf("infinite root mapped to %v, %v", out[4], out[5])
	}
}

func TestBandstopRootsSolveQuadratic(t *testing.T) {
	const f1, f2 = 0.05, 0.3
	w1, w2 := math.Tan(math.Pi*f1), math.Tan(math.Pi*f2)
	w0sq, bw := w1*w2, w2-w1

	p := complex(-0.3, -1.1)
	out, err := Bandstop([]complex128{p, cmplx.Inf()}, f1, f2)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range out[:2] {
		if got := complex(bw, 0) * s / (s*s + complex(w0sq, 0)); cmplx.Abs(got-p) > 1e-12 {
			t.Fatalf("root %v maps back to %v, want %v", s, got, p)
		}
	}

	w0 := math.Sqrt(w0sq)
	if cmplx.Abs(out[2]-complex(0, w0)) > 1e-15 || cmplx.Abs(out[3]-complex(0, -w0)) > 1e-15 {
		t.Fatalf("infinite root mapped to %v, %v", out[2], out[3])
	}
}

func TestBandEdgesValidated(t *testing.T) {
	if _, err := Bandpass(nil, 0.2, 0.1); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("inverted band: %v", err)
	}
	if _, err := Bandstop(nil, 0.1, 0.6); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("edge above Nyquist: %v", err)
	}
}

func TestBilinear(t *testing.T) {
	re := []float64{0, -1, math.Inf(-1), 0}
	im := []float64{0, 0, 0, 1}

	if err := Bilinear(re, im); err != nil {
		t.Fatal(err)
	}

	want := []complex128{1, 0, -1, complex(0, 1)}
	for i, w := range want {
		if cmplx.Abs(complex(re[i], im[i])-w) > 1e-15 {
			t.Fatalf("root %d -> %v, want %v", i, complex(re[i], im[i]), w)
		}
	}

	if err := Bilinear([]float64{1}, nil); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("mismatch err = %v", err)
	}
	if err := Bilinear([]float64{1}, []float64{0}); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("s=1 err = %v", err)
	}
}

func TestBilinearKeepsStability(t *testing.T) {
	roots := []complex128{complex(-0.1, 3), complex(-2, 0.5), complex(-1e-3, 0), cmplx.Inf()}

	z, err := BilinearRoots(roots)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range z[:3] {
		if cmplx.Abs(r) >= 1 {
			t.Fatalf("root %d -> %v outside the unit circle", i, r)
		}
	}
	if z[3] != -1 {
		t.Fatalf("infinite root -> %v", z[3])
	}
}

func TestBilinearImaginaryAxisToUnitCircle(t *testing.T) {
	// s = j*tan(pi f) lands on e^{j 2 pi f}.
	for _, f := range []float64{0.05, 0.2, 0.45} {
		z, _ := BilinearRoots([]complex128{complex(0, math.Tan(math.Pi*f))})
		want := cmplx.Rect(1, 2*math.Pi*f)
		if cmplx.Abs(z[0]-want) > 1e-12 {
			t.Fatalf("f=%v: %v, want %v", f, z[0], want)
		}
	}
}
