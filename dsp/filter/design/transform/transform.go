package transform

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrInvalidSpec is returned for frequencies outside (0, 0.5), inverted band
// edges and mismatched real/imaginary arrays.
var ErrInvalidSpec = errors.New("transform: invalid specification")

// Prewarp returns tan(pi*f) for a normalized frequency 0 < f < 0.5.
func Prewarp(f float64) (float64, error) {
	if !(f > 0 && f < 0.5) {
		return 0, fmt.Errorf("%w: frequency %g outside (0, 0.5)", ErrInvalidSpec, f)
	}
	return math.Tan(math.Pi * f), nil
}

func prewarpBand(f1, f2 float64) (w0, bw float64, err error) {
	w1, err := Prewarp(f1)
	if err != nil {
		return 0, 0, err
	}

	w2, err := Prewarp(f2)
	if err != nil {
		return 0, 0, err
	}

	if !(w2 > w1) {
		return 0, 0, fmt.Errorf("%w: band edges %g >= %g", ErrInvalidSpec, f1, f2)
	}

	return math.Sqrt(w1 * w2), w2 - w1, nil
}

// Lowpass scales every root by the pre-warped cutoff tan(pi*f).
func Lowpass(roots []complex128, f float64) ([]complex128, error) {
	wc, err := Prewarp(f)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(roots))
	for i, r := range roots {
		if cmplx.IsInf(r) {
			out[i] = r
			continue
		}
		out[i] = r * complex(wc, 0)
	}

	return out, nil
}

// Highpass substitutes s -> wc/s: every root r becomes wc/r. Infinite roots
// move to the origin and roots at the origin move to infinity.
func Highpass(roots []complex128, f float64) ([]complex128, error) {
	wc, err := Prewarp(f)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(roots))
	for i, r := range roots {
		switch {
		case cmplx.IsInf(r):
			out[i] = 0
		case r == 0:
			out[i] = cmplx.Inf()
		default:
			out[i] = complex(wc, 0) / r
		}
	}

	return out, nil
}

// split returns alpha +- sqrt(alpha^2 - w0^2), which equals alpha(1 +- beta)
// with beta = sqrt(1 - (w0/alpha)^2) and stays defined for alpha = 0.
func split(alpha complex128, w0 float64) (complex128, complex128) {
	d := cmplx.Sqrt(alpha*alpha - complex(w0*w0, 0))
	return alpha + d, alpha - d
}

// Bandpass maps every root onto the band [f1, f2] with
// s -> (s^2 + w0^2)/(bw*s), w0 = sqrt(w1*w2), bw = w2-w1. Each root yields
// two: alpha(1 +- beta) with alpha = bw/2 * r. Infinite roots yield a root at
// the origin and one at infinity.
func Bandpass(roots []complex128, f1, f2 float64) ([]complex128, error) {
	w0, bw, err := prewarpBand(f1, f2)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, 0, 2*len(roots))
	for _, r := range roots {
		if cmplx.IsInf(r) {
			out = append(out, 0, cmplx.Inf())
			continue
		}

		a, b := split(complex(bw/2, 0)*r, w0)
		out = append(out, a, b)
	}

	return out, nil
}

// Bandstop maps every root onto the stop band [f1, f2] with
// s -> bw*s/(s^2 + w0^2). Each root r yields alpha(1 +- beta) with
// alpha = bw/(2r). Infinite roots yield the notch pair +-j*w0.
func Bandstop(roots []complex128, f1, f2 float64) ([]complex128, error) {
	w0, bw, err := prewarpBand(f1, f2)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, 0, 2*len(roots))
	for _, r := range roots {
		switch {
		case cmplx.IsInf(r):
			out = append(out, complex(0, w0), complex(0, -w0))
		case r == 0:
			out = append(out, 0, cmplx.Inf())
		default:
			a, b := split(complex(bw/2, 0)/r, w0)
			out = append(out, a, b)
		}
	}

	return out, nil
}
