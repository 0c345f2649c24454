package transform

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Bilinear maps analog roots, given as parallel real and imaginary arrays,
// to the z-plane in place with z = (1+s)/(1-s). A root at infinity (either
// component infinite) maps to z = -1. Frequencies must already be
// pre-warped.
func Bilinear(re, im []float64) error {
	if len(re) != len(im) {
		return fmt.Errorf("%w: %d real and %d imaginary parts", ErrInvalidSpec, len(re), len(im))
	}

	for i := range re {
		if math.IsInf(re[i], 0) || math.IsInf(im[i], 0) {
			re[i], im[i] = -1, 0
			continue
		}

		s := complex(re[i], im[i])
		if s == 1 {
			return fmt.Errorf("%w: root at s = 1 maps to infinity", ErrInvalidSpec)
		}

		z := (1 + s) / (1 - s)
		re[i], im[i] = real(z), imag(z)
	}

	return nil
}

// BilinearRoots is [Bilinear] for a complex slice. The input is not
// modified.
func BilinearRoots(roots []complex128) ([]complex128, error) {
	re := make([]float64, len(roots))
	im := make([]float64, len(roots))

	for i, r := range roots {
		if cmplx.IsInf(r) {
			re[i] = math.Inf(1)
			continue
		}
		re[i], im[i] = real(r), imag(r)
	}

	if err := Bilinear(re, im); err != nil {
		return nil, err
	}

	out := make([]complex128, len(roots))
	for i := range out {
		out[i] = complex(re[i], im[i])
	}

	return out, nil
}
