package biquad

import (
	"math"
	"math/cmplx"
)

// PoleZeroPair stores the two poles and two zeros of one section. A
// first-order section reports 0 for the missing root.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the roots of 1 + A1*z^-1 + A2*z^-2.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 + B1*z^-1 + B2*z^-2.
func (c Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{Poles: c.Poles(), Zeros: c.Zeros()}
}

// IsStable reports whether both poles lie strictly inside the unit circle.
// It uses the stability triangle so no roots are computed.
func (c Coefficients) IsStable() bool {
	return c.A2 < 1 && math.Abs(c.A1) < 1+c.A2
}

// PoleZeroPairs returns one entry per coefficient set.
func PoleZeroPairs(coeffs []Coefficients) []PoleZeroPair {
	out := make([]PoleZeroPair, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i].PoleZeroPair()
	}

	return out
}

// PoleZeroPairs returns one entry per chain section.
func (c *Chain) PoleZeroPairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].PoleZeroPair()
	}

	return out
}

// quadraticRoots solves a*z^2 + b*z + c = 0, which shares its roots with
// a + b*z^-1 + c*z^-2. A vanishing leading term degrades to first order.
func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	if c == 0 {
		return [2]complex128{complex(-b/a, 0), 0}
	}

	d := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + d) / den,
		(-complex(b, 0) - d) / den,
	}
}
