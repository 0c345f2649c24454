package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(e^jw) at normalized angular frequency w in
// radians/sample (pi is Nyquist).
func (c Coefficients) Response(w float64) complex128 {
	z1 := cmplx.Rect(1, -w)
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// MagnitudeSquared returns |H(e^jw)|^2 in closed form, without complex
// exponentials.
func (c Coefficients) MagnitudeSquared(w float64) float64 {
	cw := 2 * math.Cos(w)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw

	return num / den
}

// MagnitudeDB returns 10*log10(|H|^2).
func (c Coefficients) MagnitudeDB(w float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(w))
}

// Phase returns arg H(e^jw) in [-pi, pi].
func (c Coefficients) Phase(w float64) float64 {
	return cmplx.Phase(c.Response(w))
}

// Response is the product of the section responses times the chain gain.
func (c *Chain) Response(w float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(w)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(w float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(w)))
}

// ImpulseResponse returns the first n samples of the section's impulse
// response. The running state is left untouched.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	tmp := Section{Coefficients: s.Coefficients}
	ir := make([]float64, n)
	ir[0] = 1
	tmp.ProcessBlock(ir)

	return ir
}

// ImpulseResponse returns the first n samples of the cascade impulse
// response. The running state is left untouched.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	c.Reset()

	ir := make([]float64, n)
	ir[0] = 1
	c.ProcessBlock(ir)

	_ = c.SetState(saved)

	return ir
}
