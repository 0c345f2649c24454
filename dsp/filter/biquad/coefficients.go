package biquad

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward
	A1, A2     float64 // feedback
}

// Validate reports ErrInvalidCoefficient for non-finite values.
func (c Coefficients) Validate() error {
	if !core.IsFinite([]float64{c.B0, c.B1, c.B2, c.A1, c.A2}) {
		return fmt.Errorf("biquad: %w: %+v", tf.ErrInvalidCoefficient, c)
	}
	return nil
}

// FromTransferFunction converts a transfer function of order <= 2.
func FromTransferFunction(h *tf.TransferFunction) (Coefficients, error) {
	if h.Order() > 2 {
		return Coefficients{}, fmt.Errorf("biquad: %w: order %d exceeds 2", tf.ErrOrderMismatch, h.Order())
	}

	var b, a [3]float64
	copy(b[:], h.Numerator())
	copy(a[:], h.Denominator())

	return Coefficients{B0: b[0], B1: b[1], B2: b[2], A1: a[1], A2: a[2]}, nil
}

// TransferFunction returns the section as a three-tap transfer function.
func (c Coefficients) TransferFunction() (*tf.TransferFunction, error) {
	return tf.New([]float64{c.B0, c.B1, c.B2}, []float64{1, c.A1, c.A2})
}
