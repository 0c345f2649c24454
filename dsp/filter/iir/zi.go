package iir

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

// Zi is a transposed direct form II filter:
//
//	y    = b[0] x + z[0]
//	z[i] = b[i+1] x - a[i+1] y + z[i+1]
//
// b and a are zero-padded to a common length n, so the state holds n-1
// values.
type Zi struct {
	b, a []float64
	z    []float64
}

// NewZi creates a transposed-state filter. The coefficients are normalized
// by a[0].
func NewZi(b, a []float64) (*Zi, error) {
	nb, na, err := tf.Normalize(b, a)
	if err != nil {
		return nil, err
	}

	pb, pa := pad(nb, na)

	return &Zi{b: pb, a: pa, z: make([]float64, len(pb)-1)}, nil
}

// NewZiFromTransferFunction creates a transposed-state filter for h.
func NewZiFromTransferFunction(h *tf.TransferFunction) (*Zi, error) {
	return NewZi(h.Numerator(), h.Denominator())
}

func pad(b, a []float64) ([]float64, []float64) {
	n := max(len(b), len(a))
	pb := make([]float64, n)
	pa := make([]float64, n)
	copy(pb, b)
	copy(pa, a)

	return pb, pa
}

// ProcessSample filters one input sample.
func (f *Zi) ProcessSample(x float64) float64 {
	if len(f.z) == 0 {
		return f.b[0] * x
	}

	y := f.b[0]*x + f.z[0]

	last := len(f.z) - 1
	for i := range last {
		f.z[i] = f.b[i+1]*x - f.a[i+1]*y + f.z[i+1]
	}
	f.z[last] = f.b[last+1]*x - f.a[last+1]*y

	return y
}

// ProcessBlock filters buf in place.
func (f *Zi) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Zi) ProcessBlockTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("iir: ProcessBlockTo length mismatch: dst=%d src=%d", len(dst), len(src)))
	}

	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset zeroes the state.
func (f *Zi) Reset() {
	clear(f.z)
}

// State returns a copy of the state vector.
func (f *Zi) State() []float64 {
	return core.Clone(f.z)
}

// SetState overwrites the state vector. state must hold Order() values.
func (f *Zi) SetState(state []float64) error {
	if len(state) != len(f.z) {
		return fmt.Errorf("iir: %w: state has %d values, want %d", tf.ErrOrderMismatch, len(state), len(f.z))
	}

	copy(f.z, state)

	return nil
}

// ChangeCoefficients swaps in new coefficients of the same order. The state
// vector is kept, so the output continues without a restart transient.
func (f *Zi) ChangeCoefficients(b, a []float64) error {
	nb, na, err := tf.Normalize(b, a)
	if err != nil {
		return err
	}

	pb, pa := pad(nb, na)
	if len(pb) != len(f.b) {
		return fmt.Errorf("iir: %w: order %d, want %d", tf.ErrOrderMismatch, len(pb)-1, len(f.b)-1)
	}

	f.b, f.a = pb, pa

	return nil
}

// Order returns the length of the state vector.
func (f *Zi) Order() int {
	return len(f.z)
}

// TransferFunction returns the filter coefficients.
func (f *Zi) TransferFunction() (*tf.TransferFunction, error) {
	return tf.New(core.TrimTrailingZeros(f.b), core.TrimTrailingZeros(f.a))
}
