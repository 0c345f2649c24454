package iir

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/delay"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
	"github.com/tphakala/simd/f64"
)

// Filter is a direct form I recursive filter:
//
//	y[n] = sum b[k] x[n-k] - sum a[k] y[n-k],  k >= 1 for a
type Filter struct {
	b  []float64
	fb []float64 // a[1:]

	x *delay.Line
	y *delay.Line // nil when the filter has no feedback taps
}

// New creates a direct form I filter. The coefficients are normalized by a[0].
func New(b, a []float64) (*Filter, error) {
	nb, na, err := tf.Normalize(b, a)
	if err != nil {
		return nil, err
	}

	f := &Filter{b: nb, fb: na[1:]}

	if f.x, err = delay.New(len(nb)); err != nil {
		return nil, err
	}
	if len(f.fb) > 0 {
		if f.y, err = delay.New(len(f.fb)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// FromTransferFunction creates a direct form I filter for h.
func FromTransferFunction(h *tf.TransferFunction) (*Filter, error) {
	return New(h.Numerator(), h.Denominator())
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	f.x.Write(x)
	y := f64.DotProduct(f.b, f.x.Window())

	if f.y != nil {
		y -= f64.DotProduct(f.fb, f.y.Window())
		f.y.Write(y)
	}

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("iir: ProcessBlockTo length mismatch: dst=%d src=%d", len(dst), len(src)))
	}

	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears both histories.
func (f *Filter) Reset() {
	f.x.Reset()
	if f.y != nil {
		f.y.Reset()
	}
}

// ChangeCoefficients replaces b and a, keeping the histories. The normalized
// lengths must match the current ones.
func (f *Filter) ChangeCoefficients(b, a []float64) error {
	nb, na, err := tf.Normalize(b, a)
	if err != nil {
		return err
	}

	if len(nb) != len(f.b) || len(na)-1 != len(f.fb) {
		return fmt.Errorf("iir: %w: got %d/%d taps, want %d/%d",
			tf.ErrOrderMismatch, len(nb), len(na), len(f.b), len(f.fb)+1)
	}

	copy(f.b, nb)
	copy(f.fb, na[1:])

	return nil
}

// Order returns max(len(b), len(a)) - 1.
func (f *Filter) Order() int {
	return max(len(f.b), len(f.fb)+1) - 1
}

// TransferFunction returns the filter coefficients.
func (f *Filter) TransferFunction() (*tf.TransferFunction, error) {
	return tf.New(f.b, append([]float64{1}, f.fb...))
}

// Coefficients returns copies of the normalized b and a.
func (f *Filter) Coefficients() (b, a []float64) {
	return core.Clone(f.b), append([]float64{1}, f.fb...)
}
