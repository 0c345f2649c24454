package pass

import (
	"github.com/cwbudde/algo-filter/dsp/filter/iir"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

// Filter runs a designed band filter in transposed form. Its design can be
// changed while running without resetting the filter state.
type Filter struct {
	spec Spec
	h    *tf.TransferFunction
	zi   *iir.Zi
}

// NewFilter designs s and returns a filter with zero state.
func NewFilter(s Spec) (*Filter, error) {
	h, err := Design(s)
	if err != nil {
		return nil, err
	}

	zi, err := iir.NewZiFromTransferFunction(h)
	if err != nil {
		return nil, err
	}

	return &Filter{spec: s.withDefaults(), h: h, zi: zi}, nil
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	return f.zi.ProcessSample(x)
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	f.zi.ProcessBlock(buf)
}

// Reset zeroes the filter state.
func (f *Filter) Reset() {
	f.zi.Reset()
}

// Spec returns the current design, with defaults filled in.
func (f *Filter) Spec() Spec {
	return f.spec
}

// TransferFunction returns the current design.
func (f *Filter) TransferFunction() *tf.TransferFunction {
	return f.h
}

// Change redesigns the filter and swaps in the new coefficients, keeping the
// running state. A spec with a different design order returns
// tf.ErrOrderMismatch and leaves the filter unchanged.
func (f *Filter) Change(s Spec) error {
	h, err := Design(s)
	if err != nil {
		return err
	}

	if err := f.zi.ChangeCoefficients(h.Numerator(), h.Denominator()); err != nil {
		return err
	}

	f.spec, f.h = s.withDefaults(), h

	return nil
}
