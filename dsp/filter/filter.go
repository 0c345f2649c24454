package filter

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
	"github.com/cwbudde/algo-filter/dsp/filter/design/pass"
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/filter/iir"
	"github.com/cwbudde/algo-filter/dsp/filter/onepole"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
	"github.com/cwbudde/algo-filter/dsp/signal"
)

// Processor is the run-time contract shared by the fixed-coefficient
// filters.
type Processor interface {
	ProcessSample(x float64) float64
	ProcessBlock(buf []float64)
	Reset()
}

// Describer is implemented by processors that can report their current
// transfer function.
type Describer interface {
	TransferFunction() (*tf.TransferFunction, error)
}

// batchApplier is implemented by filters with a faster whole-buffer path.
type batchApplier interface {
	Apply(x []float64) ([]float64, error)
}

var (
	_ Processor = (*fir.Filter)(nil)
	_ Processor = (*iir.Filter)(nil)
	_ Processor = (*iir.Zi)(nil)
	_ Processor = (*biquad.Section)(nil)
	_ Processor = (*biquad.Chain)(nil)
	_ Processor = (*onepole.Filter)(nil)
	_ Processor = (*pass.Filter)(nil)

	_ Describer = (*fir.Filter)(nil)
	_ Describer = (*iir.Filter)(nil)
	_ Describer = (*iir.Zi)(nil)
	_ Describer = (*biquad.Chain)(nil)
	_ Describer = (*onepole.Filter)(nil)
)

// New returns the processor h needs: an FIR filter when the denominator is
// trivial, a transposed-state IIR filter otherwise. Options apply only to the
// FIR case.
func New(h *tf.TransferFunction, opts ...fir.Option) (Processor, error) {
	switch h.Kind() {
	case tf.KindFIR:
		f, err := fir.FromTransferFunction(h, opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	case tf.KindIIR:
		z, err := iir.NewZiFromTransferFunction(h)
		if err != nil {
			return nil, err
		}
		return z, nil
	default:
		return nil, fmt.Errorf("filter: unknown kind %v", h.Kind())
	}
}

// Apply filters a copy of x through p, continuing from its current state.
// FIR filters use their block convolution path.
func Apply(p Processor, x []float64) ([]float64, error) {
	if b, ok := p.(batchApplier); ok {
		return b.Apply(x)
	}

	y := core.Clone(x)
	p.ProcessBlock(y)

	return y, nil
}

// ApplySignal filters s through p and returns a new signal at the same rate.
func ApplySignal(p Processor, s *signal.Signal) (*signal.Signal, error) {
	y, err := Apply(p, s.Samples())
	if err != nil {
		return nil, err
	}

	return s.WithSamples(y), nil
}

// ApplyParallel runs a and b over their own input signals and sums the
// results. The inputs must share one sampling rate.
func ApplyParallel(a Processor, sa *signal.Signal, b Processor, sb *signal.Signal) (*signal.Signal, error) {
	if sa.Rate() != sb.Rate() {
		return nil, fmt.Errorf("filter: %w: %d vs %d", signal.ErrRateMismatch, sa.Rate(), sb.Rate())
	}

	ya, err := ApplySignal(a, sa)
	if err != nil {
		return nil, err
	}

	yb, err := ApplySignal(b, sb)
	if err != nil {
		return nil, err
	}

	return signal.Add(ya, yb)
}

// Cascade runs processors one after the other.
type Cascade []Processor

// ProcessSample passes x through every stage.
func (c Cascade) ProcessSample(x float64) float64 {
	for _, p := range c {
		x = p.ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place through every stage.
func (c Cascade) ProcessBlock(buf []float64) {
	for _, p := range c {
		p.ProcessBlock(buf)
	}
}

// Reset resets every stage.
func (c Cascade) Reset() {
	for _, p := range c {
		p.Reset()
	}
}

// TransferFunction returns the product of the stage transfer functions. Every
// stage must implement [Describer].
func (c Cascade) TransferFunction() (*tf.TransferFunction, error) {
	h, err := tf.NewFIR([]float64{1})
	if err != nil {
		return nil, err
	}

	for i, p := range c {
		d, ok := p.(Describer)
		if !ok {
			return nil, fmt.Errorf("filter: stage %d (%T) has no transfer function", i, p)
		}

		hi, err := d.TransferFunction()
		if err != nil {
			return nil, fmt.Errorf("filter: stage %d: %w", i, err)
		}

		if h, err = tf.Series(h, hi); err != nil {
			return nil, err
		}
	}

	return h, nil
}
