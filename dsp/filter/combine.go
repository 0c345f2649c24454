package filter

import (
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

// Combined is the result of joining two transfer functions together with the
// filter variant it has to run as.
type Combined struct {
	Transfer *tf.TransferFunction
	Kind     tf.Kind
}

// New builds the processor for the combined transfer function.
func (c Combined) New(opts ...fir.Option) (Processor, error) {
	return New(c.Transfer, opts...)
}

// CombineSeries cascades h1 and h2. The result is FIR only when both are.
func CombineSeries(h1, h2 *tf.TransferFunction) (Combined, error) {
	h, err := tf.Series(h1, h2)
	if err != nil {
		return Combined{}, err
	}

	return Combined{Transfer: h, Kind: h.Kind()}, nil
}

// CombineParallel sums h1 and h2. Two FIR operands give an FIR sum with the
// numerators added; any IIR operand gives an IIR result over the product of
// the denominators, without pole-zero cancellation.
func CombineParallel(h1, h2 *tf.TransferFunction) (Combined, error) {
	h, err := tf.Parallel(h1, h2)
	if err != nil {
		return Combined{}, err
	}

	kind := tf.KindIIR
	if h1.IsFIR() && h2.IsFIR() {
		kind = tf.KindFIR
	}

	return Combined{Transfer: h, Kind: kind}, nil
}
