package pass

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

// LinkwitzRiley designs a Linkwitz-Riley lowpass or highpass of even order
// 2N as the square of an order-N Butterworth. Both outputs are -6.02 dB at
// freq. For orders divisible by 4 the lowpass and highpass sum to an
// allpass directly; for orders of the form 4k+2 the highpass must be
// inverted first (see [LinkwitzRileyNeedsInvert]).
func LinkwitzRiley(band Band, freq float64, order int) (*tf.TransferFunction, error) {
	if order < 2 || order%2 != 0 {
		return nil, fmt.Errorf("%w: Linkwitz-Riley order %d must be even and >= 2", ErrInvalidSpec, order)
	}
	if band != LowpassBand && band != HighpassBand {
		return nil, fmt.Errorf("%w: Linkwitz-Riley band %v", ErrInvalidSpec, band)
	}

	bw, err := Design(Spec{Family: Butterworth, Band: band, Order: order / 2, Freq: freq})
	if err != nil {
		return nil, err
	}

	return tf.Series(bw, bw)
}

// LinkwitzRileyNeedsInvert reports whether the highpass of the given order
// must be polarity-inverted for the crossover to sum flat.
func LinkwitzRileyNeedsInvert(order int) bool {
	return order > 0 && order%4 == 2
}
