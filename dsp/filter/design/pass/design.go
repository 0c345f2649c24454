package pass

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
	"github.com/cwbudde/algo-filter/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-filter/dsp/filter/design/transform"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
	"github.com/cwbudde/algo-filter/internal/polyroot"
)

// Design builds the transfer function for s. Zero RippleDB and StopbandDB
// take the package defaults.
func Design(s Spec) (*tf.TransferFunction, error) {
	s = s.withDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}

	proto, err := analog(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	zeros := make([]complex128, len(proto.Poles))
	copy(zeros, proto.Zeros)
	for i := len(proto.Zeros); i < len(zeros); i++ {
		zeros[i] = cmplx.Inf()
	}

	if zeros, err = bandMap(s, zeros); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	poles, err := bandMap(s, proto.Poles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	if zeros, err = transform.BilinearRoots(zeros); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if poles, err = transform.BilinearRoots(poles); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	b := polyroot.RealPart(polyroot.FromRoots(zeros))
	a := polyroot.RealPart(polyroot.FromRoots(poles))

	h, err := tf.New(b, a)
	if err != nil {
		return nil, err
	}

	h, err = h.NormalizeAt(s.Reference())
	if err != nil {
		return nil, err
	}

	// Even-order equiripple passbands start at the bottom of the ripple band.
	if s.Order%2 == 0 && (s.Family == Chebyshev1 || s.Family == Elliptic) {
		g := core.DBToLinear(-s.RippleDB)
		b := h.Numerator()
		for i := range b {
			b[i] *= g
		}
		return tf.New(b, h.Denominator())
	}

	return h, nil
}

func analog(s Spec) (prototype.Prototype, error) {
	switch s.Family {
	case Chebyshev1:
		return prototype.Chebyshev1(s.Order, s.RippleDB)
	case Chebyshev2:
		return prototype.Chebyshev2(s.Order, s.StopbandDB)
	case Elliptic:
		return prototype.Elliptic(s.Order, s.RippleDB, s.StopbandDB)
	case Bessel:
		return prototype.Bessel(s.Order)
	default:
		return prototype.Butterworth(s.Order)
	}
}

func bandMap(s Spec, roots []complex128) ([]complex128, error) {
	switch s.Band {
	case HighpassBand:
		return transform.Highpass(roots, s.Freq)
	case BandpassBand:
		return transform.Bandpass(roots, s.Freq, s.Freq2)
	case BandstopBand:
		return transform.Bandstop(roots, s.Freq, s.Freq2)
	default:
		return transform.Lowpass(roots, s.Freq)
	}
}

// Reference returns the digital frequency (radians/sample) that the
// prototype's DC maps to. Designs have unity gain there.
func (s Spec) Reference() float64 {
	switch s.Band {
	case HighpassBand:
		return math.Pi
	case BandpassBand:
		w0 := math.Sqrt(math.Tan(math.Pi*s.Freq) * math.Tan(math.Pi*s.Freq2))
		return 2 * math.Atan(w0)
	default:
		return 0
	}
}

func build(s Spec, opts []Option) (*tf.TransferFunction, error) {
	s.RippleDB, s.StopbandDB = DefaultRippleDB, DefaultStopbandDB
	for _, o := range opts {
		o(&s)
	}
	return Design(s)
}

// Lowpass designs a lowpass transfer function with cutoff freq.
func Lowpass(family Family, freq float64, order int, opts ...Option) (*tf.TransferFunction, error) {
	return build(Spec{Family: family, Band: LowpassBand, Order: order, Freq: freq}, opts)
}

// Highpass designs a highpass transfer function with cutoff freq.
func Highpass(family Family, freq float64, order int, opts ...Option) (*tf.TransferFunction, error) {
	return build(Spec{Family: family, Band: HighpassBand, Order: order, Freq: freq}, opts)
}

// Bandpass designs a bandpass transfer function passing [f1, f2].
// The result has order 2*order.
func Bandpass(family Family, f1, f2 float64, order int, opts ...Option) (*tf.TransferFunction, error) {
	return build(Spec{Family: family, Band: BandpassBand, Order: order, Freq: f1, Freq2: f2}, opts)
}

// Bandstop designs a bandstop transfer function rejecting [f1, f2].
// The result has order 2*order.
func Bandstop(family Family, f1, f2 float64, order int, opts ...Option) (*tf.TransferFunction, error) {
	return build(Spec{Family: family, Band: BandstopBand, Order: order, Freq: f1, Freq2: f2}, opts)
}

// Sections designs s and splits it into biquad sections.
func Sections(s Spec) ([]biquad.Coefficients, error) {
	h, err := Design(s)
	if err != nil {
		return nil, err
	}

	return Cascade(h)
}

// Cascade splits h into biquad coefficient sets with [tf.TransferFunction.ToSOS].
func Cascade(h *tf.TransferFunction) ([]biquad.Coefficients, error) {
	sos, err := h.ToSOS()
	if err != nil {
		return nil, err
	}

	out := make([]biquad.Coefficients, len(sos))
	for i, s := range sos {
		if out[i], err = biquad.FromTransferFunction(s); err != nil {
			return nil, err
		}
	}

	return out, nil
}
