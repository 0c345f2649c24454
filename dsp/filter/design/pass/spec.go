package pass

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned for designs that cannot be realized. Errors
// from the prototype and transform stages are wrapped as well.
var ErrInvalidSpec = errors.New("pass: invalid specification")

// Family selects the analog prototype.
type Family int

const (
	Butterworth Family = iota
	Chebyshev1
	Chebyshev2
	Elliptic
	Bessel
)

func (f Family) String() string {
	switch f {
	case Butterworth:
		return "butterworth"
	case Chebyshev1:
		return "chebyshev1"
	case Chebyshev2:
		return "chebyshev2"
	case Elliptic:
		return "elliptic"
	case Bessel:
		return "bessel"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Band selects the frequency transform.
type Band int

const (
	LowpassBand Band = iota
	HighpassBand
	BandpassBand
	BandstopBand
)

func (b Band) String() string {
	switch b {
	case LowpassBand:
		return "lowpass"
	case HighpassBand:
		return "highpass"
	case BandpassBand:
		return "bandpass"
	case BandstopBand:
		return "bandstop"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Default ripple parameters used when a Spec leaves them at zero.
const (
	DefaultRippleDB   = 1.0
	DefaultStopbandDB = 40.0
)

// Spec describes one filter design.
//
// Freq is the cutoff for lowpass and highpass designs and the lower band
// edge for bandpass and bandstop, where Freq2 is the upper edge. For
// Chebyshev II designs the edges are stopband edges (attenuation StopbandDB),
// for the other families they are passband edges (-3 dB for Butterworth,
// -RippleDB for Chebyshev I and elliptic). Bandpass and bandstop designs have
// twice the prototype order.
type Spec struct {
	Family Family
	Band   Band
	Order  int

	Freq  float64
	Freq2 float64

	RippleDB   float64 // Chebyshev I and elliptic passband ripple
	StopbandDB float64 // Chebyshev II and elliptic stopband attenuation
}

// Option adjusts the ripple parameters of a Spec.
type Option func(*Spec)

// WithRipple sets the passband ripple in dB.
func WithRipple(db float64) Option {
	return func(s *Spec) { s.RippleDB = db }
}

// WithStopband sets the minimum stopband attenuation in dB.
func WithStopband(db float64) Option {
	return func(s *Spec) { s.StopbandDB = db }
}

func (s Spec) withDefaults() Spec {
	if s.RippleDB == 0 {
		s.RippleDB = DefaultRippleDB
	}
	if s.StopbandDB == 0 {
		s.StopbandDB = DefaultStopbandDB
	}
	return s
}

// DesignOrder returns the order of the resulting transfer function.
func (s Spec) DesignOrder() int {
	if s.Band == BandpassBand || s.Band == BandstopBand {
		return 2 * s.Order
	}
	return s.Order
}

func (s Spec) validate() error {
	if s.Family < Butterworth || s.Family > Bessel {
		return fmt.Errorf("%w: unknown family %v", ErrInvalidSpec, s.Family)
	}
	if s.Band < LowpassBand || s.Band > BandstopBand {
		return fmt.Errorf("%w: unknown band %v", ErrInvalidSpec, s.Band)
	}
	if s.Order < 1 {
		return fmt.Errorf("%w: order %d", ErrInvalidSpec, s.Order)
	}
	return nil
}
