package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
)

// ErrInvalidSpec is returned for frequencies outside (0, 0.5) and
// non-finite gains.
var ErrInvalidSpec = errors.New("design: invalid specification")

// DefaultQ is the Butterworth quality factor 1/sqrt(2). Designers fall back
// to it for non-positive or non-finite q.
const DefaultQ = 1 / math.Sqrt2

// section holds the shared intermediate terms of one cookbook design.
type section struct {
	cw, sw, alpha float64
}

func prepare(f, q float64) (section, error) {
	if !(f > 0 && f < 0.5) {
		return section{}, fmt.Errorf("%w: frequency %g outside (0, 0.5)", ErrInvalidSpec, f)
	}

	if !(q > 0) || math.IsInf(q, 0) {
		q = DefaultQ
	}

	w0 := 2 * math.Pi * f
	sw := math.Sin(w0)

	return section{cw: math.Cos(w0), sw: sw, alpha: sw / (2 * q)}, nil
}

func shelfGain(gainDB float64) (float64, error) {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return 0, fmt.Errorf("%w: gain %g dB", ErrInvalidSpec, gainDB)
	}
	return math.Pow(10, gainDB/40), nil
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// Lowpass designs a second-order lowpass with cutoff f.
func Lowpass(f, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b1 := 1 - s.cw
	return normalize(b1/2, b1, b1/2, 1+s.alpha, -2*s.cw, 1-s.alpha), nil
}

// Highpass designs a second-order highpass with cutoff f.
func Highpass(f, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b1 := 1 + s.cw
	return normalize(b1/2, -b1, b1/2, 1+s.alpha, -2*s.cw, 1-s.alpha), nil
}

// Bandpass designs a constant 0 dB peak gain bandpass centred at f.
func Bandpass(f, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(s.alpha, 0, -s.alpha, 1+s.alpha, -2*s.cw, 1-s.alpha), nil
}

// Notch designs a band-reject section with a zero on the unit circle at f.
func Notch(f, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(1, -2*s.cw, 1, 1+s.alpha, -2*s.cw, 1-s.alpha), nil
}

// Allpass designs a unit-magnitude section whose phase passes -pi at f.
func Allpass(f, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(1-s.alpha, -2*s.cw, 1+s.alpha, 1+s.alpha, -2*s.cw, 1-s.alpha), nil
}

// Peak designs a peaking EQ with gainDB at f and unity gain at DC and
// Nyquist.
func Peak(f, gainDB, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	a, err := shelfGain(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(
		1+s.alpha*a, -2*s.cw, 1-s.alpha*a,
		1+s.alpha/a, -2*s.cw, 1-s.alpha/a,
	), nil
}

// LowShelf designs a shelf with gainDB below f and unity gain at Nyquist.
// q sets the shelf slope; DefaultQ gives the steepest monotonic slope.
func LowShelf(f, gainDB, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	a, err := shelfGain(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	beta := 2 * math.Sqrt(a) * s.alpha
	p, m := a+1, a-1

	return normalize(
		a*(p-m*s.cw+beta), 2*a*(m-p*s.cw), a*(p-m*s.cw-beta),
		p+m*s.cw+beta, -2*(m+p*s.cw), p+m*s.cw-beta,
	), nil
}

// HighShelf designs a shelf with gainDB above f and unity gain at DC.
func HighShelf(f, gainDB, q float64) (biquad.Coefficients, error) {
	s, err := prepare(f, q)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	a, err := shelfGain(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	beta := 2 * math.Sqrt(a) * s.alpha
	p, m := a+1, a-1

	return normalize(
		a*(p+m*s.cw+beta), -2*a*(m+p*s.cw), a*(p+m*s.cw-beta),
		p-m*s.cw+beta, 2*(m-p*s.cw), p-m*s.cw-beta,
	), nil
}
