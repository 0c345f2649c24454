package onepole

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

// ErrInvalidFreq is returned for cutoffs outside (0, 0.5).
var ErrInvalidFreq = errors.New("onepole: frequency outside (0, 0.5)")

// Kind selects the response.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
	MirroredHighpass
)

func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case MirroredHighpass:
		return "mirrored highpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Filter is a first-order section with a single real pole p. Lowpass and
// Highpass use p = exp(-2*pi*f):
//
//	lowpass:  H(z) = (1-p) / (1 - p z^-1)
//	highpass: H(z) = (1+p)/2 (1 - z^-1) / (1 - p z^-1)
//
// MirroredHighpass reflects the lowpass pole to Nyquist,
// p = -exp(-2*pi*(0.5-f)), and has no zero:
//
//	mirrored: H(z) = (1+p) / (1 - p z^-1)
//
// The lowpass has unity gain at DC, both highpasses at Nyquist. Only Highpass
// blocks DC completely.
type Filter struct {
	kind Kind
	freq float64

	b0, b1, p float64
	z         float64
}

// NewLowpass returns a one-pole lowpass with cutoff f in cycles/sample.
func NewLowpass(f float64) (*Filter, error) {
	return newFilter(Lowpass, f)
}

// NewHighpass returns a one-pole highpass with cutoff f in cycles/sample.
func NewHighpass(f float64) (*Filter, error) {
	return newFilter(Highpass, f)
}

// NewMirroredHighpass returns the all-pole highpass with its pole on the
// negative real axis.
func NewMirroredHighpass(f float64) (*Filter, error) {
	return newFilter(MirroredHighpass, f)
}

func newFilter(kind Kind, f float64) (*Filter, error) {
	flt := &Filter{kind: kind}
	if err := flt.ChangeFreq(f); err != nil {
		return nil, err
	}
	return flt, nil
}

// ChangeFreq moves the cutoff. The state is kept.
func (f *Filter) ChangeFreq(freq float64) error {
	if !(freq > 0 && freq < 0.5) {
		return fmt.Errorf("%w: %g", ErrInvalidFreq, freq)
	}

	var p float64

	switch f.kind {
	case Highpass:
		p = pole(freq)
		g := (1 + p) / 2
		f.b0, f.b1 = g, -g
	case MirroredHighpass:
		p = -pole(0.5 - freq)
		f.b0, f.b1 = 1+p, 0
	default:
		p = pole(freq)
		f.b0, f.b1 = 1-p, 0
	}

	f.p, f.freq = p, freq

	return nil
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b0*x + f.z
	f.z = f.b1*x + f.p*y

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	b0, b1, p, z := f.b0, f.b1, f.p, f.z
	for i, x := range buf {
		y := b0*x + z
		z = b1*x + p*y
		buf[i] = y
	}
	f.z = z
}

// Reset clears the state.
func (f *Filter) Reset() { f.z = 0 }

// State returns the single state value.
func (f *Filter) State() float64 { return f.z }

// SetState restores a saved state value.
func (f *Filter) SetState(z float64) { f.z = z }

// Freq returns the current cutoff.
func (f *Filter) Freq() float64 { return f.freq }

// Kind returns the response type.
func (f *Filter) Kind() Kind { return f.kind }

// Pole returns the real pole.
func (f *Filter) Pole() float64 { return f.p }

// TransferFunction returns the current coefficients.
func (f *Filter) TransferFunction() (*tf.TransferFunction, error) {
	return tf.New([]float64{f.b0, f.b1}, []float64{1, -f.p})
}
