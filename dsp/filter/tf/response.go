package tf

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/spectrum"
)

// SpectralFloor is the magnitude, relative to the spectrum peak, below which
// [TransferFunction.GroupDelay] treats a bin as a zero.
const SpectralFloor = 1e-9

// evalInv evaluates sum c[k]*x^k with Horner's scheme.
func evalInv(c []float64, x complex128) complex128 {
	var v complex128
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + complex(c[i], 0)
	}
	return v
}

// Response returns H(e^{jw}) at normalized angular frequency w (radians per
// sample), evaluated directly on the unit circle.
func (t *TransferFunction) Response(w float64) complex128 {
	x := cmplx.Exp(complex(0, -w))
	return evalInv(t.b, x) / evalInv(t.a, x)
}

// MagnitudeDB returns 20*log10|H(e^{jw})|.
func (t *TransferFunction) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(t.Response(w)))
}

// Phase returns arg H(e^{jw}) in [-pi, pi].
func (t *TransferFunction) Phase(w float64) float64 {
	return cmplx.Phase(t.Response(w))
}

// NormalizeAt returns a copy whose numerator is scaled so that
// |H(e^{jw})| == 1.
func (t *TransferFunction) NormalizeAt(w float64) (*TransferFunction, error) {
	g := cmplx.Abs(t.Response(w))
	if g == 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return nil, fmt.Errorf("%w: gain %g at w=%g cannot be normalized", ErrInvalidCoefficient, g, w)
	}

	b := make([]float64, len(t.b))
	for i, v := range t.b {
		b[i] = v / g
	}

	return New(b, t.a)
}

type responseConfig struct {
	provider spectrum.Provider
}

// ResponseOption configures the transform-based diagnostics.
type ResponseOption func(*responseConfig)

// WithProvider selects the transform backend used by [TransferFunction.FrequencyResponse]
// and [TransferFunction.GroupDelay].
func WithProvider(p spectrum.Provider) ResponseOption {
	return func(cfg *responseConfig) {
		if p != nil {
			cfg.provider = p
		}
	}
}

func (t *TransferFunction) transform(n int, opts []ResponseOption) (spectrum.Transform, error) {
	cfg := responseConfig{provider: spectrum.DefaultProvider}
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < max(len(t.b), len(t.a)) {
		return nil, fmt.Errorf("%w: transform size %d shorter than %d taps", spectrum.ErrLengthMismatch, n, max(len(t.b), len(t.a)))
	}

	return cfg.provider(n)
}

// FrequencyResponse returns H at the n/2+1 frequencies w_k = 2*pi*k/n,
// k = 0..n/2, computed as the ratio of the numerator and denominator
// spectra. n must be a power of two no shorter than the coefficient sets.
func (t *TransferFunction) FrequencyResponse(n int, opts ...ResponseOption) ([]complex128, error) {
	tr, err := t.transform(n, opts)
	if err != nil {
		return nil, err
	}

	bs, err := spectrum.RealSpectrum(tr, t.b)
	if err != nil {
		return nil, err
	}

	as, err := spectrum.RealSpectrum(tr, t.a)
	if err != nil {
		return nil, err
	}

	for k := range bs {
		bs[k] /= as[k]
	}

	return bs, nil
}

// GroupDelay returns the group delay in samples at the n/2+1 frequencies of
// [TransferFunction.FrequencyResponse], using
//
//	tau = Re(FFT(k*b)/FFT(b)) - Re(FFT(k*a)/FFT(a))
//
// Bins where a spectrum magnitude is at or below [SpectralFloor] times its
// peak take that term from the nearest bin above the floor. For zeros on the
// unit circle this is the limit of the delay as the zero is approached.
func (t *TransferFunction) GroupDelay(n int, opts ...ResponseOption) ([]float64, error) {
	tr, err := t.transform(n, opts)
	if err != nil {
		return nil, err
	}

	num, err := rampRatio(tr, t.b)
	if err != nil {
		return nil, err
	}

	den, err := rampRatio(tr, t.a)
	if err != nil {
		return nil, err
	}

	for k := range num {
		num[k] -= den[k]
	}

	return num, nil
}

// rampRatio returns Re(FFT(k*c)/FFT(c)) per bin.
func rampRatio(tr spectrum.Transform, c []float64) ([]float64, error) {
	ramp := make([]float64, len(c))
	for k, v := range c {
		ramp[k] = float64(k) * v
	}

	cs, err := spectrum.RealSpectrum(tr, c)
	if err != nil {
		return nil, err
	}

	rs, err := spectrum.RealSpectrum(tr, ramp)
	if err != nil {
		return nil, err
	}

	mag := spectrum.Magnitude(cs)
	floor := slices.Max(mag) * SpectralFloor

	out := make([]float64, len(cs))
	valid := make([]bool, len(cs))
	for k := range cs {
		if mag[k] > floor {
			out[k] = real(rs[k] / cs[k])
			valid[k] = true
		}
	}

	fillNearest(out, valid)

	return out, nil
}

// fillNearest copies into every invalid entry the value of the closest valid
// one, preferring the lower index on a tie. With no valid entry x is left
// unchanged.
func fillNearest(x []float64, valid []bool) {
	for k := range x {
		if valid[k] {
			continue
		}

		for d := 1; d < len(x); d++ {
			if i := k - d; i >= 0 && valid[i] {
				x[k] = x[i]
				break
			}
			if i := k + d; i < len(x) && valid[i] {
				x[k] = x[i]
				break
			}
		}
	}
}

// ImpulseResponse returns the first n samples of the impulse response.
func (t *TransferFunction) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	h := make([]float64, n)
	for i := range h {
		var acc float64
		if i < len(t.b) {
			acc = t.b[i]
		}

		for k := 1; k < len(t.a) && k <= i; k++ {
			acc -= t.a[k] * h[i-k]
		}

		h[i] = acc
	}

	return h
}
