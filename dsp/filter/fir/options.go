package fir

import (
	"github.com/cwbudde/algo-filter/dsp/conv"
	"github.com/cwbudde/algo-filter/dsp/spectrum"
)

// BlockMethod selects the FFT convolution scheme used by [Filter.Apply].
type BlockMethod int

const (
	// OverlapAdd convolves the input in blocks and sums the tails.
	OverlapAdd BlockMethod = iota
	// OverlapSave streams the input through a history-carrying convolver.
	OverlapSave
)

func (m BlockMethod) String() string {
	if m == OverlapSave {
		return "overlap-save"
	}
	return "overlap-add"
}

type config struct {
	fftThreshold int
	method       BlockMethod
	provider     spectrum.Provider
}

func defaultConfig() config {
	return config{
		fftThreshold: conv.DirectThreshold,
		method:       OverlapAdd,
		provider:     spectrum.DefaultProvider,
	}
}

// Option configures a [Filter].
type Option func(*config)

// WithFFTThreshold sets the largest kernel length Apply convolves directly.
// Longer kernels use FFT block convolution. Values below 1 are ignored.
func WithFFTThreshold(taps int) Option {
	return func(c *config) {
		if taps >= 1 {
			c.fftThreshold = taps
		}
	}
}

// WithBlockMethod selects overlap-add or overlap-save for the FFT path.
func WithBlockMethod(m BlockMethod) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithTransform selects the spectral transform backend for the FFT path.
func WithTransform(p spectrum.Provider) Option {
	return func(c *config) {
		if p != nil {
			c.provider = p
		}
	}
}
