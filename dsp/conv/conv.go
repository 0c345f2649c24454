package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/spectrum"
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// DirectThreshold is the largest kernel length [Convolve] handles with
// direct convolution.
const DirectThreshold = 64

// Direct returns the full linear convolution of a and b, of length
// len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(a)+len(b)-1)
	DirectTo(out, a, b)

	return out, nil
}

// DirectTo writes the full convolution of a and b into dst, which must have
// length len(a)+len(b)-1.
func DirectTo(dst, a, b []float64) {
	m := len(b)
	padded := make([]float64, len(a)+2*(m-1))
	copy(padded[m-1:], a)
	Valid(dst, padded, b)
}

// Valid writes the fully overlapping part of the convolution of signal with
// kernel into dst:
//
//	dst[i] = sum_k kernel[k] * signal[i+M-1-k],  M = len(kernel)
//
// dst must have length len(signal)-len(kernel)+1.
func Valid(dst, signal, kernel []float64) {
	m := len(kernel)
	if want := len(signal) - m + 1; len(dst) != want {
		panic(fmt.Sprintf("conv: valid output length %d, want %d", len(dst), want))
	}

	rev := make([]float64, m)
	for i, v := range kernel {
		rev[m-1-i] = v
	}

	f64.ConvolveValid(dst, signal, rev)
}

// Convolve returns the full linear convolution of a and b, choosing direct
// or FFT convolution by the shorter operand's length.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= DirectThreshold {
		return Direct(a, b)
	}

	oa, err := NewOverlapAdd(b, 0, nil)
	if err != nil {
		return nil, err
	}

	return oa.Process(a)
}

// fftCore holds a kernel spectrum and the scratch for one circular
// convolution through a transform.
type fftCore struct {
	t      spectrum.Transform
	kernel []complex128
	spec   []complex128
	prod   []complex128
	re, im []float64
}

func newFFTCore(kernel []float64, size int, p spectrum.Provider) (*fftCore, error) {
	if p == nil {
		p = spectrum.DefaultProvider
	}

	t, err := p(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create transform: %w", err)
	}

	c := &fftCore{
		t:      t,
		kernel: make([]complex128, size),
		spec:   make([]complex128, size),
		prod:   make([]complex128, size),
		re:     make([]float64, size),
		im:     make([]float64, size),
	}

	copy(c.re, kernel)
	if err := t.Direct(c.re, c.im); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel spectrum: %w", err)
	}

	for i := range c.kernel {
		c.kernel[i] = complex(c.re[i], c.im[i])
	}

	return c, nil
}

// circular replaces c.re with its circular convolution with the kernel.
func (c *fftCore) circular() error {
	clear(c.im)
	if err := c.t.Direct(c.re, c.im); err != nil {
		return fmt.Errorf("conv: forward transform failed: %w", err)
	}

	for i := range c.spec {
		c.spec[i] = complex(c.re[i], c.im[i])
	}

	c128.Mul(c.prod, c.spec, c.kernel)

	for i, v := range c.prod {
		c.re[i], c.im[i] = real(v), imag(v)
	}

	if err := c.t.Inverse(c.re, c.im); err != nil {
		return fmt.Errorf("conv: inverse transform failed: %w", err)
	}

	return nil
}
