package spectrum

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

var (
	// ErrInvalidSize is returned for transform sizes that are not a positive
	// power of two.
	ErrInvalidSize = errors.New("spectrum: transform size must be a positive power of two")
	// ErrLengthMismatch is returned when the real/imaginary slices do not
	// match the transform size.
	ErrLengthMismatch = errors.New("spectrum: length mismatch")
)

// Transform is a complex discrete Fourier transform of fixed size operating
// in place on parallel real and imaginary slices.
//
// Implementations own scratch memory and are not safe for concurrent use.
type Transform interface {
	Direct(re, im []float64) error
	Inverse(re, im []float64) error
	Size() int
}

// NextPowerOf2 returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func checkSize(n int) error {
	if n <= 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return nil
}

func checkParts(n int, re, im []float64) error {
	if len(re) != n || len(im) != n {
		return fmt.Errorf("%w: re=%d im=%d, size %d", ErrLengthMismatch, len(re), len(im), n)
	}
	return nil
}

func pack(dst []complex128, re, im []float64) {
	for i := range dst {
		dst[i] = complex(re[i], im[i])
	}
}

func unpack(re, im []float64, src []complex128) {
	for i, c := range src {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// FFT is the algo-fft backed [Transform].
type FFT struct {
	plan *algofft.Plan[complex128]
	buf  []complex128
}

// NewFFT creates an algo-fft transform of size n.
func NewFFT(n int) (*FFT, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	return &FFT{plan: plan, buf: make([]complex128, n)}, nil
}

// Size returns the transform length.
func (f *FFT) Size() int { return len(f.buf) }

// Direct replaces re/im with their forward transform.
func (f *FFT) Direct(re, im []float64) error {
	if err := checkParts(len(f.buf), re, im); err != nil {
		return err
	}

	pack(f.buf, re, im)
	if err := f.plan.Forward(f.buf, f.buf); err != nil {
		return fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	unpack(re, im, f.buf)

	return nil
}

// Inverse replaces re/im with their normalized inverse transform.
func (f *FFT) Inverse(re, im []float64) error {
	if err := checkParts(len(f.buf), re, im); err != nil {
		return err
	}

	pack(f.buf, re, im)
	if err := f.plan.Inverse(f.buf, f.buf); err != nil {
		return fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}
	unpack(re, im, f.buf)

	return nil
}

// GonumFFT is the gonum dsp/fourier backed [Transform].
type GonumFFT struct {
	fft   *fourier.CmplxFFT
	in    []complex128
	out   []complex128
	scale float64
}

// NewGonumFFT creates a gonum transform of size n.
func NewGonumFFT(n int) (*GonumFFT, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}

	return &GonumFFT{
		fft:   fourier.NewCmplxFFT(n),
		in:    make([]complex128, n),
		out:   make([]complex128, n),
		scale: 1 / float64(n),
	}, nil
}

// Size returns the transform length.
func (g *GonumFFT) Size() int { return len(g.in) }

// Direct replaces re/im with their forward transform.
func (g *GonumFFT) Direct(re, im []float64) error {
	if err := checkParts(len(g.in), re, im); err != nil {
		return err
	}

	pack(g.in, re, im)
	g.out = g.fft.Coefficients(g.out, g.in)
	unpack(re, im, g.out)

	return nil
}

// Inverse replaces re/im with their normalized inverse transform. gonum does
// not normalize, so the result is scaled by 1/N here.
func (g *GonumFFT) Inverse(re, im []float64) error {
	if err := checkParts(len(g.in), re, im); err != nil {
		return err
	}

	pack(g.in, re, im)
	g.out = g.fft.Sequence(g.out, g.in)
	unpack(re, im, g.out)
	f64.Scale(re, re, g.scale)
	f64.Scale(im, im, g.scale)

	return nil
}

// Provider constructs a transform of the requested size. It lets callers
// choose the backend used by the filter packages.
type Provider func(n int) (Transform, error)

// DefaultProvider returns algo-fft transforms.
func DefaultProvider(n int) (Transform, error) {
	f, err := NewFFT(n)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GonumProvider returns gonum transforms.
func GonumProvider(n int) (Transform, error) {
	g, err := NewGonumFFT(n)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// RealSpectrum returns bins 0..N/2 of the transform of x zero-padded to t's
// size. x may not be longer than the transform.
func RealSpectrum(t Transform, x []float64) ([]complex128, error) {
	n := t.Size()
	if len(x) > n {
		return nil, fmt.Errorf("%w: input %d exceeds transform size %d", ErrLengthMismatch, len(x), n)
	}

	re := make([]float64, n)
	im := make([]float64, n)
	copy(re, x)

	if err := t.Direct(re, im); err != nil {
		return nil, err
	}

	out := make([]complex128, n/2+1)
	for k := range out {
		out[k] = complex(re[k], im[k])
	}

	return out, nil
}
