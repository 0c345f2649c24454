package conv

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/spectrum"
)

// OverlapSave is a streaming FFT convolver. Each transform block holds the
// previous len(kernel)-1 input samples followed by new input; the wrapped
// head of the circular result is discarded.
//
// Process continues from the samples seen by earlier calls, which makes the
// convolver a causal FIR filter. Reset clears that history.
type OverlapSave struct {
	core      *fftCore
	kernelLen int
	stepSize  int
	history   []float64
}

// NewOverlapSave creates an overlap-save convolver. fftSize must be a power
// of two; 0 selects one from the kernel length, and sizes below twice the
// kernel length are raised. p selects the transform backend (nil for the
// default).
func NewOverlapSave(kernel []float64, fftSize int, p spectrum.Provider) (*OverlapSave, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	m := len(kernel)

	switch {
	case fftSize <= 0:
		fftSize = max(spectrum.NextPowerOf2(2*m), 256)
	case fftSize&(fftSize-1) != 0:
		return nil, fmt.Errorf("%w: fftSize must be power of 2, got %d", ErrInvalidBlockSize, fftSize)
	case fftSize < 2*m:
		fftSize = spectrum.NextPowerOf2(2 * m)
	}

	core, err := newFFTCore(kernel, fftSize, p)
	if err != nil {
		return nil, err
	}

	return &OverlapSave{
		core:      core,
		kernelLen: m,
		stepSize:  fftSize - m + 1,
		history:   make([]float64, m-1),
	}, nil
}

// FFTSize returns the transform size.
func (os *OverlapSave) FFTSize() int { return os.core.t.Size() }

// StepSize returns the number of output samples produced per block.
func (os *OverlapSave) StepSize() int { return os.stepSize }

// KernelLen returns the kernel length.
func (os *OverlapSave) KernelLen() int { return os.kernelLen }

// Process filters input and returns len(input) output samples.
func (os *OverlapSave) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input))
	if err := os.ProcessTo(output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessTo filters input into output, which must have the same length.
func (os *OverlapSave) ProcessTo(output, input []float64) error {
	if len(output) != len(input) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(input), len(output))
	}

	c := os.core
	overlap := os.kernelLen - 1

	for pos := 0; pos < len(input); {
		n := min(os.stepSize, len(input)-pos)

		clear(c.re)
		copy(c.re, os.history)
		copy(c.re[overlap:], input[pos:pos+n])
		copy(os.history, c.re[n:n+overlap])

		if err := c.circular(); err != nil {
			return err
		}

		copy(output[pos:pos+n], c.re[overlap:overlap+n])
		pos += n
	}

	return nil
}

// History returns a copy of the carried input samples, oldest first.
func (os *OverlapSave) History() []float64 {
	out := make([]float64, len(os.history))
	copy(out, os.history)
	return out
}

// SetHistory replaces the carried input samples (oldest first). h must have
// length KernelLen()-1.
func (os *OverlapSave) SetHistory(h []float64) error {
	if len(h) != len(os.history) {
		return fmt.Errorf("%w: history expected %d, got %d", ErrLengthMismatch, len(os.history), len(h))
	}
	copy(os.history, h)
	return nil
}

// Reset clears the carried history.
func (os *OverlapSave) Reset() {
	clear(os.history)
}

// OverlapSaveConvolve returns the full linear convolution of signal and
// kernel computed with a fresh [OverlapSave].
func OverlapSaveConvolve(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	os, err := NewOverlapSave(kernel, 0, nil)
	if err != nil {
		return nil, err
	}

	padded := make([]float64, len(signal)+len(kernel)-1)
	copy(padded, signal)

	return os.Process(padded)
}
