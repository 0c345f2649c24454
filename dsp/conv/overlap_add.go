package conv

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/spectrum"
)

// OverlapAdd convolves a signal with a fixed kernel by splitting it into
// non-overlapping blocks, convolving each block through the transform and
// summing the overlapping tails.
type OverlapAdd struct {
	core      *fftCore
	kernelLen int
	blockSize int
}

// NewOverlapAdd creates an overlap-add convolver. blockSize <= 0 selects a
// size from the kernel length. p selects the transform backend (nil for the
// default).
func NewOverlapAdd(kernel []float64, blockSize int, p spectrum.Provider) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(spectrum.NextPowerOf2(len(kernel)), 256)
	}

	fftSize := spectrum.NextPowerOf2(blockSize + len(kernel) - 1)

	core, err := newFFTCore(kernel, fftSize, p)
	if err != nil {
		return nil, err
	}

	return &OverlapAdd{core: core, kernelLen: len(kernel), blockSize: blockSize}, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the transform size.
func (oa *OverlapAdd) FFTSize() int { return oa.core.t.Size() }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.process(output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessTo writes the full convolution into output, which must have length
// len(input)+KernelLen()-1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}

	if want := len(input) + oa.kernelLen - 1; len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	clear(output)

	return oa.process(output, input)
}

func (oa *OverlapAdd) process(output, input []float64) error {
	c := oa.core

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		clear(c.re)
		copy(c.re, input[start:end])

		if err := c.circular(); err != nil {
			return err
		}

		n := min(end-start+oa.kernelLen-1, len(output)-start)
		for i := range n {
			output[start+i] += c.re[i]
		}
	}

	return nil
}
