package fir

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/conv"
	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/delay"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
	"github.com/tphakala/simd/f64"
)

// ErrNotFIR is returned when a transfer function with feedback is passed to
// [FromTransferFunction].
var ErrNotFIR = errors.New("fir: transfer function has feedback")

// Filter implements a direct-form FIR filter.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
type Filter struct {
	kernel []float64
	line   *delay.Line
	cfg    config

	// lazily built FFT convolvers for Apply
	oa *conv.OverlapAdd
	os *conv.OverlapSave
}

// New creates a FIR filter from kernel. The kernel is copied; the filter
// order is len(kernel)-1.
func New(kernel []float64, opts ...Option) (*Filter, error) {
	if len(kernel) == 0 || !core.IsFinite(kernel) {
		return nil, fmt.Errorf("fir: %w: empty or non-finite kernel", tf.ErrInvalidCoefficient)
	}

	line, err := delay.New(len(kernel))
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Filter{kernel: core.Clone(kernel), line: line, cfg: cfg}, nil
}

// FromTransferFunction creates a filter running the numerator of an FIR
// transfer function.
func FromTransferFunction(h *tf.TransferFunction, opts ...Option) (*Filter, error) {
	if !h.IsFIR() {
		return nil, ErrNotFIR
	}
	return New(h.Numerator(), opts...)
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	f.line.Write(x)
	return f64.DotProduct(f.kernel, f.line.Window())
}

// ProcessBlock filters a block of samples in place, one sample at a time.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("fir: ProcessBlockTo length mismatch: dst=%d src=%d", len(dst), len(src)))
	}

	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Apply filters a whole buffer and returns a new slice of the same length.
// Kernels up to the FFT threshold are convolved directly; longer kernels go
// through FFT block convolution. Either way the output continues from the
// current delay-line state and leaves the state as if every sample had gone
// through ProcessSample.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, nil
	}

	n := len(f.kernel)
	history := f.history()

	var (
		y   []float64
		err error
	)

	switch {
	case n <= f.cfg.fftThreshold:
		y = f.applyDirect(history, x)
	case f.cfg.method == OverlapSave:
		y, err = f.applyOverlapSave(history, x)
	default:
		y, err = f.applyOverlapAdd(history, x)
	}

	if err != nil {
		return nil, err
	}

	f.advance(history, x)

	return y, nil
}

// history returns the previous len(kernel)-1 inputs, oldest first.
func (f *Filter) history() []float64 {
	w := f.line.Window()
	h := make([]float64, len(w)-1)
	core.Reverse(h, w[:len(w)-1])
	return h
}

// advance loads the delay line with the newest inputs of history ++ x.
func (f *Filter) advance(history, x []float64) {
	n := len(f.kernel)
	w := make([]float64, n)

	for i := range w {
		// i-th newest sample
		if j := len(x) - 1 - i; j >= 0 {
			w[i] = x[j]
		} else {
			w[i] = history[len(history)+j]
		}
	}

	if err := f.line.Load(w); err != nil {
		panic(err)
	}
}

func (f *Filter) applyDirect(history, x []float64) []float64 {
	ext := make([]float64, len(history)+len(x))
	copy(ext, history)
	copy(ext[len(history):], x)

	y := make([]float64, len(x))
	conv.Valid(y, ext, f.kernel)

	return y
}

func (f *Filter) applyOverlapAdd(history, x []float64) ([]float64, error) {
	if f.oa == nil {
		oa, err := conv.NewOverlapAdd(f.kernel, 0, f.cfg.provider)
		if err != nil {
			return nil, err
		}
		f.oa = oa
	}

	ext := make([]float64, len(history)+len(x))
	copy(ext, history)
	copy(ext[len(history):], x)

	full, err := f.oa.Process(ext)
	if err != nil {
		return nil, err
	}

	return full[len(history) : len(history)+len(x)], nil
}

func (f *Filter) applyOverlapSave(history, x []float64) ([]float64, error) {
	if f.os == nil {
		os, err := conv.NewOverlapSave(f.kernel, 0, f.cfg.provider)
		if err != nil {
			return nil, err
		}
		f.os = os
	}

	if err := f.os.SetHistory(history); err != nil {
		return nil, err
	}

	return f.os.Process(x)
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	f.line.Reset()
}

// State returns a copy of the delay line, newest sample first.
func (f *Filter) State() []float64 {
	return core.Clone(f.line.Window())
}

// SetState replaces the delay line contents (newest first, length Len()).
func (f *Filter) SetState(s []float64) error {
	return f.line.Load(s)
}

// ChangeKernel replaces the coefficients without touching the delay line.
// The new kernel must have the same length.
func (f *Filter) ChangeKernel(kernel []float64) error {
	if len(kernel) != len(f.kernel) {
		return fmt.Errorf("fir: %w: kernel length %d, want %d", tf.ErrOrderMismatch, len(kernel), len(f.kernel))
	}

	if !core.IsFinite(kernel) {
		return fmt.Errorf("fir: %w: non-finite kernel", tf.ErrInvalidCoefficient)
	}

	copy(f.kernel, kernel)
	f.oa, f.os = nil, nil

	return nil
}

// Order returns the filter order (len(kernel) - 1).
func (f *Filter) Order() int {
	return len(f.kernel) - 1
}

// Len returns the number of taps.
func (f *Filter) Len() int {
	return len(f.kernel)
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	return core.Clone(f.kernel)
}

// TransferFunction returns the kernel as an FIR transfer function.
func (f *Filter) TransferFunction() (*tf.TransferFunction, error) {
	return tf.NewFIR(f.kernel)
}

// Response computes the complex frequency response H(e^{jw}) at the
// normalized angular frequency w (radians per sample).
func (f *Filter) Response(w float64) complex128 {
	var h complex128
	for k, c := range f.kernel {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at w.
func (f *Filter) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(w)))
}
