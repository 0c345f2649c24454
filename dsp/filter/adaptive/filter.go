package adaptive

import (
	"errors"
	"fmt"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/delay"
)

var (
	// ErrInvalidOrder is returned for a kernel length below 1.
	ErrInvalidOrder = errors.New("adaptive: order must be >= 1")
	// ErrInvalidParameter is returned for out-of-range step sizes and options.
	ErrInvalidParameter = errors.New("adaptive: invalid parameter")
	// ErrLengthMismatch is returned by SetWeights for a wrong-sized kernel.
	ErrLengthMismatch = errors.New("adaptive: length mismatch")
)

// Algorithm identifies an update rule.
type Algorithm int

const (
	LMS Algorithm = iota
	SignLMS
	NLMS
	LMF
	NLMF
	VSLMS
	RLS
)

var algorithmNames = [...]string{"LMS", "SignLMS", "NLMS", "LMF", "NLMF", "VSLMS", "RLS"}

func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// rule adapts w in place from the history x (newest first) and error e.
type rule interface {
	adapt(w, x []float64, e float64)
	reset()
}

// Filter is an adaptive FIR filter. It is not safe for concurrent use.
type Filter struct {
	alg  Algorithm
	w    []float64
	line *delay.Line
	rule rule

	out, err float64
}

func newFilter(alg Algorithm, taps int, opts []Option, build func(cfg config) (rule, error)) (*Filter, error) {
	if taps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, taps)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	r, err := build(cfg)
	if err != nil {
		return nil, err
	}

	line, err := delay.New(taps)
	if err != nil {
		return nil, err
	}

	return &Filter{alg: alg, w: make([]float64, taps), line: line, rule: r}, nil
}

// Process filters one input sample against the desired sample and adapts the
// kernel. The returned output uses the weights from before the update.
func (f *Filter) Process(input, desired float64) float64 {
	f.line.Write(input)
	x := f.line.Window()

	y := f64.DotProduct(f.w, x)
	e := desired - y
	f.rule.adapt(f.w, x, e)

	f.out, f.err = y, e

	return y
}

// ProcessBlock runs Process over inputs and desired, writing the outputs to
// out. All three slices must have the same length; out may alias inputs.
func (f *Filter) ProcessBlock(inputs, desired, out []float64) {
	if len(inputs) != len(desired) || len(out) != len(inputs) {
		panic("adaptive: ProcessBlock length mismatch")
	}

	for i := range inputs {
		out[i] = f.Process(inputs[i], desired[i])
	}
}

// Error returns the a-priori error of the last Process call.
func (f *Filter) Error() float64 { return f.err }

// Output returns the output of the last Process call.
func (f *Filter) Output() float64 { return f.out }

// Weights returns a copy of the kernel; index 0 weights the newest input.
func (f *Filter) Weights() []float64 { return core.Clone(f.w) }

// SetWeights replaces the kernel. History and rule state are kept.
func (f *Filter) SetWeights(w []float64) error {
	if len(w) != len(f.w) {
		return fmt.Errorf("%w: expected %d weights, got %d", ErrLengthMismatch, len(f.w), len(w))
	}

	copy(f.w, w)

	return nil
}

// Reset zeroes the weights and history and restores the rule to its initial
// state, including the dither generator seed.
func (f *Filter) Reset() {
	clear(f.w)
	f.line.Reset()
	f.rule.reset()
	f.out, f.err = 0, 0
}

// Order returns the kernel order (taps - 1).
func (f *Filter) Order() int { return len(f.w) - 1 }

// Taps returns the kernel length.
func (f *Filter) Taps() int { return len(f.w) }

// Algorithm returns the update rule in use.
func (f *Filter) Algorithm() Algorithm { return f.alg }

// leak scales w by 1 - leakage*mu. A zero leakage is a no-op.
func leak(w []float64, leakage, mu float64) {
	if leakage == 0 {
		return
	}

	f64.Scale(w, w, 1-leakage*mu)
}
