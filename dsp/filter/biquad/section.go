package biquad

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-filter/dsp/filter/biquad/internal/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	blockKernel     kernel.BlockFn
	blockKernelName string
	blockKernelOnce sync.Once
)

func selectKernel() {
	e, ok := kernel.Default.Lookup(cpu.DetectFeatures())
	if !ok || e.Block == nil {
		panic("biquad: no block kernel registered")
	}
	blockKernel, blockKernelName = e.Block, e.Name
}

// KernelName returns the name of the block kernel selected for this CPU.
func KernelName() string {
	blockKernelOnce.Do(selectKernel)
	return blockKernelName
}

// Section is a single biquad filter with coefficients and internal state.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with the given coefficients and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	blockKernelOnce.Do(selectKernel)

	c := kernel.Coefficients{B0: s.B0, B1: s.B1, B2: s.B2, A1: s.A1, A2: s.A2}
	s.d0, s.d1 = blockKernel(c, s.d0, s.d1, buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("biquad: ProcessBlockTo length mismatch: dst=%d src=%d", len(dst), len(src)))
	}

	copy(dst, src)
	s.ProcessBlock(dst)
}

// ChangeCoefficients swaps in new coefficients. The delay-line state is
// kept so the output continues without a reset transient.
func (s *Section) ChangeCoefficients(c Coefficients) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.Coefficients = c

	return nil
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
