package biquad

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

// Chain is an ordered cascade of biquad sections processed in series.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade with one Section per coefficient set.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain{sections: make([]Section, len(coeffs)), gain: cfg.gain}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// FromSOS builds a chain from second-order transfer functions such as the
// result of [tf.TransferFunction.ToSOS].
func FromSOS(sections []*tf.TransferFunction, opts ...ChainOption) (*Chain, error) {
	coeffs := make([]Coefficients, len(sections))
	for i, s := range sections {
		c, err := FromTransferFunction(s)
		if err != nil {
			return nil, fmt.Errorf("biquad: section %d: %w", i, err)
		}
		coeffs[i] = c
	}

	return NewChain(coeffs, opts...), nil
}

// ProcessSample cascades one input sample through all sections.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain returns the input gain.
func (c *Chain) Gain() float64 { return c.gain }

// SetGain updates the input gain.
func (c *Chain) SetGain(g float64) { c.gain = g }

// ChangeCoefficients replaces every section's coefficients while keeping
// all delay-line states. The section count must not change.
func (c *Chain) ChangeCoefficients(coeffs []Coefficients) error {
	if len(coeffs) != len(c.sections) {
		return fmt.Errorf("biquad: %w: %d sections, want %d", tf.ErrOrderMismatch, len(coeffs), len(c.sections))
	}

	for i := range coeffs {
		if err := coeffs[i].Validate(); err != nil {
			return err
		}
	}

	for i := range c.sections {
		c.sections[i].Coefficients = coeffs[i]
	}

	return nil
}

// Section returns a pointer to the i-th section.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// TransferFunction multiplies the sections (and gain) into one transfer
// function.
func (c *Chain) TransferFunction() (*tf.TransferFunction, error) {
	sos := make([]*tf.TransferFunction, 0, len(c.sections)+1)

	g, err := tf.NewFIR([]float64{c.gain})
	if err != nil {
		return nil, err
	}
	sos = append(sos, g)

	for i := range c.sections {
		s, err := c.sections[i].TransferFunction()
		if err != nil {
			return nil, err
		}
		sos = append(sos, s)
	}

	return tf.FromSOS(sos)
}

// State returns a snapshot of all section states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores section states saved with State.
func (c *Chain) SetState(states [][2]float64) error {
	if len(states) != len(c.sections) {
		return fmt.Errorf("biquad: %w: %d states for %d sections", tf.ErrOrderMismatch, len(states), len(c.sections))
	}

	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}

	return nil
}
