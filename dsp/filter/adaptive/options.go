package adaptive

import (
	"fmt"
	"math"
)

const (
	// DefaultEpsilon regularizes the NLMS and NLMF energy normalization.
	DefaultEpsilon = 1e-8
	// DefaultLambda is the RLS forgetting factor.
	DefaultLambda = 0.999
	// DefaultDelta sets the initial RLS inverse correlation to I/delta.
	DefaultDelta = 0.01
)

type config struct {
	leakage    float64
	epsilon    float64
	dither     float64
	ditherSeed uint64
	lambda     float64
	delta      float64
}

func defaultConfig() config {
	return config{
		epsilon: DefaultEpsilon,
		lambda:  DefaultLambda,
		delta:   DefaultDelta,
	}
}

// Option configures an adaptive [Filter].
type Option func(*config) error

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// WithLeakage sets the weight leakage (default 0, must be >= 0).
func WithLeakage(leakage float64) Option {
	return func(cfg *config) error {
		if leakage < 0 || !finite(leakage) {
			return fmt.Errorf("%w: leakage must be >= 0 and finite: %g", ErrInvalidParameter, leakage)
		}

		cfg.leakage = leakage

		return nil
	}
}

// WithEpsilon sets the regularization added to the input energy by the
// normalized rules (default [DefaultEpsilon]).
func WithEpsilon(eps float64) Option {
	return func(cfg *config) error {
		if eps <= 0 || !finite(eps) {
			return fmt.Errorf("%w: epsilon must be > 0 and finite: %g", ErrInvalidParameter, eps)
		}

		cfg.epsilon = eps

		return nil
	}
}

// WithDither adds rectangular noise in [-amplitude, amplitude] to the error
// before the Sign-LMS sign decision. The generator is owned by the filter and
// seeded with seed, so runs are reproducible. Other rules ignore it.
func WithDither(amplitude float64, seed uint64) Option {
	return func(cfg *config) error {
		if amplitude < 0 || !finite(amplitude) {
			return fmt.Errorf("%w: dither amplitude must be >= 0 and finite: %g", ErrInvalidParameter, amplitude)
		}

		cfg.dither = amplitude
		cfg.ditherSeed = seed

		return nil
	}
}

// WithLambda sets the RLS forgetting factor in (0, 1] (default [DefaultLambda]).
func WithLambda(lambda float64) Option {
	return func(cfg *config) error {
		if !(lambda > 0 && lambda <= 1) {
			return fmt.Errorf("%w: lambda must be in (0, 1]: %g", ErrInvalidParameter, lambda)
		}

		cfg.lambda = lambda

		return nil
	}
}

// WithDelta sets the RLS initialization P = I/delta (default [DefaultDelta]).
func WithDelta(delta float64) Option {
	return func(cfg *config) error {
		if delta <= 0 || !finite(delta) {
			return fmt.Errorf("%w: delta must be > 0 and finite: %g", ErrInvalidParameter, delta)
		}

		cfg.delta = delta

		return nil
	}
}
