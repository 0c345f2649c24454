package adaptive

import (
	"fmt"
	"math/rand/v2"

	"github.com/tphakala/simd/f64"
)

func checkStep(mu float64) error {
	if mu <= 0 || !finite(mu) {
		return fmt.Errorf("%w: step size must be > 0 and finite: %g", ErrInvalidParameter, mu)
	}

	return nil
}

// lmsRule covers LMS, LMF and their normalized forms. cube selects the e^3
// gradient, normalize divides by eps + x.x.
type lmsRule struct {
	mu, leakage, eps float64
	cube, normalize  bool
}

func (r *lmsRule) adapt(w, x []float64, e float64) {
	g := r.mu * e
	if r.cube {
		g *= e * e
	}

	if r.normalize {
		g /= r.eps + f64.DotProduct(x, x)
	}

	leak(w, r.leakage, r.mu)

	for i, v := range x {
		w[i] += g * v
	}
}

func (r *lmsRule) reset() {}

func newLMSFamily(alg Algorithm, taps int, mu float64, opts []Option, cube, normalize bool) (*Filter, error) {
	return newFilter(alg, taps, opts, func(cfg config) (rule, error) {
		if err := checkStep(mu); err != nil {
			return nil, err
		}

		return &lmsRule{mu: mu, leakage: cfg.leakage, eps: cfg.epsilon, cube: cube, normalize: normalize}, nil
	})
}

// NewLMS returns a least-mean-squares filter with taps weights and step mu.
func NewLMS(taps int, mu float64, opts ...Option) (*Filter, error) {
	return newLMSFamily(LMS, taps, mu, opts, false, false)
}

// NewNLMS returns a normalized LMS filter. The step is divided by the
// instantaneous input energy plus epsilon.
func NewNLMS(taps int, mu float64, opts ...Option) (*Filter, error) {
	return newLMSFamily(NLMS, taps, mu, opts, false, true)
}

// NewLMF returns a least-mean-fourth filter.
func NewLMF(taps int, mu float64, opts ...Option) (*Filter, error) {
	return newLMSFamily(LMF, taps, mu, opts, true, false)
}

// NewNLMF returns a normalized least-mean-fourth filter.
func NewNLMF(taps int, mu float64, opts ...Option) (*Filter, error) {
	return newLMSFamily(NLMF, taps, mu, opts, true, true)
}

// signRule is the sign-sign LMS update with optional error dither.
type signRule struct {
	mu, leakage float64
	dither      float64
	seed        uint64
	pcg         *rand.PCG
	rng         *rand.Rand
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func (r *signRule) adapt(w, x []float64, e float64) {
	if r.dither > 0 {
		e += r.dither * (r.rng.Float64()*2 - 1)
	}

	se := sign(e)

	leak(w, r.leakage, r.mu)

	if se == 0 {
		return
	}

	step := r.mu * se
	for i, v := range x {
		w[i] += step * sign(v)
	}
}

func (r *signRule) reset() {
	r.pcg.Seed(r.seed, r.seed)
}

// NewSignLMS returns a sign-sign LMS filter. Use [WithDither] to decorrelate
// the sign decisions with a seeded generator.
func NewSignLMS(taps int, mu float64, opts ...Option) (*Filter, error) {
	return newFilter(SignLMS, taps, opts, func(cfg config) (rule, error) {
		if err := checkStep(mu); err != nil {
			return nil, err
		}

		pcg := rand.NewPCG(cfg.ditherSeed, cfg.ditherSeed)

		return &signRule{
			mu:      mu,
			leakage: cfg.leakage,
			dither:  cfg.dither,
			seed:    cfg.ditherSeed,
			pcg:     pcg,
			rng:     rand.New(pcg),
		}, nil
	})
}

// vsRule applies one step size per tap.
type vsRule struct {
	mu      []float64
	leakage float64
}

func (r *vsRule) adapt(w, x []float64, e float64) {
	for i, v := range x {
		mu := r.mu[i]
		w[i] = (1-r.leakage*mu)*w[i] + mu*e*v
	}
}

func (r *vsRule) reset() {}

// NewVSLMS returns a variable step-size LMS filter with one step per tap;
// the kernel length is len(mu).
func NewVSLMS(mu []float64, opts ...Option) (*Filter, error) {
	return newFilter(VSLMS, len(mu), opts, func(cfg config) (rule, error) {
		steps := make([]float64, len(mu))
		for i, m := range mu {
			if err := checkStep(m); err != nil {
				return nil, fmt.Errorf("tap %d: %w", i, err)
			}

			steps[i] = m
		}

		return &vsRule{mu: steps, leakage: cfg.leakage}, nil
	})
}

// StepSizes returns the per-tap steps of a VSLMS filter, nil otherwise.
func (f *Filter) StepSizes() []float64 {
	r, ok := f.rule.(*vsRule)
	if !ok {
		return nil
	}

	return append([]float64(nil), r.mu...)
}

// SetStepSizes replaces the per-tap steps of a VSLMS filter.
func (f *Filter) SetStepSizes(mu []float64) error {
	r, ok := f.rule.(*vsRule)
	if !ok {
		return fmt.Errorf("%w: %s has no per-tap steps", ErrInvalidParameter, f.alg)
	}

	if len(mu) != len(r.mu) {
		return fmt.Errorf("%w: expected %d steps, got %d", ErrLengthMismatch, len(r.mu), len(mu))
	}

	for i, m := range mu {
		if err := checkStep(m); err != nil {
			return fmt.Errorf("tap %d: %w", i, err)
		}
	}

	copy(r.mu, mu)

	return nil
}
