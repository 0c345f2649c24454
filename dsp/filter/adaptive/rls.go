package adaptive

import "gonum.org/v1/gonum/mat"

// rlsRule keeps the order x order inverse correlation estimate P. Each update
// costs O(taps^2).
type rlsRule struct {
	lambda, delta, leakage float64

	p     *mat.Dense
	outer *mat.Dense
	xbuf  []float64
	xv    *mat.VecDense
	px    *mat.VecDense
	xp    *mat.VecDense
	g     *mat.VecDense
}

func newRLSRule(taps int, cfg config) *rlsRule {
	xbuf := make([]float64, taps)
	r := &rlsRule{
		lambda:  cfg.lambda,
		delta:   cfg.delta,
		leakage: cfg.leakage,
		p:       mat.NewDense(taps, taps, nil),
		outer:   mat.NewDense(taps, taps, nil),
		xbuf:    xbuf,
		xv:      mat.NewVecDense(taps, xbuf),
		px:      mat.NewVecDense(taps, nil),
		xp:      mat.NewVecDense(taps, nil),
		g:       mat.NewVecDense(taps, nil),
	}
	r.reset()

	return r
}

func (r *rlsRule) adapt(w, x []float64, e float64) {
	copy(r.xbuf, x)

	// g = P x / (lambda + x' P x)
	r.px.MulVec(r.p, r.xv)
	r.g.ScaleVec(1/(r.lambda+mat.Dot(r.xv, r.px)), r.px)

	// P = (P - g x' P) / lambda
	r.xp.MulVec(r.p.T(), r.xv)
	r.outer.Outer(1, r.g, r.xp)
	r.p.Sub(r.p, r.outer)
	r.p.Scale(1/r.lambda, r.p)

	leak(w, r.leakage, 1)

	for i := range w {
		w[i] += r.g.AtVec(i) * e
	}
}

func (r *rlsRule) reset() {
	r.p.Zero()

	n, _ := r.p.Dims()
	for i := range n {
		r.p.Set(i, i, 1/r.delta)
	}
}

// NewRLS returns a recursive-least-squares filter. [WithLambda] sets the
// forgetting factor and [WithDelta] the initial P = I/delta.
func NewRLS(taps int, opts ...Option) (*Filter, error) {
	return newFilter(RLS, taps, opts, func(cfg config) (rule, error) {
		return newRLSRule(taps, cfg), nil
	})
}

// Gain returns the RLS gain vector of the last update, nil for other rules.
func (f *Filter) Gain() []float64 {
	r, ok := f.rule.(*rlsRule)
	if !ok {
		return nil
	}

	return mat.Col(nil, 0, r.g)
}
