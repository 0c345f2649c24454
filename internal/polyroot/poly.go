package polyroot

import (
	"math"
	"math/cmplx"
	"sort"
)

// FromRoots expands prod(x - r) into complex coefficients in descending
// powers. The result has len(roots)+1 entries and a leading 1.
func FromRoots(roots []complex128) []complex128 {
	c := make([]complex128, len(roots)+1)
	c[0] = 1

	for i, r := range roots {
		for j := i + 1; j > 0; j-- {
			c[j] -= r * c[j-1]
		}
	}

	return c
}

// RealPart returns the real parts of c, discarding the imaginary remainder
// left by rounding when c stems from a conjugate-symmetric root set.
func RealPart(c []complex128) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}

	return out
}

// Mul returns the product of two real polynomials, i.e. the full linear
// convolution of their coefficient slices. Either slice may use ascending or
// descending order as long as both use the same.
func Mul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}

		for j, y := range b {
			out[i+j] += x * y
		}
	}

	return out
}

// Add returns a + b with the shorter polynomial zero-extended at its tail.
// Both slices are ascending in z^-1, so the constant terms line up.
func Add(a, b []float64) []float64 {
	n := max(len(a), len(b))
	out := make([]float64, n)
	copy(out, a)

	for i, v := range b {
		out[i] += v
	}

	return out
}

// Group holds one real-coefficient factor of at most second order: a
// conjugate pair, two real roots, or a single real root (Size 1).
type Group struct {
	Roots [2]complex128
	Size  int
}

// Quadratic returns the monic factor coefficients [1, c1, c2] in descending
// powers. A single-root group has c2 = 0.
func (g Group) Quadratic() [3]float64 {
	if g.Size == 1 {
		return [3]float64{1, -real(g.Roots[0]), 0}
	}

	r1, r2 := g.Roots[0], g.Roots[1]
	return [3]float64{1, -real(r1 + r2), real(r1 * r2)}
}

// MaxAbs returns the largest root magnitude in the group.
func (g Group) MaxAbs() float64 {
	m := cmplx.Abs(g.Roots[0])
	if g.Size == 2 {
		m = math.Max(m, cmplx.Abs(g.Roots[1]))
	}

	return m
}

// Distance returns the smallest complex-plane distance between any root of
// g and any root of h.
func (g Group) Distance(h Group) float64 {
	d := math.Inf(1)
	for i := range g.Size {
		for j := range h.Size {
			d = math.Min(d, cmplx.Abs(g.Roots[i]-h.Roots[j]))
		}
	}

	return d
}

// Groups partitions a conjugate-symmetric root set into real second-order
// factors. Complex roots are matched with their conjugates; the real roots are
// sorted by descending magnitude and paired in that order, leaving one
// single-root group when their count is odd.
func Groups(roots []complex128) ([]Group, error) {
	used := make([]bool, len(roots))
	groups := make([]Group, 0, (len(roots)+1)/2)
	reals := make([]float64, 0, len(roots))

	for i, r := range roots {
		if used[i] {
			continue
		}

		used[i] = true
		if imag(r) == 0 {
			reals = append(reals, real(r))
			continue
		}

		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(roots[j] - cmplx.Conj(r)); d < bestDist {
				best, bestDist = j, d
			}
		}

		if best < 0 || !IsConjugate(r, roots[best], ConjugateTol) {
			return nil, ErrNumericalFailure
		}

		used[best] = true
		groups = append(groups, Group{Roots: [2]complex128{r, roots[best]}, Size: 2})
	}

	sort.Slice(reals, func(i, j int) bool {
		return math.Abs(reals[i]) > math.Abs(reals[j])
	})

	for i := 0; i < len(reals); i += 2 {
		if i+1 < len(reals) {
			groups = append(groups, Group{
				Roots: [2]complex128{complex(reals[i], 0), complex(reals[i+1], 0)},
				Size:  2,
			})

			continue
		}

		groups = append(groups, Group{Roots: [2]complex128{complex(reals[i], 0)}, Size: 1})
	}

	return groups, nil
}
