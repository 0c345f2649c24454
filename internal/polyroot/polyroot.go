// Package polyroot provides polynomial root-finding and root grouping
// utilities shared by the filter design packages.
//
// Coefficient slices passed to [Roots] are in descending power order:
//
//	c[0]*x^n + c[1]*x^(n-1) + ... + c[n]
//
// which is the same layout as a transfer-function tap slice in ascending
// powers of z^-1 read as a polynomial in z.
package polyroot

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrNumericalFailure is returned when a polynomial is degenerate or the
// eigenvalue solver does not converge.
var ErrNumericalFailure = errors.New("polyroot: numerical failure")

// Roots returns all complex roots of the real polynomial c (descending
// powers). Leading zero coefficients are ignored, trailing zero coefficients
// produce exact roots at the origin. Degree 0 yields no roots and degree 1 is
// solved directly; higher degrees use the eigenvalues of the companion matrix.
//
// Complex roots are returned as exact conjugate pairs.
func Roots(c []float64) ([]complex128, error) {
	lead := 0
	for lead < len(c) && c[lead] == 0 {
		lead++
	}

	if lead == len(c) {
		return nil, fmt.Errorf("%w: all coefficients are zero", ErrNumericalFailure)
	}

	c = c[lead:]
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite coefficient", ErrNumericalFailure)
		}
	}

	zeros := 0
	for len(c)-zeros > 1 && c[len(c)-1-zeros] == 0 {
		zeros++
	}

	p := c[:len(c)-zeros]
	roots := make([]complex128, 0, len(c)-1)

	switch deg := len(p) - 1; deg {
	case 0:
	case 1:
		roots = append(roots, complex(-p[1]/p[0], 0))
	default:
		r, err := companionRoots(p)
		if err != nil {
			return nil, err
		}

		roots = append(roots, r...)
	}

	for range zeros {
		roots = append(roots, 0)
	}

	return roots, nil
}

// companionRoots computes the eigenvalues of the companion matrix of p
// (degree >= 2). The LAPACK-backed solver returns complex eigenvalues of a
// real matrix as exact conjugate pairs.
func companionRoots(p []float64) ([]complex128, error) {
	n := len(p) - 1
	lead := p[0]

	m := mat.NewDense(n, n, nil)
	for j := range n {
		m.Set(0, j, -p[j+1]/lead)
	}

	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: eigenvalue iteration did not converge (degree %d)", ErrNumericalFailure, n)
	}

	roots := eig.Values(nil)
	for _, r := range roots {
		if cmplx.IsNaN(r) || cmplx.IsInf(r) {
			return nil, fmt.Errorf("%w: non-finite eigenvalue", ErrNumericalFailure)
		}
	}

	return roots, nil
}

// EvalReal evaluates a real polynomial (descending powers) at complex x using
// Horner's method.
func EvalReal(c []float64, x complex128) complex128 {
	if len(c) == 0 {
		return 0
	}

	v := complex(c[0], 0)
	for i := 1; i < len(c); i++ {
		v = v*x + complex(c[i], 0)
	}

	return v
}

// Eval evaluates a complex polynomial (descending powers) at x using
// Horner's method.
func Eval(c []complex128, x complex128) complex128 {
	if len(c) == 0 {
		return 0
	}

	v := c[0]
	for i := 1; i < len(c); i++ {
		v = v*x + c[i]
	}

	return v
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
