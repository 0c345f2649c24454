package prototype

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/internal/polyroot"
)

// MaxBesselOrder bounds the Bessel order; beyond it the reverse Bessel
// polynomial coefficients span too many decades for reliable eigenvalues.
const MaxBesselOrder = 25

// besselCoefficients returns C(k,n) = (2n-k)! / (2^(n-k) k! (n-k)!) for
// k = 0..n, computed from C(n,n) = 1 downward with
// C(k-1,n) = C(k,n) (2n-k+1) k / (2(n-k+1)).
func besselCoefficients(n int) []float64 {
	c := make([]float64, n+1)
	c[n] = 1

	for k := n; k > 0; k-- {
		c[k-1] = c[k] * float64(2*n-k+1) * float64(k) / float64(2*(n-k+1))
	}

	return c
}

// Bessel returns the Bessel (Thomson) prototype: the roots of the reverse
// Bessel polynomial theta_n(s) = sum C(k,n) s^k, scaled by C(0,n)^(1/n) so
// that the asymptotic response matches a Butterworth of the same order.
func Bessel(n int) (Prototype, error) {
	if err := checkOrder(n); err != nil {
		return Prototype{}, err
	}

	if n > MaxBesselOrder {
		return Prototype{}, fmt.Errorf("%w: Bessel order %d exceeds %d", ErrInvalidSpec, n, MaxBesselOrder)
	}

	c := besselCoefficients(n)
	scale := math.Pow(c[0], 1/float64(n))

	// Substitute s = scale*x; descending powers of x.
	desc := make([]float64, n+1)
	pow := 1.0
	for k := 0; k <= n; k++ {
		desc[n-k] = c[k] * pow / c[0]
		pow *= scale
	}

	poles, err := polyroot.Roots(desc)
	if err != nil {
		return Prototype{}, fmt.Errorf("prototype: bessel roots: %w", err)
	}

	return Prototype{Poles: poles}, nil
}
