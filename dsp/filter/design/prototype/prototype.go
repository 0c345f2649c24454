package prototype

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// ErrInvalidSpec is returned for a non-positive order or ripple values that
// cannot describe a realizable filter.
var ErrInvalidSpec = errors.New("prototype: invalid specification")

// Prototype is an analog lowpass pole/zero set normalized to 1 rad/s.
type Prototype struct {
	Zeros []complex128
	Poles []complex128
}

// Order returns the number of poles.
func (p Prototype) Order() int { return len(p.Poles) }

func checkOrder(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: order %d", ErrInvalidSpec, n)
	}
	return nil
}

// theta returns pi(2k+1)/(2n).
func theta(k, n int) float64 {
	return math.Pi * float64(2*k+1) / float64(2*n)
}

// mirrored fills roots so that roots[n-1-k] = conj(roots[k]) and the middle
// root of an odd count is exactly real.
func mirrored(n int, f func(k int) complex128) []complex128 {
	roots := make([]complex128, n)
	for k := range n / 2 {
		r := f(k)
		roots[k] = r
		roots[n-1-k] = cmplx.Conj(r)
	}

	if n%2 == 1 {
		roots[n/2] = complex(real(f(n/2)), 0)
	}

	return roots
}

// Butterworth returns the n poles -sin(theta_k) + j cos(theta_k) on the left
// half of the unit circle.
func Butterworth(n int) (Prototype, error) {
	if err := checkOrder(n); err != nil {
		return Prototype{}, err
	}

	poles := mirrored(n, func(k int) complex128 {
		t := theta(k, n)
		return complex(-math.Sin(t), math.Cos(t))
	})

	return Prototype{Poles: poles}, nil
}

// chebyshevPoles places n poles on the Chebyshev ellipse for ripple factor
// eps.
func chebyshevPoles(n int, eps float64) []complex128 {
	s := math.Asinh(1/eps) / float64(n)
	sh, ch := math.Sinh(s), math.Cosh(s)

	return mirrored(n, func(k int) complex128 {
		t := theta(k, n)
		return complex(-sh*math.Sin(t), ch*math.Cos(t))
	})
}

// Chebyshev1 returns the Type I prototype with rippleDB of passband ripple.
// The passband edge is at 1 rad/s, where the response is down by rippleDB.
func Chebyshev1(n int, rippleDB float64) (Prototype, error) {
	if err := checkOrder(n); err != nil {
		return Prototype{}, err
	}

	if !(rippleDB > 0) || math.IsInf(rippleDB, 0) {
		return Prototype{}, fmt.Errorf("%w: ripple %g dB", ErrInvalidSpec, rippleDB)
	}

	eps := core.RippleEpsilon(rippleDB)

	return Prototype{Poles: chebyshevPoles(n, eps)}, nil
}

// Chebyshev2 returns the Type II (inverse Chebyshev) prototype with
// stopbandDB of minimum stopband attenuation. The stopband edge is at
// 1 rad/s. Poles are the reciprocals of the Type I poles for
// eps = 1/sqrt(10^(As/10)-1); zeros sit at j/cos(theta_k).
func Chebyshev2(n int, stopbandDB float64) (Prototype, error) {
	if err := checkOrder(n); err != nil {
		return Prototype{}, err
	}

	if !(stopbandDB > 0) || math.IsInf(stopbandDB, 0) {
		return Prototype{}, fmt.Errorf("%w: stopband %g dB", ErrInvalidSpec, stopbandDB)
	}

	eps := 1 / core.RippleEpsilon(stopbandDB)

	poles := chebyshevPoles(n, eps)
	for i, p := range poles {
		poles[i] = 1 / p
	}

	zeros := make([]complex128, n)
	for k := range n / 2 {
		z := complex(0, 1/math.Cos(theta(k, n)))
		zeros[k] = z
		zeros[n-1-k] = cmplx.Conj(z)
	}

	if n%2 == 1 {
		zeros[n/2] = cmplx.Inf()
	}

	return Prototype{Zeros: zeros, Poles: poles}, nil
}
