// Package core provides numeric and slice helpers shared by the filter
// packages.
package core

import "math"

const defaultEpsilon = 1e-12

// DenormalThreshold is the magnitude below which filter state is flushed to
// zero.
const DenormalThreshold = 1e-30

// NearlyEqual reports whether a and b are equal within eps, absolute or
// relative to the larger magnitude.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))

	return diff/largest <= eps
}

// FlushDenormals converts tiny values to exact zero so recursive filter state
// decaying towards silence does not linger in the subnormal range.
func FlushDenormals(x float64) float64 {
	if x > -DenormalThreshold && x < DenormalThreshold {
		return 0
	}

	return x
}

// IsFinite reports whether every element of x is neither NaN nor Inf.
func IsFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// RippleEpsilon converts a ripple or attenuation in dB to the ripple factor
// sqrt(10^(dB/10) - 1) used by Chebyshev and elliptic designs.
func RippleEpsilon(db float64) float64 {
	return math.Sqrt(math.Pow(10, db/10) - 1)
}
