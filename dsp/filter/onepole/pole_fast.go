//go:build fastmath

package onepole

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// pole returns exp(-2*pi*f) using a fast approximation.
func pole(f float64) float64 {
	return approx.FastExp(-2 * math.Pi * f)
}
