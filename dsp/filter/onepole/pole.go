//go:build !fastmath

package onepole

import "math"

// pole returns exp(-2*pi*f).
func pole(f float64) float64 {
	return math.Exp(-2 * math.Pi * f)
}
