// Package testutil holds deterministic test signals and tolerance helpers
// shared by the filter package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a sine at normalized frequency f (cycles per sample).
func Sine(f, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * f
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude) from a
// fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos. Out-of-range positions yield
// silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Reference filters x through b/a with a textbook difference equation. It is
// deliberately naive and serves as the oracle for the optimized filter paths.
func Reference(b, a, x []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		var acc float64
		for k := 0; k < len(b) && k <= n; k++ {
			acc += b[k] * x[n-k]
		}
		for k := 1; k < len(a) && k <= n; k++ {
			acc -= a[k] * y[n-k]
		}
		y[n] = acc / a[0]
	}
	return y
}
