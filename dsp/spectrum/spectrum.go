package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// split unpacks in into pooled re/im halves. The caller returns buf to the
// pool when done.
func split(in []complex128) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	n := len(in)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	}
	buf.data = buf.data[:2*n]
	re, im = buf.data[:n], buf.data[n:]
	unpack(re, im, in)
	return re, im, buf
}

// Magnitude returns |X[k]| for each bin. Scratch memory is pooled, so in
// steady state only the output slice is allocated.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)

	return out
}

// MagnitudeFromParts computes sqrt(re^2 + im^2) into dst. All three slices
// must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)

	return out
}

// MagnitudeDB returns 20*log10|X[k]|. Zero bins map to -Inf.
func MagnitudeDB(in []complex128) []float64 {
	out := Magnitude(in)
	for i, m := range out {
		out[i] = 20 * math.Log10(m)
	}
	return out
}

// Phase returns arg(X[k]) in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi jumps removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		switch d := phase[i] - phase[i-1]; {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}

	return out
}
