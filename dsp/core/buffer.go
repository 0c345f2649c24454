package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}

// Clone returns a copy of src that shares no memory with it.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Reverse writes src in reverse order into dst, which must be at least as
// long as src.
func Reverse(dst, src []float64) {
	n := len(src)
	for i, v := range src {
		dst[n-1-i] = v
	}
}

// TrimTrailingZeros drops trailing exact zeros but always keeps the first
// element.
func TrimTrailingZeros(x []float64) []float64 {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}
