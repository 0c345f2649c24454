// Package delay provides a fixed-length delay line whose contents can be read
// as one contiguous window, most recent sample first.
package delay

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for non-positive delay line lengths.
	ErrInvalidSize = errors.New("delay: size must be > 0")
	// ErrLengthMismatch is returned by Load for a window of the wrong length.
	ErrLengthMismatch = errors.New("delay: length mismatch")
)

// Line is a ring buffer of n samples stored twice: every write lands at pos
// and pos+n, so buf[pos:pos+n] is always the full history in order from
// newest to oldest. Writes are O(1) and reads never wrap.
type Line struct {
	buf []float64
	n   int
	pos int
}

// New returns a zeroed delay line holding size samples.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Line{buf: make([]float64, 2*size), n: size}, nil
}

// Len returns the number of samples held.
func (d *Line) Len() int {
	return d.n
}

// Write pushes one sample, dropping the oldest.
func (d *Line) Write(sample float64) {
	if d.pos == 0 {
		d.pos = d.n
	}
	d.pos--
	d.buf[d.pos] = sample
	d.buf[d.pos+d.n] = sample
}

// Read returns the sample written delay writes ago; Read(0) is the newest.
// delay must be in [0, Len()).
func (d *Line) Read(delay int) float64 {
	return d.buf[d.pos+delay]
}

// Window returns the history, newest first. The slice aliases the line and
// is only valid until the next Write.
func (d *Line) Window() []float64 {
	return d.buf[d.pos : d.pos+d.n]
}

// Load replaces the history with w, given newest first.
func (d *Line) Load(w []float64) error {
	if len(w) != d.n {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, d.n, len(w))
	}
	d.pos = 0
	copy(d.buf, w)
	copy(d.buf[d.n:], w)
	return nil
}

// Reset clears the history.
func (d *Line) Reset() {
	clear(d.buf)
	d.pos = 0
}
