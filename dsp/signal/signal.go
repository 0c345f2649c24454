// Package signal provides the sample container the filters consume and
// produce: an ordered run of samples tagged with its sampling rate.
package signal

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var (
	// ErrInvalidRate is returned for non-positive sampling rates.
	ErrInvalidRate = errors.New("signal: sampling rate must be > 0")
	// ErrRateMismatch is returned when combining signals of different rates.
	ErrRateMismatch = errors.New("signal: sampling rate mismatch")
	// ErrInvalidChannel is returned for a channel index outside the buffer.
	ErrInvalidChannel = errors.New("signal: invalid channel")
)

// Signal is a mono sample sequence with a sampling rate in Hz.
type Signal struct {
	samples []float64
	rate    int
}

// New copies samples into a signal sampled at rate Hz.
func New(samples []float64, rate int) (*Signal, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	s := &Signal{samples: make([]float64, len(samples)), rate: rate}
	copy(s.samples, samples)

	return s, nil
}

// Samples returns the sample slice. Callers must not modify it.
func (s *Signal) Samples() []float64 { return s.samples }

// Rate returns the sampling rate in Hz.
func (s *Signal) Rate() int { return s.rate }

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.samples) }

// Duration returns the length in seconds.
func (s *Signal) Duration() float64 {
	return float64(len(s.samples)) / float64(s.rate)
}

// WithSamples returns a new signal at the same rate holding samples, which
// is taken over without copying.
func (s *Signal) WithSamples(samples []float64) *Signal {
	return &Signal{samples: samples, rate: s.rate}
}

// Add returns the sample-wise sum of a and b. The shorter signal is treated
// as zero beyond its end.
func Add(a, b *Signal) (*Signal, error) {
	return combine(a, b, 1)
}

// Sub returns a - b, with the same length rule as [Add].
func Sub(a, b *Signal) (*Signal, error) {
	return combine(a, b, -1)
}

func combine(a, b *Signal, sign float64) (*Signal, error) {
	if a.rate != b.rate {
		return nil, fmt.Errorf("%w: %d vs %d", ErrRateMismatch, a.rate, b.rate)
	}

	out := make([]float64, max(len(a.samples), len(b.samples)))
	copy(out, a.samples)

	for i, v := range b.samples {
		out[i] += sign * v
	}

	return &Signal{samples: out, rate: a.rate}, nil
}

// Concat returns a followed by b.
func Concat(a, b *Signal) (*Signal, error) {
	if a.rate != b.rate {
		return nil, fmt.Errorf("%w: %d vs %d", ErrRateMismatch, a.rate, b.rate)
	}

	out := make([]float64, 0, len(a.samples)+len(b.samples))
	out = append(out, a.samples...)
	out = append(out, b.samples...)

	return &Signal{samples: out, rate: a.rate}, nil
}

// FromFloatBuffer extracts one channel of an interleaved go-audio buffer.
func FromFloatBuffer(buf *audio.FloatBuffer, channel int) (*Signal, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: buffer has no format", ErrInvalidRate)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	if channel < 0 || channel >= channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, channel, channels)
	}

	if buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, buf.Format.SampleRate)
	}

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)

	for i := range samples {
		samples[i] = buf.Data[i*channels+channel]
	}

	return &Signal{samples: samples, rate: buf.Format.SampleRate}, nil
}

// FloatBuffer returns the signal as a mono go-audio buffer. The data is
// copied.
func (s *Signal) FloatBuffer() *audio.FloatBuffer {
	data := make([]float64, len(s.samples))
	copy(data, s.samples)

	return &audio.FloatBuffer{
		Data:   data,
		Format: &audio.Format{NumChannels: 1, SampleRate: s.rate},
	}
}
