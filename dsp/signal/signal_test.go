package signal

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadRate(t *testing.T) {
	for _, rate := range []int{0, -44100} {
		_, err := New([]float64{1}, rate)
		require.ErrorIs(t, err, ErrInvalidRate)
	}
}

func TestNewCopiesSamples(t *testing.T) {
	in := []float64{1, 2, 3}
	s, err := New(in, 8000)
	require.NoError(t, err)

	in[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, s.Samples())
	assert.Equal(t, 8000, s.Rate())
	assert.Equal(t, 3, s.Len())
	assert.InDelta(t, 3.0/8000, s.Duration(), 1e-15)
}

func TestAddSubConcat(t *testing.T) {
	a, _ := New([]float64{1, 2, 3}, 100)
	b, _ := New([]float64{1, 1}, 100)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 3}, sum.Samples())

	diff, err := Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, -3}, diff.Samples())

	cat, err := Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 1, 1}, cat.Samples())
	assert.Equal(t, 100, cat.Rate())
}

func TestRateMismatch(t *testing.T) {
	a, _ := New([]float64{1}, 100)
	b, _ := New([]float64{1}, 200)

	_, err := Add(a, b)
	require.ErrorIs(t, err, ErrRateMismatch)
	_, err = Sub(a, b)
	require.ErrorIs(t, err, ErrRateMismatch)
	_, err = Concat(a, b)
	require.ErrorIs(t, err, ErrRateMismatch)
}

func TestFloatBufferRoundTrip(t *testing.T) {
	stereo := &audio.FloatBuffer{
		Data:   []float64{1, -1, 2, -2, 3, -3},
		Format: &audio.Format{NumChannels: 2, SampleRate: 48000},
	}

	right, err := FromFloatBuffer(stereo, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -2, -3}, right.Samples())
	assert.Equal(t, 48000, right.Rate())

	mono := right.FloatBuffer()
	assert.Equal(t, 1, mono.Format.NumChannels)
	assert.Equal(t, 48000, mono.Format.SampleRate)
	assert.Equal(t, right.Samples(), mono.Data)

	_, err = FromFloatBuffer(stereo, 2)
	require.ErrorIs(t, err, ErrInvalidChannel)

	_, err = FromFloatBuffer(&audio.FloatBuffer{Format: &audio.Format{NumChannels: 1}}, 0)
	require.ErrorIs(t, err, ErrInvalidRate)
}

func TestWithSamplesKeepsRate(t *testing.T) {
	s, _ := New(nil, 22050)
	out := s.WithSamples([]float64{0.5})
	assert.Equal(t, 22050, out.Rate())
	assert.Equal(t, []float64{0.5}, out.Samples())
}
