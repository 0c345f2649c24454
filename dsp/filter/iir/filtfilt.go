package iir

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-filter/dsp/filter/tf"
	"gonum.org/v1/gonum/mat"
)

// ErrShortSignal is returned by FiltFilt when the input is too short for
// the edge extension.
var ErrShortSignal = errors.New("iir: signal too short")

// InitialState returns the transposed-form state at which the filter (b, a)
// sits when fed a constant unit input forever. Scaling it by the first input
// sample starts a filter without a step transient.
//
// It solves (I - A^T) zi = b[1:] - a[1:] b[0], where A is the companion
// matrix of the normalized denominator.
func InitialState(b, a []float64) ([]float64, error) {
	nb, na, err := tf.Normalize(b, a)
	if err != nil {
		return nil, err
	}

	pb, pa := pad(nb, na)
	m := len(pb) - 1
	if m == 0 {
		return []float64{}, nil
	}

	var sum float64
	for _, v := range pa {
		sum += v
	}
	if math.Abs(sum) < tf.PivotThreshold {
		return nil, fmt.Errorf("iir: %w: pole at z = 1 has no steady state", tf.ErrInvalidCoefficient)
	}

	// I - A^T, with A[0][j] = -a[j+1] and A[i][i-1] = 1.
	sys := mat.NewDense(m, m, nil)
	for i := range m {
		sys.Set(i, i, 1)
		sys.Set(i, 0, sys.At(i, 0)+pa[i+1])
		if i+1 < m {
			sys.Set(i, i+1, -1)
		}
	}

	rhs := mat.NewVecDense(m, nil)
	for i := range m {
		rhs.SetVec(i, pb[i+1]-pa[i+1]*pb[0])
	}

	var zi mat.VecDense
	if err := zi.SolveVec(sys, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("iir: %w: %v", tf.ErrInvalidCoefficient, err)
		}
	}

	out := make([]float64, m)
	for i := range out {
		out[i] = zi.AtVec(i)
	}

	return out, nil
}

// FiltFilt filters x forward and then backward through (b, a), giving zero
// phase and the squared magnitude response. Both ends are extended by odd
// reflection over 3*order samples and each pass starts from the steady
// state scaled to its first sample, which suppresses edge transients.
func FiltFilt(b, a, x []float64) ([]float64, error) {
	f, err := NewZi(b, a)
	if err != nil {
		return nil, err
	}

	zi, err := InitialState(b, a)
	if err != nil {
		return nil, err
	}

	edge := 3 * f.Order()
	if len(x) <= edge {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrShortSignal, len(x), edge)
	}

	ext := reflect(x, edge)

	f.start(zi, ext[0])
	f.ProcessBlock(ext)

	slices.Reverse(ext)
	f.start(zi, ext[0])
	f.ProcessBlock(ext)
	slices.Reverse(ext)

	return ext[edge : edge+len(x)], nil
}

func (f *Zi) start(zi []float64, x0 float64) {
	for i := range f.z {
		f.z[i] = zi[i] * x0
	}
}

// reflect returns x with edge samples of odd extension on both sides:
// 2*x[0] - x[edge..1] before and 2*x[n-1] - x[n-2..n-1-edge] after.
func reflect(x []float64, edge int) []float64 {
	n := len(x)
	out := make([]float64, 0, n+2*edge)

	for i := edge; i >= 1; i-- {
		out = append(out, 2*x[0]-x[i])
	}
	out = append(out, x...)
	for i := 1; i <= edge; i++ {
		out = append(out, 2*x[n-1]-x[n-1-i])
	}

	return out
}
