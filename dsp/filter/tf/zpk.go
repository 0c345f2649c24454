package tf

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/internal/polyroot"
)

// ZPK is the zero/pole/gain form of a transfer function in positive powers
// of z:
//
//	H(z) = Gain * prod(z - Zeros[i]) / prod(z - Poles[j])
//
// When Zeros is shorter than Poles the surplus poles stand for a pure delay
// (leading zero numerator taps).
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// ZPK returns the zeros, poles and gain. The numerator and denominator are
// brought to the same length with trailing zeros (roots at the origin) before
// root finding. The result is computed once and cached until the next
// [TransferFunction.Change].
func (t *TransferFunction) ZPK() (ZPK, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.zpk != nil {
		return cloneZPK(*t.zpk), nil
	}

	n := max(len(t.b), len(t.a))
	b := make([]float64, n)
	a := make([]float64, n)
	copy(b, t.b)
	copy(a, t.a)

	gain := 0.0
	for _, v := range b {
		if v != 0 {
			gain = v
			break
		}
	}

	if gain == 0 {
		return ZPK{}, fmt.Errorf("%w: numerator is zero", ErrInvalidCoefficient)
	}

	zeros, err := polyroot.Roots(b)
	if err != nil {
		return ZPK{}, fmt.Errorf("tf: zeros: %w", err)
	}

	poles, err := polyroot.Roots(a)
	if err != nil {
		return ZPK{}, fmt.Errorf("tf: poles: %w", err)
	}

	t.zpk = &ZPK{Zeros: zeros, Poles: poles, Gain: gain}

	return cloneZPK(*t.zpk), nil
}

func cloneZPK(z ZPK) ZPK {
	return ZPK{
		Zeros: append([]complex128(nil), z.Zeros...),
		Poles: append([]complex128(nil), z.Poles...),
		Gain:  z.Gain,
	}
}

// Zeros returns the zeros of H(z).
func (t *TransferFunction) Zeros() ([]complex128, error) {
	zpk, err := t.ZPK()
	return zpk.Zeros, err
}

// Poles returns the poles of H(z).
func (t *TransferFunction) Poles() ([]complex128, error) {
	zpk, err := t.ZPK()
	return zpk.Poles, err
}

// Gain returns the leading nonzero numerator coefficient.
func (t *TransferFunction) Gain() (float64, error) {
	zpk, err := t.ZPK()
	return zpk.Gain, err
}

// FromZPK expands zeros and poles into polynomial coefficients and scales the
// numerator by gain. Complex roots must come in conjugate pairs; the
// imaginary rounding remainder of the expansion is dropped. Fewer zeros than
// poles produce leading zero numerator taps; trailing zero taps (roots at the
// origin) are removed.
func FromZPK(zeros, poles []complex128, gain float64) (*TransferFunction, error) {
	b := polyroot.RealPart(polyroot.FromRoots(zeros))
	a := polyroot.RealPart(polyroot.FromRoots(poles))

	for i := range b {
		b[i] *= gain
	}

	if d := len(poles) - len(zeros); d > 0 {
		b = append(make([]float64, d), b...)
	}

	return New(core.TrimTrailingZeros(b), core.TrimTrailingZeros(a))
}
