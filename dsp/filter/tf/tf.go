package tf

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-filter/dsp/core"
)

var (
	// ErrInvalidCoefficient is returned for empty or non-finite coefficient
	// sets and for a numerically zero a[0].
	ErrInvalidCoefficient = errors.New("tf: invalid coefficient")
	// ErrOrderMismatch is returned when replacement coefficients do not
	// match the existing numerator/denominator lengths.
	ErrOrderMismatch = errors.New("tf: order mismatch")
)

// PivotThreshold is the magnitude below which a[0] is treated as zero.
const PivotThreshold = 1e-30

// Kind tells which runtime filter variant a transfer function needs.
type Kind int

const (
	// KindFIR has a trivial denominator and runs as a convolution.
	KindFIR Kind = iota
	// KindIIR has feedback.
	KindIIR
)

func (k Kind) String() string {
	switch k {
	case KindFIR:
		return "FIR"
	case KindIIR:
		return "IIR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TransferFunction is B(z)/A(z) with coefficients in ascending powers of
// z^-1 and a[0] == 1.
type TransferFunction struct {
	b, a []float64

	mu  sync.Mutex
	zpk *ZPK
}

// New builds a transfer function from numerator b and denominator a. Both
// are copied and divided by a[0].
func New(b, a []float64) (*TransferFunction, error) {
	nb, na, err := Normalize(b, a)
	if err != nil {
		return nil, err
	}

	return &TransferFunction{b: nb, a: na}, nil
}

// New32 is [New] for single-precision coefficient literals.
func New32(b, a []float32) (*TransferFunction, error) {
	return New(widen(b), widen(a))
}

// NewFIR builds the transfer function of an FIR kernel (a = [1]).
func NewFIR(kernel []float64) (*TransferFunction, error) {
	return New(kernel, []float64{1})
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

// Normalize returns copies of b and a divided by a[0].
func Normalize(b, a []float64) ([]float64, []float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, fmt.Errorf("%w: empty numerator or denominator", ErrInvalidCoefficient)
	}

	if !core.IsFinite(b) || !core.IsFinite(a) {
		return nil, nil, fmt.Errorf("%w: non-finite coefficient", ErrInvalidCoefficient)
	}

	a0 := a[0]
	if math.Abs(a0) < PivotThreshold {
		return nil, nil, fmt.Errorf("%w: a[0] = %g", ErrInvalidCoefficient, a0)
	}

	nb := make([]float64, len(b))
	for i, v := range b {
		nb[i] = v / a0
	}

	na := make([]float64, len(a))
	na[0] = 1
	for i := 1; i < len(a); i++ {
		na[i] = a[i] / a0
	}

	return nb, na, nil
}

// Numerator returns a copy of b.
func (t *TransferFunction) Numerator() []float64 { return core.Clone(t.b) }

// Denominator returns a copy of a.
func (t *TransferFunction) Denominator() []float64 { return core.Clone(t.a) }

// Order returns max(len(b), len(a)) - 1.
func (t *TransferFunction) Order() int {
	return max(len(t.b), len(t.a)) - 1
}

// IsFIR reports whether every denominator tap after a[0] is zero.
func (t *TransferFunction) IsFIR() bool {
	for _, v := range t.a[1:] {
		if v != 0 {
			return false
		}
	}
	return true
}

// Kind returns the runtime variant the transfer function needs.
func (t *TransferFunction) Kind() Kind {
	if t.IsFIR() {
		return KindFIR
	}
	return KindIIR
}

// Change replaces the coefficients in place. The new numerator and
// denominator must have the same lengths as the current ones.
func (t *TransferFunction) Change(b, a []float64) error {
	if len(b) != len(t.b) || len(a) != len(t.a) {
		return fmt.Errorf("%w: have %d/%d taps, got %d/%d", ErrOrderMismatch, len(t.b), len(t.a), len(b), len(a))
	}

	nb, na, err := Normalize(b, a)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.b, t.a, t.zpk = nb, na, nil
	t.mu.Unlock()

	return nil
}

// IsStable reports whether all poles lie strictly inside the unit circle.
// FIR transfer functions are always stable.
func (t *TransferFunction) IsStable() (bool, error) {
	if t.IsFIR() {
		return true, nil
	}

	zpk, err := t.ZPK()
	if err != nil {
		return false, err
	}

	for _, p := range zpk.Poles {
		if real(p)*real(p)+imag(p)*imag(p) >= 1 {
			return false, nil
		}
	}

	return true, nil
}

// String formats the coefficients for diagnostics.
func (t *TransferFunction) String() string {
	return fmt.Sprintf("b=%v a=%v", t.b, t.a)
}
