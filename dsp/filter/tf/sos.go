package tf

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/internal/polyroot"
)

// ToSOS factors the transfer function into ceil(order/2) second-order
// sections whose cascade reproduces it.
//
// Pairing rule: zeros and poles are first grouped into real quadratic
// factors (conjugate pairs, then the real roots sorted by descending
// magnitude and taken two at a time, an odd one left as a first-order
// factor). Pole groups are emitted in descending order of their largest
// magnitude; each takes the remaining zero group nearest to it in the complex
// plane. The overall gain goes into the first section.
//
// Leading zero numerator taps (pure delay) are handed out as z^-1 factors to
// the sections with fewer zeros than poles, so such a section numerator may
// start with a zero tap.
func (t *TransferFunction) ToSOS() ([]*TransferFunction, error) {
	if t.Order() == 0 {
		s, err := New([]float64{t.b[0]}, []float64{1})
		if err != nil {
			return nil, err
		}
		return []*TransferFunction{s}, nil
	}

	zpk, err := t.ZPK()
	if err != nil {
		return nil, err
	}

	zg, err := polyroot.Groups(zpk.Zeros)
	if err != nil {
		return nil, fmt.Errorf("tf: zero groups: %w", err)
	}

	pg, err := polyroot.Groups(zpk.Poles)
	if err != nil {
		return nil, fmt.Errorf("tf: pole groups: %w", err)
	}

	if len(zg) > len(pg) {
		return nil, fmt.Errorf("tf: %d zero groups for %d pole groups", len(zg), len(pg))
	}

	// Missing zeros stand for the delay; their groups are empty.
	for len(zg) < len(pg) {
		zg = append(zg, polyroot.Group{})
	}

	delay := len(zpk.Poles) - len(zpk.Zeros)

	slices.SortStableFunc(pg, func(x, y polyroot.Group) int {
		return cmp.Compare(y.MaxAbs(), x.MaxAbs())
	})

	used := make([]bool, len(zg))
	sections := make([]*TransferFunction, 0, len(pg))

	for i, p := range pg {
		best := -1
		for j, z := range zg {
			if used[j] {
				continue
			}
			if best < 0 || z.Distance(p) < zg[best].Distance(p) {
				best = j
			}
		}
		used[best] = true

		bq := zg[best].Quadratic()
		aq := pg[i].Quadratic()

		shift := min(max(p.Size-zg[best].Size, 0), delay)
		delay -= shift

		var b [3]float64
		copy(b[shift:], bq[:])
		if i == 0 {
			for k := range b {
				b[k] *= zpk.Gain
			}
		}

		s, err := New(b[:], aq[:])
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	if delay != 0 {
		return nil, fmt.Errorf("tf: %d samples of delay left unassigned", delay)
	}

	return sections, nil
}

// FromSOS multiplies a cascade of sections back into one transfer function.
// Trailing zero taps introduced by first-order sections are removed.
func FromSOS(sections []*TransferFunction) (*TransferFunction, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrInvalidCoefficient)
	}

	b := []float64{1}
	a := []float64{1}

	for _, s := range sections {
		b = polyroot.Mul(b, s.b)
		a = polyroot.Mul(a, s.a)
	}

	return New(core.TrimTrailingZeros(b), core.TrimTrailingZeros(a))
}
