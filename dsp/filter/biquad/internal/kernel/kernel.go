// Package kernel holds the block-processing kernels of a biquad section and
// the registry that selects one for the running CPU.
package kernel

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are normalized section coefficients (a0 = 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// BlockFn filters buf in place through one DF-II-T section starting from
// state (d0, d1) and returns the final state.
type BlockFn func(c Coefficients, d0, d1 float64, buf []float64) (float64, float64)

// Entry is one registered kernel.
type Entry struct {
	Name     string
	Level    cpu.SIMDLevel
	Priority int
	Block    BlockFn
}

// Registry keeps kernels ordered by descending priority.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Default is the registry the biquad package dispatches through.
var Default = &Registry{}

func init() {
	Default.Register(Entry{Name: "generic", Level: cpu.SIMDNone, Priority: 0, Block: Generic})
}

// Register adds a kernel.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	slices.SortStableFunc(r.entries, func(a, b Entry) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}

// Lookup returns the highest-priority kernel the features support.
func (r *Registry) Lookup(f cpu.Features) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if cpu.Supports(f, e.Level) {
			return e, true
		}
	}

	return Entry{}, false
}

// Entries returns a copy of the registered kernels in lookup order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Generic is the portable kernel, unrolled by two.
func Generic(c Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0
	for ; i+1 < len(buf); i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		e0 := b1*x0 - a1*y0 + d1
		e1 := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + e0
		d0 = b1*x1 - a1*y1 + e1
		d1 = b2*x1 - a2*y1

		buf[i], buf[i+1] = y0, y1
	}

	if i < len(buf) {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
