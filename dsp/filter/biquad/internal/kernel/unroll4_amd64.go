//go:build !purego

package kernel

import (
	"math"

	"github.com/cwbudde/algo-vecmath/cpu"
	xcpu "golang.org/x/sys/cpu"
)

func init() {
	if xcpu.X86.HasFMA {
		Default.Register(Entry{Name: "unroll4", Level: cpu.SIMDAVX2, Priority: 20, Block: Unroll4})
	}
}

// Unroll4 is a four-way unrolled kernel built on fused multiply-adds. It is
// only registered on cores reporting FMA3, where math.FMA lowers to a single
// VFMADD instruction; AVX2 is the dispatch level those cores share. Results
// differ from [Generic] by the rounding of the skipped products.
func Unroll4(c Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	na1, na2 := -c.A1, -c.A2

	i := 0
	for ; i+3 < len(buf); i += 4 {
		x0 := buf[i]
		y0 := math.FMA(b0, x0, d0)
		p0 := math.FMA(na1, y0, math.FMA(b1, x0, d1))
		q0 := math.FMA(na2, y0, b2*x0)

		x1 := buf[i+1]
		y1 := math.FMA(b0, x1, p0)
		p1 := math.FMA(na1, y1, math.FMA(b1, x1, q0))
		q1 := math.FMA(na2, y1, b2*x1)

		x2 := buf[i+2]
		y2 := math.FMA(b0, x2, p1)
		p2 := math.FMA(na1, y2, math.FMA(b1, x2, q1))
		q2 := math.FMA(na2, y2, b2*x2)

		x3 := buf[i+3]
		y3 := math.FMA(b0, x3, p2)
		d0 = math.FMA(na1, y3, math.FMA(b1, x3, q2))
		d1 = math.FMA(na2, y3, b2*x3)

		buf[i], buf[i+1], buf[i+2], buf[i+3] = y0, y1, y2, y3
	}

	for ; i < len(buf); i++ {
		x := buf[i]
		y := math.FMA(b0, x, d0)
		d0 = math.FMA(na1, y, math.FMA(b1, x, d1))
		d1 = math.FMA(na2, y, b2*x)
		buf[i] = y
	}

	return d0, d1
}
