//go:build !purego

package kernel

import (
	"math"
	"testing"

	xcpu "golang.org/x/sys/cpu"
)

func TestUnroll4FusesMultiplyAdd(t *testing.T) {
	// b0*x rounds to 1 on its own; only a fused multiply-add keeps -2^-60.
	c := Coefficients{B0: 1 + 0x1p-30}
	x := 1 - 0x1p-30

	for _, n := range []int{1, 4} {
		buf := make([]float64, n)
		buf[0] = x
		Unroll4(c, -1, 0, buf)
		if want := -0x1p-60; buf[0] != want {
			t.Fatalf("n=%d: got %g, want %g", n, buf[0], want)
		}
	}
}

func TestUnroll4RegisteredOnlyWithFMA(t *testing.T) {
	found := false
	for _, e := range Default.Entries() {
		if e.Name == "unroll4" {
			found = true
		}
	}

	if found != xcpu.X86.HasFMA {
		t.Fatalf("unroll4 registered = %v, FMA = %v", found, xcpu.X86.HasFMA)
	}
}

func TestUnroll4MatchesGenericClosely(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.9, A2: 0.3}

	a := make([]float64, 257)
	for i := range a {
		a[i] = math.Cos(0.3 * float64(i))
	}
	b := append([]float64(nil), a...)

	ad0, ad1 := Unroll4(c, 0, 0, a)
	bd0, bd1 := Generic(c, 0, 0, b)

	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Fatalf("sample %d: %v vs %v", i, a[i], b[i])
		}
	}
	if math.Abs(ad0-bd0) > 1e-12 || math.Abs(ad1-bd1) > 1e-12 {
		t.Fatalf("state (%g,%g) vs (%g,%g)", ad0, ad1, bd0, bd1)
	}
}
