package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/filter/tf"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

var (
	testB = []float64{1, 0.4}
	testA = []float64{1, -0.6, 0.2}
)

type processor interface {
	ProcessSample(float64) float64
	ProcessBlock([]float64)
	Reset()
}

func newBoth(t *testing.T, b, a []float64) map[string]processor {
	t.Helper()

	df1, err := New(b, a)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	zi, err := NewZi(b, a)
	if err != nil {
		t.Fatalf("NewZi: %v", err)
	}

	return map[string]processor{"df1": df1, "zi": zi}
}

func TestImpulseResponseDirectForm(t *testing.T) {
	want := []float64{1, 1, 0.4, 0.04}
	for name, p := range newBoth(t, testB, testA) {
		for i, w := range want {
			x := 0.0
			if i == 0 {
				x = 1
			}
			if y := p.ProcessSample(x); math.Abs(y-w) > 1e-7 {
				t.Fatalf("%s: y[%d] = %v, want %v", name, i, y, w)
			}
		}
	}
}

func TestMatchesDifferenceEquation(t *testing.T) {
	b := []float64{0.2, 0.3, -0.1, 0.05}
	a := []float64{2, -1.1, 0.5, -0.12}
	x := testutil.Noise(1, 1, 500)

	nb := make([]float64, len(b))
	na := make([]float64, len(a))
	for i := range b {
		nb[i] = b[i] / 2
		na[i] = a[i] / 2
	}
	want := testutil.Reference(nb, na, x)

	for name, p := range newBoth(t, b, a) {
		got := append([]float64(nil), x...)
		p.ProcessBlock(got)
		if d := testutil.MaxAbsDiff(got, want); d > 1e-12 {
			t.Fatalf("%s: max diff %g", name, d)
		}
	}
}

func TestUnequalLengths(t *testing.T) {
	// FIR-only and all-pole filters exercise the padding paths.
	cases := []struct{ b, a []float64 }{
		{[]float64{0.5, 0.3, 0.2}, []float64{1}},
		{[]float64{0.7}, []float64{1, -0.3, 0.1}},
		{[]float64{2}, []float64{1}},
	}

	x := testutil.Noise(2, 1, 64)
	for _, tc := range cases {
		want := testutil.Reference(tc.b, tc.a, x)
		for _, p := range newBoth(t, tc.b, tc.a) {
			got := append([]float64(nil), x...)
			p.ProcessBlock(got)
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
		}
	}
}

func TestResetIdempotent(t *testing.T) {
	x := testutil.Noise(3, 1, 100)
	for name, p := range newBoth(t, testB, testA) {
		first := append([]float64(nil), x...)
		p.ProcessBlock(first)

		p.Reset()
		p.Reset()

		second := append([]float64(nil), x...)
		p.ProcessBlock(second)

		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%s: sample %d differs after reset: %v vs %v", name, i, first[i], second[i])
			}
		}
	}
}

func TestConstructorErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		b, a []float64
	}{
		{"zero a0", []float64{1}, []float64{0, 1}},
		{"empty b", nil, []float64{1}},
		{"NaN", []float64{math.NaN()}, []float64{1}},
	} {
		if _, err := New(tc.b, tc.a); !errors.Is(err, tf.ErrInvalidCoefficient) {
			t.Errorf("New %s: err=%v", tc.name, err)
		}
		if _, err := NewZi(tc.b, tc.a); !errors.Is(err, tf.ErrInvalidCoefficient) {
			t.Errorf("NewZi %s: err=%v", tc.name, err)
		}
	}
}

func TestFilterChangeCoefficients(t *testing.T) {
	f, _ := New(testB, testA)
	f.ProcessSample(1)

	if err := f.ChangeCoefficients([]float64{0.5, 0.5}, []float64{1, -0.5, 0.1}); err != nil {
		t.Fatalf("ChangeCoefficients: %v", err)
	}

	// History survives: y = 0.5*0 + 0.5*1 + 0.5*y[-1] - 0.1*0 with y[-1] = 1.
	if y := f.ProcessSample(0); math.Abs(y-1) > 1e-15 {
		t.Fatalf("first sample after change: got %v, want 1", y)
	}

	if err := f.ChangeCoefficients([]float64{1}, testA); !errors.Is(err, tf.ErrOrderMismatch) {
		t.Fatalf("err=%v, want ErrOrderMismatch", err)
	}
	if err := f.ChangeCoefficients(testB, []float64{0, 1, 1}); !errors.Is(err, tf.ErrInvalidCoefficient) {
		t.Fatalf("err=%v, want ErrInvalidCoefficient", err)
	}
}

func TestFilterAccessors(t *testing.T) {
	f, _ := New([]float64{2, 0.8}, []float64{2, -1.2, 0.4})
	if f.Order() != 2 {
		t.Fatalf("Order = %d, want 2", f.Order())
	}

	b, a := f.Coefficients()
	testutil.RequireSliceNearlyEqual(t, b, testB, 0)
	testutil.RequireSliceNearlyEqual(t, a, testA, 0)

	h, err := f.TransferFunction()
	if err != nil {
		t.Fatalf("TransferFunction: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, h.ImpulseResponse(4), []float64{1, 1, 0.4, 0.04}, 1e-12)
}

func TestBlockToMatchesSample(t *testing.T) {
	x := testutil.Noise(4, 1, 33)

	ref, _ := NewZi(testB, testA)
	want := make([]float64, len(x))
	for i, v := range x {
		want[i] = ref.ProcessSample(v)
	}

	zi, _ := NewZi(testB, testA)
	got := make([]float64, len(x))
	zi.ProcessBlockTo(got, x)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	df1, _ := New(testB, testA)
	df1.ProcessBlockTo(got, x)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestProcessBlockToPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f, _ := NewZi(testB, testA)
	f.ProcessBlockTo(make([]float64, 2), make([]float64, 3))
}
