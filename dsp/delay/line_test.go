package delay

import (
	"errors"
	"testing"
)

func TestNewValidation(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d) err = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestWriteReadOrder(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 5; i++ {
		d.Write(float64(i))
	}

	want := []float64{5, 4, 3}
	for k, w := range want {
		if got := d.Read(k); got != w {
			t.Fatalf("Read(%d) = %v, want %v", k, got, w)
		}
	}

	win := d.Window()
	if len(win) != 3 {
		t.Fatalf("window len = %d", len(win))
	}
	for k, w := range want {
		if win[k] != w {
			t.Fatalf("window = %v, want %v", win, want)
		}
	}
}

func TestWindowContiguousAcrossWrap(t *testing.T) {
	d, _ := New(4)
	// Enough writes to wrap the cursor several times.
	for i := range 11 {
		d.Write(float64(i))
		win := d.Window()
		for k := range win {
			want := float64(i - k)
			if i-k < 0 {
				want = 0
			}
			if win[k] != want {
				t.Fatalf("after write %d: window = %v", i, win)
			}
		}
	}
}

func TestLoadAndReset(t *testing.T) {
	d, _ := New(2)
	if err := d.Load([]float64{7, 8}); err != nil {
		t.Fatal(err)
	}
	d.Write(9)
	if d.Read(0) != 9 || d.Read(1) != 7 {
		t.Fatalf("window after Load+Write = %v", d.Window())
	}

	if err := d.Load([]float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}

	d.Reset()
	if d.Read(0) != 0 || d.Read(1) != 0 || d.Len() != 2 {
		t.Fatalf("window after Reset = %v", d.Window())
	}
}

func BenchmarkWrite(b *testing.B) {
	d, _ := New(256)
	for i := range b.N {
		d.Write(float64(i))
	}
}
