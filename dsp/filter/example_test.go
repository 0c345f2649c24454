package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

func ExampleCombineParallel() {
	k1, _ := tf.NewFIR([]float64{1, -0.1})
	k2, _ := tf.New([]float64{1, 0.4}, []float64{1, -0.6})

	c, err := filter.CombineParallel(k1, k2)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(c.Kind)
	fmt.Printf("b = %.2f\n", c.Transfer.Numerator())
	fmt.Printf("a = %.2f\n", c.Transfer.Denominator())
	// Output:
	// IIR
	// b = [2.00 -0.30 0.06]
	// a = [1.00 -0.60]
}

func ExampleNew() {
	h, _ := tf.New([]float64{1, 0.4}, []float64{1, -0.6, 0.2})

	p, err := filter.New(h)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := range 4 {
		x := 0.0
		if i == 0 {
			x = 1
		}
		fmt.Printf("%.2f ", p.ProcessSample(x))
	}
	fmt.Println()
	// Output:
	// 1.00 1.00 0.40 0.04
}
