package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/filter/iir"
)

func ExampleZi() {
	f, err := iir.NewZi([]float64{1, 0.4}, []float64{1, -0.6, 0.2})
	if err != nil {
		panic(err)
	}

	for i := range 4 {
		x := 0.0
		if i == 0 {
			x = 1
		}
		fmt.Printf("%.2f ", f.ProcessSample(x))
	}
	fmt.Println()
	// Output: 1.00 1.00 0.40 0.04
}

func ExampleFiltFilt() {
	y, err := iir.FiltFilt([]float64{0.5, 0.5}, []float64{1}, []float64{0, 0, 4, 0, 0})
	if err != nil {
		panic(err)
	}
	fmt.Println(y)
	// Output: [0 1 2 1 0]
}
