package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-realfft/dsp/conv"
)

func ExampleConvolve() {
	out, err := conv.Convolve([]float64{1, 2, 3}, []float64{1, 1, 1})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", out)
	// Output:
	// [1.000 3.000 6.000 5.000 3.000]
}

func ExampleOverlapAdd() {
	oa, err := conv.NewOverlapAdd([]float64{0.5, 0.5}, 4)
	if err != nil {
		panic(err)
	}

	out, err := oa.Process([]float64{2, 4, 6, 8, 10, 12})
	if err != nil {
		panic(err)
	}
	fmt.Println(oa.FFTSize())
	fmt.Printf("%.3f\n", out)
	// Output:
	// 8
	// [1.000 3.000 5.000 7.000 9.000 11.000 6.000]
}
