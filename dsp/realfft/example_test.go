package realfft_test

import (
	"fmt"

	"github.com/cwbudde/algo-realfft/dsp/realfft"
)

func ExampleRealToComplex() {
	fwd, err := realfft.NewRealToComplex(6)
	if err != nil {
		panic(err)
	}

	spectrum := make([]complex128, fwd.SpectrumLen())
	if err := fwd.Process([]float64{0, 1, 2, 3, 4, 5}, spectrum); err != nil {
		panic(err)
	}

	for k, v := range spectrum {
		fmt.Printf("X[%d] = %.4f%+.4fi\n", k, real(v), imag(v))
	}
	// Output:
	// X[0] = 15.0000+0.0000i
	// X[1] = -3.0000+5.1962i
	// X[2] = -3.0000+1.7321i
	// X[3] = -3.0000+0.0000i
}

func ExampleComplexToReal() {
	const n = 8

	fwd, err := realfft.NewRealToComplex(n)
	if err != nil {
		panic(err)
	}
	inv, err := realfft.NewComplexToReal(n)
	if err != nil {
		panic(err)
	}

	signal := []float64{1, 2, 3, 4, 4, 3, 2, 1}
	spectrum := make([]complex128, fwd.SpectrumLen())
	if err := fwd.Process(append([]float64(nil), signal...), spectrum); err != nil {
		panic(err)
	}

	out := make([]float64, n)
	if err := inv.Process(spectrum, out); err != nil {
		panic(err)
	}

	for i := range out {
		out[i] /= n
	}
	fmt.Printf("%.3f\n", out)
	// Output:
	// [1.000 2.000 3.000 4.000 4.000 3.000 2.000 1.000]
}

func ExampleWithBackend() {
	fwd, err := realfft.NewRealToComplex(5, realfft.WithBackend(realfft.BackendGonum))
	if err != nil {
		panic(err)
	}

	spectrum := make([]complex128, fwd.SpectrumLen())
	if err := fwd.Process([]float64{0, 1, 2, 3, 4}, spectrum); err != nil {
		panic(err)
	}

	fmt.Println(fwd.Backend(), len(spectrum))
	fmt.Printf("%.4f %.4f\n", real(spectrum[0]), real(spectrum[1]))
	// Output:
	// gonum 3
	// 10.0000 -2.5000
}
