package testutil

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ReferenceHalfSpectrum returns the first len(x)/2+1 bins of a full complex
// FFT of x, computed with gonum's CmplxFFT.
func ReferenceHalfSpectrum(x []float64) []complex128 {
	n := len(x)
	seq := make([]complex128, n)
	for i, v := range x {
		seq[i] = complex(v, 0)
	}
	if n == 1 {
		return seq
	}
	coeff := fourier.NewCmplxFFT(n).Coefficients(nil, seq)
	return coeff[:n/2+1]
}

// ReferenceInverse rebuilds the full Hermitian spectrum of length n from half
// and returns the real part of its unnormalized inverse FFT.
func ReferenceInverse(half []complex128, n int) []float64 {
	full := HermitianExtend(half, n)
	if n == 1 {
		return []float64{real(full[0])}
	}
	seq := fourier.NewCmplxFFT(n).Sequence(nil, full)
	out := make([]float64, n)
	for i, v := range seq {
		out[i] = real(v)
	}
	return out
}

// HermitianExtend returns the n-bin spectrum whose first len(half) bins are
// half and whose remaining bins are X[n-k] = conj(X[k]).
func HermitianExtend(half []complex128, n int) []complex128 {
	full := make([]complex128, n)
	copy(full, half)
	for k := 1; k < len(half) && n-k >= len(half); k++ {
		full[n-k] = cmplx.Conj(half[k])
	}
	return full
}

// NaiveDFT computes the first bins bins of the DFT of x directly in O(n^2).
func NaiveDFT(x []float64, bins int) []complex128 {
	n := len(x)
	out := make([]complex128, bins)
	for k := range out {
		var acc complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			acc += complex(v, 0) * cmplx.Rect(1, angle)
		}
		out[k] = acc
	}
	return out
}
