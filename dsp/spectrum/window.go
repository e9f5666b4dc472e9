package spectrum

import (
	"errors"
	"fmt"
	"math"
)

var (
	errEmptyCoeffs      = errors.New("spectrum: window coefficients must not be empty")
	errZeroCoherentGain = errors.New("spectrum: window coherent gain is zero")
)

// Window selects a built-in analysis window.
type Window int

const (
	WindowRectangular Window = iota
	WindowHann
	WindowHamming
	WindowBlackman
	WindowBlackmanHarris4Term
	WindowFlatTop
)

// Cosine-series terms: w(x) = sum c[k] * cos(2*pi*k*x), x in [0, 1).
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

// String returns the window name.
func (w Window) String() string {
	switch w {
	case WindowRectangular:
		return "rectangular"
	case WindowHann:
		return "hann"
	case WindowHamming:
		return "hamming"
	case WindowBlackman:
		return "blackman"
	case WindowBlackmanHarris4Term:
		return "blackman-harris-4t"
	case WindowFlatTop:
		return "flat-top"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// Coefficients returns the periodic form of the window for frames of length
// n. Periodic windows tile without a duplicated endpoint.
func (w Window) Coefficients(n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = w.at(samplePosition(i, n))
	}
	return out
}

func (w Window) at(x float64) float64 {
	switch w {
	case WindowHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case WindowHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case WindowBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case WindowBlackmanHarris4Term:
		return cosineFromCoeffs(x, blackmanHarris4Coeffs)
	case WindowFlatTop:
		return cosineFromCoeffs(x, flatTopCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

// samplePosition maps sample n of size to [0, 1) with the periodic
// denominator.
func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(n) / float64(size)
}

// CoherentGain returns sum(w[n]) / N, the amplitude factor a windowed
// sinusoid picks up at its peak bin.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs))
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0
	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}
	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
