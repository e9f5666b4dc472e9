package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-realfft/dsp/realfft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m := len(b)
	temp := make([]float64, m)
	for i, v := range a {
		vecmath.ScaleBlock(temp, b, v)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve computes the full linear convolution of a and b with a single
// forward/inverse real FFT pair of even size >= len(a)+len(b)-1.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outLen := len(a) + len(b) - 1
	size := fftSizeFor(outLen)

	fwd, err := realfft.NewRealToComplex(size)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	inv, err := realfft.NewComplexToReal(size)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}

	specA, err := forwardPadded(fwd, a)
	if err != nil {
		return nil, err
	}
	specB, err := forwardPadded(fwd, b)
	if err != nil {
		return nil, err
	}
	multiplyScaled(specA, specA, specB, 1/float64(size))

	full := make([]float64, size)
	if err := inv.Process(specA, full); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}
	return full[:outLen], nil
}

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1; index k corresponds to lag
// k - (len(b) - 1).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	reversed := make([]float64, len(b))
	for i := range b {
		reversed[i] = b[len(b)-1-i]
	}
	return Convolve(a, reversed)
}

func forwardPadded(fwd *realfft.RealToComplex, x []float64) ([]complex128, error) {
	padded := make([]float64, fwd.Len())
	copy(padded, x)

	spec := make([]complex128, fwd.SpectrumLen())
	if err := fwd.Process(padded, spec); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	return spec, nil
}

// multiplyScaled sets dst[k] = a[k]*b[k]*scale. dst may alias a.
func multiplyScaled(dst, a, b []complex128, scale float64) {
	s := complex(scale, 0)
	for i := range dst {
		dst[i] = a[i] * b[i] * s
	}
}

// fftSizeFor returns the power-of-two transform size for n output samples.
// The minimum of 2 keeps the real FFT on its packed even path.
func fftSizeFor(n int) int {
	return max(nextPowerOf2(n), 2)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
