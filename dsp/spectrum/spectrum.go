package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by this package.
var (
	ErrInvalidSize       = errors.New("spectrum: invalid size")
	ErrLengthMismatch    = errors.New("spectrum: buffer length mismatch")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0")
)

// scratchBuf holds pooled scratch memory for splitting complex bins.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// ExpandHermitian rebuilds the full n-bin spectrum of a real signal from its
// n/2+1 bin half-spectrum using X[n-k] = conj(X[k]).
func ExpandHermitian(half []complex128, n int) ([]complex128, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if len(half) != n/2+1 {
		return nil, fmt.Errorf("%w: half-spectrum expected %d, got %d", ErrLengthMismatch, n/2+1, len(half))
	}

	out := make([]complex128, n)
	copy(out, half)
	for k := len(half); k < n; k++ {
		out[k] = cmplx.Conj(half[n-k])
	}
	return out, nil
}

// BinFrequency returns the centre frequency of bin k for an n-point transform
// at the given sample rate.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(n)
}
