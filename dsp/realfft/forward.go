package realfft

import (
	"fmt"

	"github.com/cwbudde/algo-realfft/internal/cfft"
)

// RealToComplexT transforms real signals of a fixed length L into the L/2+1
// non-redundant bins of their spectrum.
//
// Even lengths run a complex FFT of size L/2 over the input reinterpreted as
// complex pairs and unfold the result with a twiddle table. Odd lengths run a
// full complex FFT of size L over a zero-extended copy.
//
// A RealToComplexT owns mutable scratch and must not be used concurrently.
type RealToComplexT[F Float, C Complex] struct {
	length  int
	backend Backend

	engine  cfft.Engine[C]
	scratch []C

	twiddles []F // even: interleaved (re, im), scaled by 0.5
	buffer   []C // odd: zero-extended input of size length
}

// RealToComplex is the float64 specialization of RealToComplexT.
type RealToComplex = RealToComplexT[float64, complex128]

// RealToComplex32 is the float32 specialization of RealToComplexT.
type RealToComplex32 = RealToComplexT[float32, complex64]

// NewRealToComplexT creates a forward real FFT for inputs of the given length.
func NewRealToComplexT[F Float, C Complex](length int, opts ...Option) (*RealToComplexT[F, C], error) {
	cfg := applyOptions(opts)
	if err := validateLength(length, cfg); err != nil {
		return nil, err
	}
	if err := validateLayout[F, C](); err != nil {
		return nil, err
	}

	r := &RealToComplexT[F, C]{
		length:  length,
		backend: cfg.backend,
	}

	fftLen := length
	if length%2 == 0 {
		fftLen = length / 2
		r.twiddles = newTwiddles[F](length, false)
	} else {
		r.buffer = make([]C, length)
	}

	engine, err := planEngine[C](cfg.backend, fftLen, cfft.Forward)
	if err != nil {
		return nil, err
	}
	r.engine = engine
	r.scratch = make([]C, engine.ScratchLen())

	return r, nil
}

// NewRealToComplex creates a forward real FFT (float64).
func NewRealToComplex(length int, opts ...Option) (*RealToComplex, error) {
	return NewRealToComplexT[float64, complex128](length, opts...)
}

// NewRealToComplex32 creates a forward real FFT (float32).
func NewRealToComplex32(length int, opts ...Option) (*RealToComplex32, error) {
	return NewRealToComplexT[float32, complex64](length, opts...)
}

// Len returns the number of real samples L.
func (r *RealToComplexT[F, C]) Len() int { return r.length }

// SpectrumLen returns the number of complex bins L/2+1.
func (r *RealToComplexT[F, C]) SpectrumLen() int { return r.length/2 + 1 }

// ScratchLen returns the scratch length requested by the inner engine.
func (r *RealToComplexT[F, C]) ScratchLen() int { return len(r.scratch) }

// TwiddleLen returns the number of folding twiddles (0 for odd lengths).
func (r *RealToComplexT[F, C]) TwiddleLen() int { return len(r.twiddles) / 2 }

// Backend returns the inner complex FFT backend.
func (r *RealToComplexT[F, C]) Backend() Backend { return r.backend }

// Process transforms input (length L) into output (length L/2+1).
//
// input is used as scratch space and holds garbage afterwards. The result is
// unscaled. Buffer lengths are checked before anything is written.
func (r *RealToComplexT[F, C]) Process(input []F, output []C) error {
	if len(input) != r.length {
		return fmt.Errorf("%w: input expected %d, got %d", ErrLengthMismatch, r.length, len(input))
	}
	if len(output) != r.SpectrumLen() {
		return fmt.Errorf("%w: output expected %d, got %d", ErrLengthMismatch, r.SpectrumLen(), len(output))
	}

	if r.length%2 != 0 {
		return r.processOdd(input, output)
	}

	half := r.length / 2
	if err := r.engine.ProcessOutOfPlace(asComplex[F, C](input), output[:half], r.scratch); err != nil {
		return fmt.Errorf("realfft: forward transform failed: %w", err)
	}

	unfoldForward(asFloat[F, C](output), r.twiddles)
	return nil
}

func (r *RealToComplexT[F, C]) processOdd(input []F, output []C) error {
	buf := asFloat[F, C](r.buffer)
	for i, v := range input {
		buf[2*i] = v
		buf[2*i+1] = 0
	}

	if err := r.engine.Process(r.buffer, r.scratch); err != nil {
		return fmt.Errorf("realfft: forward transform failed: %w", err)
	}

	copy(output, r.buffer[:len(output)])
	return nil
}

// unfoldForward turns the L/2-point FFT of the packed signal, stored in the
// first L/2 bins of out, into the L/2+1 bin half-spectrum. out is interleaved
// (re, im) with 2*(L/2+1) scalars.
func unfoldForward[F Float](out, twiddles []F) {
	bins := len(out) / 2
	half := bins - 1

	// DC and Nyquist are the sum and difference of the first packed bin.
	y0r, y0i := out[0], out[1]
	out[0], out[1] = y0r+y0i, 0
	out[2*half], out[2*half+1] = y0r-y0i, 0

	for i := 0; i < len(twiddles)/2; i++ {
		k := 2 * (i + 1)
		m := 2 * (half - i - 1)
		tr, ti := twiddles[2*i], twiddles[2*i+1]

		sumRe, sumIm := out[k]+out[m], out[k+1]+out[m+1]
		diffRe, diffIm := out[k]-out[m], out[k+1]-out[m+1]

		twRe := sumIm*tr + diffRe*ti
		twIm := sumIm*ti - diffRe*tr
		halfSumRe := 0.5 * sumRe
		halfDiffIm := 0.5 * diffIm

		out[k], out[k+1] = halfSumRe+twRe, halfDiffIm+twIm
		out[m], out[m+1] = halfSumRe-twRe, twIm-halfDiffIm
	}

	// The pair loop cannot reach the centre bin when the bin count is odd.
	if bins%2 == 1 {
		c := 2 * (bins / 2)
		out[c+1] = -out[c+1]
	}
}
