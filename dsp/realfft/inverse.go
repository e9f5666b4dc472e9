package realfft

import (
	"fmt"

	"github.com/cwbudde/algo-realfft/internal/cfft"
)

// ComplexToRealT transforms the L/2+1 bin half-spectrum of a real signal back
// into L real samples.
//
// Even lengths fold the half-spectrum into L/2 bins and run an inverse complex
// FFT of size L/2 straight into the output reinterpreted as complex pairs.
// Odd lengths rebuild the full Hermitian spectrum and run an inverse complex
// FFT of size L.
//
// A ComplexToRealT owns mutable scratch and must not be used concurrently.
type ComplexToRealT[F Float, C Complex] struct {
	length  int
	backend Backend

	engine  cfft.Engine[C]
	scratch []C

	twiddles []F // even: interleaved (re, im), conjugated
	buffer   []C // odd: full spectrum of size length
}

// ComplexToReal is the float64 specialization of ComplexToRealT.
type ComplexToReal = ComplexToRealT[float64, complex128]

// ComplexToReal32 is the float32 specialization of ComplexToRealT.
type ComplexToReal32 = ComplexToRealT[float32, complex64]

// NewComplexToRealT creates an inverse real FFT producing outputs of the given
// length.
func NewComplexToRealT[F Float, C Complex](length int, opts ...Option) (*ComplexToRealT[F, C], error) {
	cfg := applyOptions(opts)
	if err := validateLength(length, cfg); err != nil {
		return nil, err
	}
	if err := validateLayout[F, C](); err != nil {
		return nil, err
	}

	c := &ComplexToRealT[F, C]{
		length:  length,
		backend: cfg.backend,
	}

	fftLen := length
	if length%2 == 0 {
		fftLen = length / 2
		c.twiddles = newTwiddles[F](length, true)
	} else {
		c.buffer = make([]C, length)
	}

	engine, err := planEngine[C](cfg.backend, fftLen, cfft.Inverse)
	if err != nil {
		return nil, err
	}
	c.engine = engine
	c.scratch = make([]C, engine.ScratchLen())

	return c, nil
}

// NewComplexToReal creates an inverse real FFT (float64).
func NewComplexToReal(length int, opts ...Option) (*ComplexToReal, error) {
	return NewComplexToRealT[float64, complex128](length, opts...)
}

// NewComplexToReal32 creates an inverse real FFT (float32).
func NewComplexToReal32(length int, opts ...Option) (*ComplexToReal32, error) {
	return NewComplexToRealT[float32, complex64](length, opts...)
}

// Len returns the number of real samples L.
func (c *ComplexToRealT[F, C]) Len() int { return c.length }

// SpectrumLen returns the number of complex bins L/2+1.
func (c *ComplexToRealT[F, C]) SpectrumLen() int { return c.length/2 + 1 }

// ScratchLen returns the scratch length requested by the inner engine.
func (c *ComplexToRealT[F, C]) ScratchLen() int { return len(c.scratch) }

// TwiddleLen returns the number of folding twiddles (0 for odd lengths).
func (c *ComplexToRealT[F, C]) TwiddleLen() int { return len(c.twiddles) / 2 }

// Backend returns the inner complex FFT backend.
func (c *ComplexToRealT[F, C]) Backend() Backend { return c.backend }

// Process transforms input (length L/2+1) into output (length L).
//
// For even L, input is used as scratch space and holds garbage afterwards.
// The result is unscaled: Process after RealToComplexT.Process returns the
// original signal multiplied by L.
func (c *ComplexToRealT[F, C]) Process(input []C, output []F) error {
	if len(input) != c.SpectrumLen() {
		return fmt.Errorf("%w: input expected %d, got %d", ErrLengthMismatch, c.SpectrumLen(), len(input))
	}
	if len(output) != c.length {
		return fmt.Errorf("%w: output expected %d, got %d", ErrLengthMismatch, c.length, len(output))
	}

	if c.length%2 != 0 {
		return c.processOdd(input, output)
	}

	half := c.length / 2
	foldInverse(asFloat[F, C](input), c.twiddles)

	if err := c.engine.ProcessOutOfPlace(input[:half], asComplex[F, C](output), c.scratch); err != nil {
		return fmt.Errorf("realfft: inverse transform failed: %w", err)
	}
	return nil
}

func (c *ComplexToRealT[F, C]) processOdd(input []C, output []F) error {
	copy(c.buffer, input)

	// Mirror bins 1..L/2 as conjugates into L-1..L-L/2.
	in := asFloat[F, C](input)
	buf := asFloat[F, C](c.buffer)
	for i := 1; i < len(input); i++ {
		j := c.length - i
		buf[2*j] = in[2*i]
		buf[2*j+1] = -in[2*i+1]
	}

	if err := c.engine.Process(c.buffer, c.scratch); err != nil {
		return fmt.Errorf("realfft: inverse transform failed: %w", err)
	}

	for i := range output {
		output[i] = buf[2*i]
	}
	return nil
}

// foldInverse turns an L/2+1 bin half-spectrum into the L/2 bins whose
// inverse FFT is the packed real signal. in is interleaved (re, im) with
// 2*(L/2+1) scalars and is rewritten in place.
func foldInverse[F Float](in, twiddles []F) {
	bins := len(in) / 2
	half := bins - 1

	firstRe, firstIm := in[0], in[1]
	lastRe, lastIm := in[2*half], in[2*half+1]
	edgeSumRe, edgeSumIm := firstRe+lastRe, firstIm+lastIm
	edgeDiffRe, edgeDiffIm := firstRe-lastRe, firstIm-lastIm
	in[0], in[1] = edgeSumRe-edgeSumIm, edgeDiffRe-edgeDiffIm

	for i := 0; i < len(twiddles)/2; i++ {
		k := 2 * (i + 1)
		m := 2 * (half - i - 1)
		tr, ti := twiddles[2*i], twiddles[2*i+1]

		sumRe, sumIm := in[k]+in[m], in[k+1]+in[m+1]
		diffRe, diffIm := in[k]-in[m], in[k+1]-in[m+1]

		twRe := sumIm*tr + diffRe*ti
		twIm := sumIm*ti - diffRe*tr

		in[k], in[k+1] = sumRe-twRe, diffIm-twIm
		in[m], in[m+1] = sumRe+twRe, -twIm-diffIm
	}

	// Unpaired centre bin: twice its conjugate.
	if bins%2 == 1 {
		c := 2 * (bins / 2)
		in[c], in[c+1] = 2*in[c], -2*in[c+1]
	}
}
