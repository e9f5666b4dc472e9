package conv

import (
	"fmt"

	"github.com/cwbudde/algo-realfft/dsp/realfft"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method.
// This is efficient for convolving long signals with shorter kernels.
//
// Each input block is zero-padded to the FFT size, transformed with a real
// FFT, multiplied by the kernel's half-spectrum and transformed back. The
// block results overlap by kernelLen-1 samples and are summed.
//
// An OverlapAdd owns scratch buffers and must not be used concurrently.
type OverlapAdd struct {
	// Kernel half-spectrum, prescaled by 1/fftSize
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int

	fwd *realfft.RealToComplex
	inv *realfft.ComplexToReal

	block    []float64
	spectrum []complex128
	result   []float64
}

// NewOverlapAdd creates a new overlap-add convolver for the given kernel.
// blockSize determines how the input signal is segmented.
// If blockSize <= 0, an automatic size is chosen based on kernel length.
// opts configure the inner real FFTs.
func NewOverlapAdd(kernel []float64, blockSize int, opts ...realfft.Option) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	kernelLen := len(kernel)

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(kernelLen), 256)
	}

	fftSize := fftSizeFor(blockSize + kernelLen - 1)

	fwd, err := realfft.NewRealToComplex(fftSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}
	inv, err := realfft.NewComplexToReal(fftSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelLen: kernelLen,
		blockSize: blockSize,
		fftSize:   fftSize,
		fwd:       fwd,
		inv:       inv,
		block:     make([]float64, fftSize),
		spectrum:  make([]complex128, fwd.SpectrumLen()),
		result:    make([]float64, fftSize),
	}

	oa.kernelFFT, err = forwardPadded(fwd, kernel)
	if err != nil {
		return nil, err
	}
	scale := complex(1/float64(fftSize), 0)
	for i := range oa.kernelFFT {
		oa.kernelFFT[i] *= scale
	}
	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process convolves the input signal with the kernel.
// Returns the full linear convolution result.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.process(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ProcessTo convolves input and writes to pre-allocated output.
// Output must have length len(input) + kernelLen - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	expectedLen := len(input) + oa.kernelLen - 1
	if len(output) != expectedLen {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, expectedLen, len(output))
	}

	for i := range output {
		output[i] = 0
	}
	return oa.process(output, input)
}

func (oa *OverlapAdd) process(output, input []float64) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		copy(oa.block, input[start:end])
		for i := blockLen; i < oa.fftSize; i++ {
			oa.block[i] = 0
		}

		if err := oa.fwd.Process(oa.block, oa.spectrum); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i, k := range oa.kernelFFT {
			oa.spectrum[i] *= k
		}
		if err := oa.inv.Process(oa.spectrum, oa.result); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < len(output); i++ {
			output[start+i] += oa.result[i]
		}
	}
	return nil
}
