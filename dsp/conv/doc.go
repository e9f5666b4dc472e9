// Package conv provides linear convolution built on the real FFT.
//
//   - [Direct]: O(N*M) time-domain convolution, the reference for short kernels
//   - [Convolve]: one-shot FFT convolution of two real signals
//   - [OverlapAdd]: block convolution with a fixed kernel, reusing its FFT plans
//
// The FFT paths transform only the n/2+1 non-redundant bins of each real
// block through [realfft.RealToComplex] and [realfft.ComplexToReal].
//
// # Usage
//
//	result, err := conv.Convolve(signal, kernel)
//
//	oa, err := conv.NewOverlapAdd(kernel, 1024)
//	result, err := oa.Process(signal)
//
// [Correlate] computes cross-correlation as convolution with the time-reversed
// second signal.
package conv
