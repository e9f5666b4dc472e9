// Package realfft provides real-to-complex and complex-to-real FFTs.
//
// A real signal of length L has a Hermitian spectrum, X[L-k] = conj(X[k]), so
// only the first L/2+1 bins carry information. [RealToComplexT] computes those
// bins and [ComplexToRealT] reconstructs the signal from them, each with about
// half the work of a full complex FFT of size L.
//
// # Algorithm
//
// For even L, the L real samples are reinterpreted in place as L/2 complex
// values (x[2n] + i*x[2n+1]) and transformed with a complex FFT of size L/2.
// The result is unfolded into the true half-spectrum with one twiddle factor
// per pair of mirrored bins k and L/2-k. The inverse folds the half-spectrum
// the opposite way and runs an inverse FFT of size L/2 directly into the
// output buffer.
//
// Odd L cannot be packed, so the signal is zero-extended into a complex buffer
// of size L and transformed with a full complex FFT. [WithEvenOnly] rejects odd
// lengths at construction for callers that require the fast path.
//
// # Usage
//
//	fwd, err := realfft.NewRealToComplex(1024)
//	inv, err := realfft.NewComplexToReal(1024)
//
//	spectrum := make([]complex128, fwd.SpectrumLen())
//	err = fwd.Process(samples, spectrum) // samples are scratch after this
//	err = inv.Process(spectrum, samples) // spectrum is scratch after this
//
// # Scaling
//
// Neither direction normalizes. A forward transform followed by an inverse
// multiplies the signal by L; scale by 1/L once, or by 1/sqrt(L) on each side
// for a unitary pair.
//
// # Precision
//
// The generic types take a float and a complex type parameter of matching
// precision. [RealToComplex] / [ComplexToReal] are the float64 forms and
// [RealToComplex32] / [ComplexToReal32] the float32 forms.
//
// # Backends
//
// The inner complex FFT is delegated to an external library selected with
// [WithBackend]: algo-fft (default) or gonum's dsp/fourier.
package realfft
