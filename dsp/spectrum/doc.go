// Package spectrum computes one-sided spectra of real frames.
//
// [Analyzer] wraps a [realfft.RealToComplex] with optional windowing and
// converts the resulting half-spectrum to magnitude or power. The free
// functions operate on complex bins produced by any transform.
package spectrum
