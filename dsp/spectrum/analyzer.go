package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-realfft/dsp/realfft"
	"github.com/cwbudde/algo-vecmath"
)

// Option configures an Analyzer.
type Option func(*analyzerConfig)

type analyzerConfig struct {
	window     []float64
	windowType Window
	sampleRate float64
	backend    realfft.Backend
}

func defaultAnalyzerConfig() analyzerConfig {
	return analyzerConfig{
		windowType: WindowRectangular,
		sampleRate: 1,
		backend:    realfft.BackendAlgoFFT,
	}
}

// WithWindow applies the given coefficients to every frame. The length must
// equal the analyzer size. It overrides WithWindowType.
func WithWindow(coeffs []float64) Option {
	copyCoeffs := append([]float64(nil), coeffs...)

	return func(c *analyzerConfig) {
		c.window = copyCoeffs
	}
}

// WithWindowType applies a built-in periodic window to every frame.
func WithWindowType(w Window) Option {
	return func(c *analyzerConfig) {
		c.windowType = w
	}
}

// WithSampleRate sets the sample rate used by BinFrequency. Default 1.
func WithSampleRate(sampleRate float64) Option {
	return func(c *analyzerConfig) {
		c.sampleRate = sampleRate
	}
}

// WithBackend selects the complex FFT backend of the inner real FFT.
func WithBackend(b realfft.Backend) Option {
	return func(c *analyzerConfig) {
		c.backend = b
	}
}

// Analyzer computes windowed one-sided spectra of fixed-size real frames.
//
// An Analyzer owns scratch buffers and must not be used concurrently.
type Analyzer struct {
	size       int
	sampleRate float64
	window     []float64

	fft   *realfft.RealToComplex
	frame []float64
	bins  []complex128
	re    []float64
	im    []float64
}

// NewAnalyzer creates an analyzer for frames of the given size.
func NewAnalyzer(size int, opts ...Option) (*Analyzer, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cfg := defaultAnalyzerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, cfg.sampleRate)
	}

	window := cfg.window
	if window == nil && cfg.windowType != WindowRectangular {
		window = cfg.windowType.Coefficients(size)
	}
	if window != nil && len(window) != size {
		return nil, fmt.Errorf("%w: window expected %d, got %d", ErrLengthMismatch, size, len(window))
	}

	fft, err := realfft.NewRealToComplex(size, realfft.WithBackend(cfg.backend))
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	bins := size/2 + 1
	return &Analyzer{
		size:       size,
		sampleRate: cfg.sampleRate,
		window:     window,
		fft:        fft,
		frame:      make([]float64, size),
		bins:       make([]complex128, bins),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
	}, nil
}

// Size returns the frame length.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of one-sided bins, Size()/2+1.
func (a *Analyzer) Bins() int { return a.size/2 + 1 }

// SampleRate returns the configured sample rate.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// BinFrequency returns the centre frequency of bin k.
func (a *Analyzer) BinFrequency(k int) float64 {
	return BinFrequency(k, a.size, a.sampleRate)
}

// Spectrum writes the complex half-spectrum of frame into dst. frame is not
// modified.
func (a *Analyzer) Spectrum(dst []complex128, frame []float64) error {
	if len(dst) != a.Bins() {
		return fmt.Errorf("%w: spectrum expected %d, got %d", ErrLengthMismatch, a.Bins(), len(dst))
	}
	return a.transform(dst, frame)
}

// Magnitude writes |X[k]| of frame into dst.
func (a *Analyzer) Magnitude(dst, frame []float64) error {
	if err := a.split(dst, frame); err != nil {
		return err
	}
	vecmath.Magnitude(dst, a.re, a.im)
	return nil
}

// Power writes |X[k]|^2 of frame into dst.
func (a *Analyzer) Power(dst, frame []float64) error {
	if err := a.split(dst, frame); err != nil {
		return err
	}
	vecmath.Power(dst, a.re, a.im)
	return nil
}

func (a *Analyzer) split(dst, frame []float64) error {
	if len(dst) != a.Bins() {
		return fmt.Errorf("%w: output expected %d, got %d", ErrLengthMismatch, a.Bins(), len(dst))
	}
	if err := a.transform(a.bins, frame); err != nil {
		return err
	}
	split(a.re, a.im, a.bins)
	return nil
}

func (a *Analyzer) transform(dst []complex128, frame []float64) error {
	if len(frame) != a.size {
		return fmt.Errorf("%w: frame expected %d, got %d", ErrLengthMismatch, a.size, len(frame))
	}

	// The real FFT consumes its input, so always work on the owned copy.
	if a.window != nil {
		vecmath.MulBlock(a.frame, frame, a.window)
	} else {
		copy(a.frame, frame)
	}

	if err := a.fft.Process(a.frame, dst); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return nil
}
