package realfft

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-realfft/internal/cfft"
)

// Float is the scalar type of real signals.
type Float interface {
	float32 | float64
}

// Complex is the element type of spectra. It must be paired with the Float
// of the same precision: complex64 with float32, complex128 with float64.
type Complex = cfft.Complex

// Errors returned by constructors and Process.
var (
	ErrInvalidLength     = errors.New("realfft: invalid transform length")
	ErrLengthMismatch    = errors.New("realfft: buffer length mismatch")
	ErrPrecisionMismatch = errors.New("realfft: float and complex precision do not match")
)

// Backend selects the complex FFT library that executes the inner transform.
type Backend int

const (
	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft (default).
	BackendAlgoFFT Backend = iota
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAlgoFFT:
		return "algofft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a backend name to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "algofft", "algo-fft", "":
		return BackendAlgoFFT, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return 0, fmt.Errorf("realfft: unknown backend %q", name)
	}
}

// Option configures a RealToComplexT or ComplexToRealT.
type Option func(*config)

type config struct {
	backend  Backend
	evenOnly bool
}

// WithBackend selects the inner complex FFT backend.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithEvenOnly makes construction fail with ErrInvalidLength for odd lengths
// instead of using the slower odd-length path.
func WithEvenOnly() Option {
	return func(c *config) {
		c.evenOnly = true
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func validateLength(length int, cfg config) error {
	if length < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if cfg.evenOnly && length%2 != 0 {
		return fmt.Errorf("%w: odd length %d not permitted", ErrInvalidLength, length)
	}
	return nil
}

// validateLayout reports whether a []F of even length may be reinterpreted as
// a []C of half the length (and back).
func validateLayout[F Float, C Complex]() error {
	var (
		f F
		c C
	)
	if unsafe.Sizeof(c) != 2*unsafe.Sizeof(f) || unsafe.Alignof(c) != unsafe.Alignof(f) {
		return fmt.Errorf("%w: %T with %T", ErrPrecisionMismatch, f, c)
	}
	return nil
}

func planEngine[C Complex](b Backend, n int, dir cfft.Direction) (cfft.Engine[C], error) {
	var plan cfft.PlanFunc[C]
	switch b {
	case BackendAlgoFFT:
		plan = cfft.NewAlgoFFT[C]
	case BackendGonum:
		plan = cfft.NewGonum[C]
	default:
		return nil, fmt.Errorf("realfft: unknown backend %s", b)
	}

	e, err := plan(n, dir)
	if err != nil {
		return nil, fmt.Errorf("realfft: failed to create %s FFT plan: %w", dir, err)
	}
	return e, nil
}

// asComplex views an even-length real slice as interleaved (re, im) pairs.
// The layout was verified at construction by validateLayout.
func asComplex[F Float, C Complex](s []F) []C {
	if len(s) < 2 {
		return nil
	}
	return unsafe.Slice((*C)(unsafe.Pointer(&s[0])), len(s)/2)
}

// asFloat views a complex slice as interleaved (re, im) scalars.
func asFloat[F Float, C Complex](s []C) []F {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*F)(unsafe.Pointer(&s[0])), 2*len(s))
}
