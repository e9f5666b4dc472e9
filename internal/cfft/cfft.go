// Package cfft adapts complex-to-complex FFT libraries to the fixed-size,
// fixed-direction engine contract used by the real FFT repackers.
//
// An [Engine] is planned once for a length and a [Direction]. It reports the
// scratch length it needs and executes either in place or out of place over
// caller-provided buffers. Every backend is unnormalized in both directions:
// a forward transform followed by an inverse multiplies the data by Len().
package cfft

import (
	"errors"
	"fmt"
)

// Complex is the element constraint shared by all engines.
type Complex interface {
	complex64 | complex128
}

// Errors returned by engines.
var (
	ErrInvalidLength  = errors.New("cfft: invalid transform length")
	ErrLengthMismatch = errors.New("cfft: buffer length mismatch")
	ErrShortScratch   = errors.New("cfft: scratch buffer too short")
)

// Direction selects the sign of the transform exponent.
type Direction int

const (
	// Forward computes X[k] = sum x[n] * exp(-2*pi*i*k*n/N).
	Forward Direction = iota
	// Inverse computes x[n] = sum X[k] * exp(+2*pi*i*k*n/N), without 1/N.
	Inverse
)

// String returns "forward" or "inverse".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Engine executes an unnormalized complex FFT of a fixed size and direction.
type Engine[C Complex] interface {
	// Len returns the transform size.
	Len() int
	// Direction returns the direction the engine was planned for.
	Direction() Direction
	// ScratchLen returns the minimum scratch length accepted by Process and
	// ProcessOutOfPlace.
	ScratchLen() int
	// Process transforms buf in place.
	Process(buf, scratch []C) error
	// ProcessOutOfPlace transforms in into out. in is left unchanged.
	ProcessOutOfPlace(in, out, scratch []C) error
}

// PlanFunc creates an engine for a size and direction.
type PlanFunc[C Complex] func(n int, dir Direction) (Engine[C], error)

func checkBuffers[C Complex](n, scratchLen int, in, out, scratch []C) error {
	if len(in) != n {
		return fmt.Errorf("%w: input expected %d, got %d", ErrLengthMismatch, n, len(in))
	}
	if len(out) != n {
		return fmt.Errorf("%w: output expected %d, got %d", ErrLengthMismatch, n, len(out))
	}
	if len(scratch) < scratchLen {
		return fmt.Errorf("%w: need %d, got %d", ErrShortScratch, scratchLen, len(scratch))
	}
	return nil
}

// conjugate negates the imaginary part of every element of buf.
func conjugate[C Complex](buf []C) {
	switch b := any(buf).(type) {
	case []complex64:
		for i, v := range b {
			b[i] = complex(real(v), -imag(v))
		}
	case []complex128:
		for i, v := range b {
			b[i] = complex(real(v), -imag(v))
		}
	}
}

// conjugateInto writes conj(src) into dst. Both slices have the same length.
func conjugateInto[C Complex](dst, src []C) {
	switch d := any(dst).(type) {
	case []complex64:
		s := any(src).([]complex64)
		for i, v := range s {
			d[i] = complex(real(v), -imag(v))
		}
	case []complex128:
		s := any(src).([]complex128)
		for i, v := range s {
			d[i] = complex(real(v), -imag(v))
		}
	}
}

// identity is the size-1 transform, which neither backend needs to plan.
type identity[C Complex] struct {
	dir Direction
}

func (e *identity[C]) Len() int             { return 1 }
func (e *identity[C]) Direction() Direction { return e.dir }
func (e *identity[C]) ScratchLen() int      { return 0 }

func (e *identity[C]) Process(buf, scratch []C) error {
	return checkBuffers(1, 0, buf, buf, scratch)
}

func (e *identity[C]) ProcessOutOfPlace(in, out, scratch []C) error {
	if err := checkBuffers(1, 0, in, out, scratch); err != nil {
		return err
	}
	out[0] = in[0]
	return nil
}

func checkDirection(dir Direction) error {
	if dir != Forward && dir != Inverse {
		return fmt.Errorf("cfft: unknown direction %d", int(dir))
	}
	return nil
}
