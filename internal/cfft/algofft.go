package cfft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// algoEngine wraps an algo-fft plan.
//
// algo-fft normalizes its inverse by 1/N. The unscaled inverse is computed as
// conj(F(conj(x))) with the forward plan instead, which is exact and keeps
// both directions on the same code path.
type algoEngine[C Complex] struct {
	n    int
	dir  Direction
	plan *algofft.Plan[C]
}

// NewAlgoFFT plans an algo-fft backed engine of size n.
func NewAlgoFFT[C Complex](n int, dir Direction) (Engine[C], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if err := checkDirection(dir); err != nil {
		return nil, err
	}
	if n == 1 {
		return &identity[C]{dir: dir}, nil
	}

	plan, err := algofft.NewPlanT[C](n)
	if err != nil {
		return nil, fmt.Errorf("cfft: failed to create FFT plan: %w", err)
	}

	return &algoEngine[C]{n: n, dir: dir, plan: plan}, nil
}

func (e *algoEngine[C]) Len() int             { return e.n }
func (e *algoEngine[C]) Direction() Direction { return e.dir }

// ScratchLen is n for the inverse direction: both Process and
// ProcessOutOfPlace stage the conjugated input there.
func (e *algoEngine[C]) ScratchLen() int {
	if e.dir == Inverse {
		return e.n
	}
	return 0
}

func (e *algoEngine[C]) Process(buf, scratch []C) error {
	if err := checkBuffers(e.n, e.ScratchLen(), buf, buf, scratch); err != nil {
		return err
	}

	if e.dir == Forward {
		if err := e.plan.Forward(buf, buf); err != nil {
			return fmt.Errorf("cfft: forward FFT failed: %w", err)
		}
		return nil
	}
	return e.inverse(buf, buf, scratch[:e.n])
}

func (e *algoEngine[C]) ProcessOutOfPlace(in, out, scratch []C) error {
	if err := checkBuffers(e.n, e.ScratchLen(), in, out, scratch); err != nil {
		return err
	}

	if e.dir == Forward {
		if err := e.plan.Forward(out, in); err != nil {
			return fmt.Errorf("cfft: forward FFT failed: %w", err)
		}
		return nil
	}

	return e.inverse(in, out, scratch[:e.n])
}

// inverse computes conj(F(conj(in))) into out through staged. in and out may
// be the same slice.
func (e *algoEngine[C]) inverse(in, out, staged []C) error {
	conjugateInto(staged, in)
	if err := e.plan.Forward(out, staged); err != nil {
		return fmt.Errorf("cfft: inverse FFT failed: %w", err)
	}
	conjugate(out)
	return nil
}
