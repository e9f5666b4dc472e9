package cfft

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// gonumEngine wraps gonum's CmplxFFT. Both Coefficients and Sequence are
// unnormalized, so no rescaling is needed. gonum only works on complex128;
// complex64 data is widened through work.
type gonumEngine[C Complex] struct {
	n    int
	dir  Direction
	fft  *fourier.CmplxFFT
	work []complex128 // nil unless C is complex64
}

// NewGonum plans a gonum backed engine of size n.
func NewGonum[C Complex](n int, dir Direction) (Engine[C], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if err := checkDirection(dir); err != nil {
		return nil, err
	}
	if n == 1 {
		return &identity[C]{dir: dir}, nil
	}

	e := &gonumEngine[C]{
		n:   n,
		dir: dir,
		fft: fourier.NewCmplxFFT(n),
	}

	var zero C
	if _, ok := any(zero).(complex64); ok {
		e.work = make([]complex128, n)
	}

	return e, nil
}

func (e *gonumEngine[C]) Len() int             { return e.n }
func (e *gonumEngine[C]) Direction() Direction { return e.dir }
func (e *gonumEngine[C]) ScratchLen() int      { return 0 }

func (e *gonumEngine[C]) Process(buf, scratch []C) error {
	return e.ProcessOutOfPlace(buf, buf, scratch)
}

func (e *gonumEngine[C]) ProcessOutOfPlace(in, out, scratch []C) error {
	if err := checkBuffers(e.n, 0, in, out, scratch); err != nil {
		return err
	}

	switch o := any(out).(type) {
	case []complex128:
		e.transform(o, any(in).([]complex128))
	case []complex64:
		for i, v := range any(in).([]complex64) {
			e.work[i] = complex128(v)
		}
		e.transform(e.work, e.work)
		for i, v := range e.work {
			o[i] = complex64(v)
		}
	}
	return nil
}

// transform is safe for dst and src sharing memory.
func (e *gonumEngine[C]) transform(dst, src []complex128) {
	if e.dir == Forward {
		e.fft.Coefficients(dst, src)
	} else {
		e.fft.Sequence(dst, src)
	}
}
