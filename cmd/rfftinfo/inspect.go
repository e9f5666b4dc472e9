package main

import (
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-realfft/dsp/realfft"
)

type report struct {
	Length         int      `yaml:"length"`
	Path           string   `yaml:"path"`
	Bins           int      `yaml:"bins"`
	Twiddles       int      `yaml:"twiddles"`
	ScratchForward int      `yaml:"scratch_forward"`
	ScratchInverse int      `yaml:"scratch_inverse"`
	Backend        string   `yaml:"backend"`
	Precision      int      `yaml:"precision"`
	ForwardError   *float64 `yaml:"forward_error,omitempty"`
	RoundTripError *float64 `yaml:"roundtrip_error,omitempty"`
}

func inspect[F realfft.Float, C realfft.Complex](n int, check bool, opts []realfft.Option) (report, error) {
	fwd, err := realfft.NewRealToComplexT[F, C](n, opts...)
	if err != nil {
		return report{}, err
	}
	inv, err := realfft.NewComplexToRealT[F, C](n, opts...)
	if err != nil {
		return report{}, err
	}

	var zero F
	r := report{
		Length:         n,
		Path:           "even",
		Bins:           fwd.SpectrumLen(),
		Twiddles:       fwd.TwiddleLen(),
		ScratchForward: fwd.ScratchLen(),
		ScratchInverse: inv.ScratchLen(),
		Backend:        fwd.Backend().String(),
		Precision:      precisionOf(zero),
	}
	if n%2 != 0 {
		r.Path = "odd"
	}
	if !check {
		return r, nil
	}

	fe, re, err := measure(fwd, inv)
	if err != nil {
		return report{}, err
	}
	r.ForwardError = &fe
	r.RoundTripError = &re
	return r, nil
}

// measure returns the largest bin deviation of fwd from a full complex FFT
// and the largest sample deviation of inv(fwd(x))/n from x, both on uniform
// noise in [-1, 1).
func measure[F realfft.Float, C realfft.Complex](fwd *realfft.RealToComplexT[F, C], inv *realfft.ComplexToRealT[F, C]) (float64, float64, error) {
	n := fwd.Len()
	rng := rand.New(rand.NewSource(1))

	x := make([]F, n)
	ref := make([]complex128, n)
	for i := range x {
		v := F(2*rng.Float64() - 1)
		x[i] = v
		ref[i] = complex(float64(v), 0)
	}
	fourier.NewCmplxFFT(n).Coefficients(ref, ref)

	work := append([]F(nil), x...)
	spectrum := make([]C, fwd.SpectrumLen())
	if err := fwd.Process(work, spectrum); err != nil {
		return 0, 0, err
	}

	fwdErr := 0.0
	for k, v := range spectrum {
		fwdErr = math.Max(fwdErr, cmplx.Abs(complex128(v)-ref[k]))
	}

	back := make([]F, n)
	if err := inv.Process(spectrum, back); err != nil {
		return 0, 0, err
	}

	rtErr := 0.0
	scale := 1 / float64(n)
	for i, v := range back {
		rtErr = math.Max(rtErr, math.Abs(float64(v)*scale-float64(x[i])))
	}
	return fwdErr, rtErr, nil
}

func precisionOf(v any) int {
	if _, ok := v.(float32); ok {
		return 32
	}
	return 64
}
