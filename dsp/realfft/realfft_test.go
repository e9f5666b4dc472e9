package realfft

import (
	"errors"
	"testing"
)

func TestInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, -16} {
		if _, err := NewRealToComplex(n); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("NewRealToComplex(%d) error = %v, want ErrInvalidLength", n, err)
		}
		if _, err := NewComplexToReal(n); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("NewComplexToReal(%d) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestWithEvenOnly(t *testing.T) {
	for _, n := range []int{1, 3, 1023} {
		if _, err := NewRealToComplex(n, WithEvenOnly()); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("NewRealToComplex(%d, WithEvenOnly) error = %v, want ErrInvalidLength", n, err)
		}
		if _, err := NewComplexToReal32(n, WithEvenOnly()); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("NewComplexToReal32(%d, WithEvenOnly) error = %v, want ErrInvalidLength", n, err)
		}
	}

	if _, err := NewRealToComplex(1024, WithEvenOnly()); err != nil {
		t.Fatalf("NewRealToComplex(1024, WithEvenOnly) error: %v", err)
	}
}

func TestPrecisionMismatch(t *testing.T) {
	if _, err := NewRealToComplexT[float32, complex128](8); !errors.Is(err, ErrPrecisionMismatch) {
		t.Fatalf("NewRealToComplexT[float32, complex128] error = %v, want ErrPrecisionMismatch", err)
	}
	if _, err := NewComplexToRealT[float64, complex64](8); !errors.Is(err, ErrPrecisionMismatch) {
		t.Fatalf("NewComplexToRealT[float64, complex64] error = %v, want ErrPrecisionMismatch", err)
	}
}

func TestUnknownBackend(t *testing.T) {
	if _, err := NewRealToComplex(8, WithBackend(Backend(9))); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestNilOptionIgnored(t *testing.T) {
	r, err := NewRealToComplex(8, nil)
	if err != nil {
		t.Fatalf("NewRealToComplex error: %v", err)
	}
	if r.Backend() != BackendAlgoFFT {
		t.Fatalf("Backend = %s, want algofft", r.Backend())
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    Backend
		wantErr bool
	}{
		{"", BackendAlgoFFT, false},
		{"algofft", BackendAlgoFFT, false},
		{"algo-fft", BackendAlgoFFT, false},
		{"gonum", BackendGonum, false},
		{"fftw", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseBackend(tc.name)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseBackend(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Fatalf("ParseBackend(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestBackendString(t *testing.T) {
	if BackendAlgoFFT.String() != "algofft" || BackendGonum.String() != "gonum" {
		t.Fatalf("unexpected names %q/%q", BackendAlgoFFT, BackendGonum)
	}
	if got := Backend(7).String(); got != "Backend(7)" {
		t.Fatalf("Backend(7).String() = %q", got)
	}
}

func TestReinterpretViews(t *testing.T) {
	f := []float64{1, 2, 3, 4}
	c := asComplex[float64, complex128](f)
	if len(c) != 2 || c[0] != 1+2i || c[1] != 3+4i {
		t.Fatalf("asComplex = %v", c)
	}

	c[1] = 5 + 6i
	if f[2] != 5 || f[3] != 6 {
		t.Fatalf("view does not alias: %v", f)
	}

	back := asFloat[float64, complex128](c)
	if len(back) != 4 || &back[0] != &f[0] {
		t.Fatal("asFloat does not alias the original storage")
	}

	if asComplex[float32, complex64](nil) != nil || asFloat[float32, complex64](nil) != nil {
		t.Fatal("empty views should be nil")
	}
}
