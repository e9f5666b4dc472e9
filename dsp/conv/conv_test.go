package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-realfft/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestConvolveMatchesDirect(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 3}, {17, 4}, {100, 33}, {256, 256}, {1000, 129}}

	for _, sz := range sizes {
		a := testutil.DeterministicNoise(int64(sz[0]), 1, sz[0])
		b := testutil.DeterministicNoise(int64(sz[1]+100), 1, sz[1])

		want, err := Direct(a, b)
		if err != nil {
			t.Fatalf("Direct(%d, %d) error: %v", sz[0], sz[1], err)
		}
		got, err := Convolve(a, b)
		if err != nil {
			t.Fatalf("Convolve(%d, %d) error: %v", sz[0], sz[1], err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestConvolveDoesNotModifyInputs(t *testing.T) {
	a := testutil.Ramp(10)
	b := []float64{1, -1, 0.5}
	if _, err := Convolve(a, b); err != nil {
		t.Fatalf("Convolve error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a, testutil.Ramp(10), 0)
	testutil.RequireSliceNearlyEqual(t, b, []float64{1, -1, 0.5}, 0)
}

func TestCorrelate(t *testing.T) {
	a := []float64{0, 0, 1, 2, 3, 0}
	b := []float64{1, 2, 3}

	got, err := Correlate(a, b)
	if err != nil {
		t.Fatalf("Correlate error: %v", err)
	}
	if len(got) != len(a)+len(b)-1 {
		t.Fatalf("len = %d, want %d", len(got), len(a)+len(b)-1)
	}

	// The template starts at index 2, i.e. lag 2 -> index 2+len(b)-1.
	peak := 0
	for i := range got {
		if got[i] > got[peak] {
			peak = i
		}
	}
	if peak != 4 {
		t.Fatalf("peak index = %d, want 4 (%v)", peak, got)
	}
}

func TestConvolveErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Direct empty input error = %v", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("Direct empty kernel error = %v", err)
	}
	if _, err := Convolve(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Convolve empty input error = %v", err)
	}
	if _, err := Convolve([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("Convolve empty kernel error = %v", err)
	}
	if _, err := Correlate(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Correlate empty input error = %v", err)
	}
	if _, err := Correlate([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("Correlate empty kernel error = %v", err)
	}
}

func TestFFTSizeFor(t *testing.T) {
	tests := []struct{ n, want int }{{1, 2}, {2, 2}, {3, 4}, {5, 8}, {1024, 1024}, {1025, 2048}}
	for _, tc := range tests {
		if got := fftSizeFor(tc.n); got != tc.want {
			t.Fatalf("fftSizeFor(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}
