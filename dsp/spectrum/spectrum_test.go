package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-realfft/internal/testutil"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 || math.Abs(mag[1]-math.Sqrt2) > 1e-12 || mag[2] != 0 {
		t.Fatalf("Magnitude = %v", mag)
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-2) > 1e-12 {
		t.Fatalf("Power = %v", pow)
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 || math.Abs(phase[1]+3*math.Pi/4) > 1e-12 {
		t.Fatalf("Phase = %v", phase)
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestExpandHermitian(t *testing.T) {
	for _, n := range []int{1, 2, 5, 6, 17, 64} {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		half := testutil.ReferenceHalfSpectrum(x)

		got, err := ExpandHermitian(half, n)
		if err != nil {
			t.Fatalf("ExpandHermitian(%d) error: %v", n, err)
		}

		want := testutil.NaiveDFT(x, n)
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-9*float64(n))
	}
}

func TestExpandHermitianErrors(t *testing.T) {
	if _, err := ExpandHermitian(nil, 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("n=0 error = %v, want ErrInvalidSize", err)
	}
	if _, err := ExpandHermitian(make([]complex128, 3), 8); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short half error = %v, want ErrLengthMismatch", err)
	}
}

func TestBinFrequency(t *testing.T) {
	tests := []struct {
		k, n int
		sr   float64
		want float64
	}{
		{0, 1024, 48000, 0},
		{1, 1024, 48000, 46.875},
		{512, 1024, 48000, 24000},
		{3, 0, 48000, 0},
	}

	for _, tc := range tests {
		if got := BinFrequency(tc.k, tc.n, tc.sr); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("BinFrequency(%d, %d, %g) = %g, want %g", tc.k, tc.n, tc.sr, got, tc.want)
		}
	}
}
