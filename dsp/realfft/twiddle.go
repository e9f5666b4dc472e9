package realfft

import "math"

// twiddleCount returns the number of folding twiddles for an even length,
// excluding the index-0 entry which needs no correction.
func twiddleCount(length int) int {
	count := length / 4
	if length%4 != 0 {
		count++
	}
	return count - 1
}

// newTwiddles returns exp(-2*pi*i*k/length) for k = 1..twiddleCount(length)
// as interleaved (re, im) pairs. The forward table is scaled by 0.5, the
// inverse table is conjugated and unscaled.
//
// The twiddle of the mirror bin length/2-k is the same value with its real
// part negated, so one entry serves both bins of a pair.
func newTwiddles[F Float](length int, inverse bool) []F {
	count := twiddleCount(length)
	if count <= 0 {
		return nil
	}

	tw := make([]F, 2*count)
	step := -2 * math.Pi / float64(length)
	for i := range count {
		angle := step * float64(i+1)
		re, im := math.Cos(angle), math.Sin(angle)
		if inverse {
			im = -im
		} else {
			re *= 0.5
			im *= 0.5
		}
		tw[2*i] = F(re)
		tw[2*i+1] = F(im)
	}
	return tw
}
