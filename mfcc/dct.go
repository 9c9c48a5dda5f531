package mfcc

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// dctII computes the orthonormal DCT-II of x using a single FFT of the
// same length (Makhoul's even-permutation method): the input is
// reordered as v[n] = x[2n], v[N-1-n] = x[2n+1], transformed, and each
// bin rotated by a quarter-sample phase.
func dctII(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	v := make([]float64, n)
	for i := 0; i < (n+1)/2; i++ {
		v[i] = x[2*i]
	}
	for i := 0; i < n/2; i++ {
		v[n-1-i] = x[2*i+1]
	}

	spectrum := fft.FFTReal(v)

	out := make([]float64, n)
	for k := 0; k < n; k++ {
		theta := -math.Pi * float64(k) / float64(2*n)
		out[k] = 2 * (real(spectrum[k])*math.Cos(theta) - imag(spectrum[k])*math.Sin(theta))
	}

	// orthonormal scaling
	out[0] *= math.Sqrt(1 / float64(4*n))
	scale := math.Sqrt(1 / float64(2*n))
	for k := 1; k < n; k++ {
		out[k] *= scale
	}

	return out
}
