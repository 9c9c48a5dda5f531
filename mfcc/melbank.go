package mfcc

import "math"

const (
	melBreakFrequencyHertz = 700.0
	melHighFrequencyQ      = 1127.0
)

func hzToMel(hz float64) float64 {
	return melHighFrequencyQ * math.Log(1.0+hz/melBreakFrequencyHertz)
}

func melToHz(mel float64) float64 {
	return melBreakFrequencyHertz * (math.Exp(mel/melHighFrequencyQ) - 1.0)
}

// melFilterbank builds numMels triangular filters over the FFT bins of
// an fftSize window at the given rate. Filter m rises from edge m to a
// peak at edge m+1 and falls to zero at edge m+2, with the numMels+2
// edges evenly spaced on the mel scale between fmin and fmax.
func melFilterbank(numMels, fftSize, sampleRate int, fmin, fmax float64) [][]float64 {
	bins := fftSize / 2

	edges := make([]float64, numMels+2)
	melLo, melHi := hzToMel(fmin), hzToMel(fmax)
	for i := range edges {
		edges[i] = melToHz(melLo + (melHi-melLo)*float64(i)/float64(numMels+1))
	}

	weights := make([][]float64, numMels)
	for m := 0; m < numMels; m++ {
		w := make([]float64, bins)
		lo, center, hi := edges[m], edges[m+1], edges[m+2]
		for k := 0; k < bins; k++ {
			f := float64(k) * float64(sampleRate) / float64(fftSize)
			switch {
			case f <= lo || f >= hi:
				// outside the triangle
			case f <= center:
				w[k] = (f - lo) / (center - lo)
			default:
				w[k] = (hi - f) / (hi - center)
			}
		}
		weights[m] = w
	}

	return weights
}

// logCompress maps mel energies to log scale in place, flooring at 1e-5
// to keep silence finite.
func logCompress(buf []float64) {
	for i := range buf {
		if buf[i] < 1e-5 {
			buf[i] = 1e-5
		}
		buf[i] = math.Log(buf[i])
	}
}
