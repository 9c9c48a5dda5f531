// Package mfcc computes mel-frequency cepstral coefficient matrices
// from waveform segments: STFT power spectrum, triangular mel
// filterbank, log compression, then an orthonormal DCT-II over the mel
// bands of each frame.
package mfcc

import (
	"errors"
	"math/cmplx"

	"github.com/r9y9/gossp/stft"
	"gonum.org/v1/gonum/mat"
)

// Extractor holds the configuration for computing MFCC matrices.
// The zero value is not usable; construct with New and adjust fields
// before the first Extract call. Configuration must stay constant
// across segments so their matrices are comparable.
type Extractor struct {
	NumCoeffs int     // cepstral coefficients kept per frame
	NumMels   int     // mel filterbank size
	FFTSize   int     // analysis window, power of two
	HopLength int     // samples between successive frames
	FminHz    float64 // filterbank lower edge
	FmaxHz    float64 // filterbank upper edge, 0 = half the sample rate

	// filterbank cache, rebuilt when the sample rate changes
	fbRate    int
	fbWeights [][]float64
}

// New creates an Extractor with the default MFCC shape: 20 coefficients
// over a 128-band mel filterbank, 2048-sample windows, 512-sample hop.
func New() *Extractor {
	return &Extractor{
		NumCoeffs: 20,
		NumMels:   128,
		FFTSize:   2048,
		HopLength: 512,
	}
}

var ErrEmptySegment = errors.New("empty waveform segment")

// Extract computes the MFCC matrix of one waveform segment. The result
// has NumCoeffs rows and one column per analysis frame. Segments
// shorter than one analysis window are zero-padded up to it, so every
// non-empty segment yields at least one frame.
func (e *Extractor) Extract(segment []float64, sampleRate int) (*mat.Dense, error) {
	if len(segment) == 0 {
		return nil, ErrEmptySegment
	}
	if e.NumCoeffs > e.NumMels {
		return nil, errors.New("more cepstral coefficients than mel bands")
	}

	buf := pad(segment, e.FFTSize)

	s := stft.New(e.HopLength, e.FFTSize)
	spectrum := s.STFT(buf)

	bins := e.FFTSize / 2
	power := make([][]float64, len(spectrum))
	for i, frame := range spectrum {
		power[i] = make([]float64, bins)
		for j := 0; j < bins; j++ {
			a := cmplx.Abs(frame[j])
			power[i][j] = a * a
		}
	}

	weights := e.filterbank(sampleRate)

	out := mat.NewDense(e.NumCoeffs, len(power), nil)
	melFrame := make([]float64, e.NumMels)
	for t, frame := range power {
		for m, w := range weights {
			var sum float64
			for k, wk := range w {
				if wk != 0 {
					sum += wk * frame[k]
				}
			}
			melFrame[m] = sum
		}
		logCompress(melFrame)

		coeffs := dctII(melFrame)
		for k := 0; k < e.NumCoeffs; k++ {
			out.Set(k, t, coeffs[k])
		}
	}

	return out, nil
}

// filterbank returns the mel weights for the given rate, rebuilding the
// cached set only when the rate changes.
func (e *Extractor) filterbank(sampleRate int) [][]float64 {
	if e.fbWeights != nil && e.fbRate == sampleRate {
		return e.fbWeights
	}
	fmax := e.FmaxHz
	if fmax == 0 {
		fmax = float64(sampleRate) / 2
	}
	e.fbWeights = melFilterbank(e.NumMels, e.FFTSize, sampleRate, e.FminHz, fmax)
	e.fbRate = sampleRate
	return e.fbWeights
}

// pad right-pads buf with zeros so it spans at least one analysis
// window.
func pad(buf []float64, window int) []float64 {
	if len(buf) >= window {
		return buf
	}
	padded := make([]float64, window)
	copy(padded, buf)
	return padded
}
