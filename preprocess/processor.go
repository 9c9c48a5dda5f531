// Package preprocess turns a tree of multi-stem recordings into a
// mirrored tree of per-segment MFCC feature files.
package preprocess

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// StemDecoder decodes one track file into its ordered stems at a fixed
// target sample rate.
type StemDecoder interface {
	ReadStems(path string) (stems [][]float64, sampleRate int, err error)
}

// FeatureExtractor computes the feature matrix of one waveform segment.
type FeatureExtractor interface {
	Extract(segment []float64, sampleRate int) (*mat.Dense, error)
}

// MatrixWriter persists one feature matrix, overwriting any existing
// file at the destination path.
type MatrixWriter interface {
	Write(m *mat.Dense, path string) error
}

// Processor converts one track into feature files: decode the stems,
// cut each into fixed-length segments, extract a matrix per segment and
// write it out. The first failure aborts the track; files written
// before it remain on disk.
type Processor struct {
	Decoder   StemDecoder
	Extractor FeatureExtractor
	Writer    MatrixWriter

	SegmentSeconds int
	MaxDuration    float64 // seconds of each stem to process, 0 = full stem

	Log *zap.Logger
}

// Process handles a single track. outDir is created along with missing
// parents. One file per (stem, segment) pair is written as
// <track_basename>_stem<i>_segment<j>.npy inside outDir.
func (p *Processor) Process(trackPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	stems, sampleRate, err := p.Decoder.ReadStems(trackPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", trackPath, err)
	}

	segmentSamples := p.SegmentSeconds * sampleRate
	base := filepath.Base(trackPath)

	for i, stem := range stems {
		p.Log.Info("processing stem",
			zap.Int("stem", i),
			zap.String("track", trackPath))

		length := effectiveLength(len(stem), sampleRate, p.MaxDuration)
		segments := numSegments(length, segmentSamples)
		p.Log.Info("segment count",
			zap.Int("stem", i),
			zap.Int("segments", segments))

		for j := 0; j < segments; j++ {
			start, end := segmentBounds(j, segmentSamples, length)

			matrix, err := p.Extractor.Extract(stem[start:end], sampleRate)
			if err != nil {
				return fmt.Errorf("extract features for %s stem %d segment %d: %w",
					trackPath, i, j, err)
			}

			dst := filepath.Join(outDir, fmt.Sprintf("%s_stem%d_segment%d.npy", base, i, j))
			if err := p.Writer.Write(matrix, dst); err != nil {
				return fmt.Errorf("write %s: %w", dst, err)
			}

			p.Log.Debug("wrote feature file",
				zap.String("file", dst),
				zap.Int("samples", end-start))
		}
	}

	return nil
}
