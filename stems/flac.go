package stems

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// LoadFLAC reads a FLAC file into a mono float64 sample vector in the
// range [-1, 1], taking the first channel, and returns its native
// sample rate.
func LoadFLAC(path string) ([]float64, int, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open flac %s: %w", path, err)
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))
	out := make([]float64, 0, stream.Info.NSamples)

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("parse flac %s: %w", path, err)
		}
		for _, s := range frame.Subframes[0].Samples {
			out = append(out, float64(s)/scale)
		}
	}

	return out, int(stream.Info.SampleRate), nil
}
