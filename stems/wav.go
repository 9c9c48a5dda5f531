package stems

import (
	"fmt"
	"os"

	"github.com/faiface/beep/wav"
)

// LoadWAV reads a WAV file into a mono float64 sample vector in the
// range [-1, 1], taking the first channel, and returns its native
// sample rate.
func LoadWAV(path string) ([]float64, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav %s: %w", path, err)
	}
	defer stream.Close()

	out := make([]float64, 0, stream.Len())
	frame := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(frame)
		for i := 0; i < n; i++ {
			out = append(out, frame[i][0])
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("stream wav %s: %w", path, err)
	}

	return out, int(format.SampleRate), nil
}
