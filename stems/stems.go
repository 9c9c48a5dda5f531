// Package stems decodes multi-stem audio containers into mono waveforms
// at a fixed target sample rate.
//
// A stem container (for example a musdb .stem.mp4) carries one audio
// stream per instrument. ffprobe reports how many streams the container
// has, ffmpeg extracts each one as a temporary 16-bit PCM WAV at the
// target rate, and the WAV is then loaded into a float64 sample vector.
// Plain .wav and .flac files are treated as single-stem tracks and read
// directly when they already match the target rate.
package stems

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoAudioStreams is returned when ffprobe finds no audio in a file.
var ErrNoAudioStreams = errors.New("no audio streams in container")

// Reader decodes tracks using external ffmpeg/ffprobe binaries.
type Reader struct {
	FFmpegPath  string
	FFprobePath string
	SampleRate  int // target rate, Hz
}

// NewReader returns a Reader decoding at the given target sample rate.
func NewReader(ffmpegPath, ffprobePath string, sampleRate int) *Reader {
	return &Reader{
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
		SampleRate:  sampleRate,
	}
}

// ReadStems decodes every audio stream of the container at path into a
// mono waveform at the target rate. Stems are returned in container
// stream order. The returned rate is always the target rate.
func (r *Reader) ReadStems(path string) ([][]float64, int, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, 0, fmt.Errorf("input file does not exist: %w", err)
	}

	// Single-stem fast path for plain audio files at the right rate.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		if buf, sr, err := LoadWAV(path); err == nil && sr == r.SampleRate {
			return [][]float64{buf}, sr, nil
		}
	case ".flac":
		if buf, sr, err := LoadFLAC(path); err == nil && sr == r.SampleRate {
			return [][]float64{buf}, sr, nil
		}
	}

	n, err := r.countStreams(path)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, ErrNoAudioStreams
	}

	// ffmpeg cannot edit files in place and the extracted WAVs are
	// intermediate anyway, so they live in a throwaway directory.
	tmpDir, err := os.MkdirTemp("", "stemfeat")
	if err != nil {
		return nil, 0, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	stems := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		wavPath := filepath.Join(tmpDir, fmt.Sprintf("stem%d.wav", i))
		if err := r.extractStream(path, i, wavPath); err != nil {
			return nil, 0, err
		}
		buf, _, err := LoadWAV(wavPath)
		if err != nil {
			return nil, 0, fmt.Errorf("load stem %d of %s: %w", i, path, err)
		}
		stems = append(stems, buf)
	}

	return stems, r.SampleRate, nil
}

// countStreams asks ffprobe how many audio streams the container holds.
func (r *Reader) countStreams(path string) (int, error) {
	cmd := exec.Command(
		r.FFprobePath,
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index",
		"-of", "csv=p=0",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe stream query failed for %s: %w", path, err)
	}

	return countStreamLines(string(out)), nil
}

// countStreamLines counts the non-empty lines of ffprobe csv output,
// one per audio stream.
func countStreamLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// extractStream decodes one audio stream of src into a mono 16-bit PCM
// WAV at the target rate.
func (r *Reader) extractStream(src string, stream int, dst string) error {
	cmd := exec.Command(
		r.FFmpegPath,
		"-y",
		"-i", src,
		"-map", fmt.Sprintf("0:a:%d", stream),
		"-acodec", "pcm_s16le",
		"-ar", fmt.Sprint(r.SampleRate),
		"-ac", "1",
		"-loglevel", "error",
		dst,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed to extract stream %d of %s: %w, output: %s",
			stream, src, err, string(output))
	}
	return nil
}
