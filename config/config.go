package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the preprocessing run. One instance is
// built at startup and passed down; nothing reads the environment after
// Load returns.
type Config struct {
	// Directory roots. The output tree mirrors the input tree.
	InputRoot  string
	OutputRoot string

	// Decoding.
	SampleRate  int    // target rate every stem is decoded at, Hz
	FFmpegPath  string
	FFprobePath string

	// Segmentation.
	SegmentSeconds int     // nominal segment window
	MaxDuration    float64 // seconds of each stem to process, 0 = full stem

	// Feature extraction.
	HopLength int // samples between analysis frames
	FFTSize   int // STFT window, power of two
	NumMels   int // mel filterbank size
	NumCoeffs int // cepstral coefficients kept per frame

	// Logging.
	LogLevel string
	LogFile  string // empty = console only
}

// Load reads configuration from the environment (via .env when present)
// falling back to defaults suited to musdb-style datasets.
func Load() *Config {
	// Existing environment variables win over the .env file; a missing
	// .env is not an error.
	_ = godotenv.Load()

	return &Config{
		InputRoot:  envStr("STEMFEAT_INPUT", "data/raw"),
		OutputRoot: envStr("STEMFEAT_OUTPUT", "data/processed"),

		SampleRate:  envInt("STEMFEAT_SAMPLE_RATE", 22050),
		FFmpegPath:  envStr("STEMFEAT_FFMPEG", "ffmpeg"),
		FFprobePath: envStr("STEMFEAT_FFPROBE", "ffprobe"),

		SegmentSeconds: envInt("STEMFEAT_SEGMENT_SECONDS", 5),
		MaxDuration:    envFloat("STEMFEAT_MAX_DURATION", 0),

		HopLength: envInt("STEMFEAT_HOP_LENGTH", 512),
		FFTSize:   envInt("STEMFEAT_FFT_SIZE", 2048),
		NumMels:   envInt("STEMFEAT_NUM_MELS", 128),
		NumCoeffs: envInt("STEMFEAT_NUM_COEFFS", 20),

		LogLevel: envStr("STEMFEAT_LOG_LEVEL", "info"),
		LogFile:  envStr("STEMFEAT_LOG_FILE", ""),
	}
}

// SegmentSamples returns the nominal segment window in samples.
func (c *Config) SegmentSamples() int {
	return c.SegmentSeconds * c.SampleRate
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
