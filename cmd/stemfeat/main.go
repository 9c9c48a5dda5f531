package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stemfeat/config"
	"stemfeat/logger"
	"stemfeat/mfcc"
	"stemfeat/preprocess"
	"stemfeat/stems"
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "stemfeat",
		Short: "stemfeat extracts per-segment MFCC features from multi-stem recordings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.InputRoot, "input", cfg.InputRoot,
		"root directory of stem containers")
	flags.StringVar(&cfg.OutputRoot, "output", cfg.OutputRoot,
		"root directory the feature tree is written under")
	flags.Float64Var(&cfg.MaxDuration, "duration", cfg.MaxDuration,
		"seconds of each stem to process, 0 = full stem")
	flags.IntVar(&cfg.SegmentSeconds, "segment", cfg.SegmentSeconds,
		"segment window in seconds")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	extractor := mfcc.New()
	extractor.NumCoeffs = cfg.NumCoeffs
	extractor.NumMels = cfg.NumMels
	extractor.FFTSize = cfg.FFTSize
	extractor.HopLength = cfg.HopLength

	processor := &preprocess.Processor{
		Decoder:        stems.NewReader(cfg.FFmpegPath, cfg.FFprobePath, cfg.SampleRate),
		Extractor:      extractor,
		Writer:         preprocess.NpyWriter{},
		SegmentSeconds: cfg.SegmentSeconds,
		MaxDuration:    cfg.MaxDuration,
		Log:            log,
	}

	walker := &preprocess.Walker{
		InputRoot:  cfg.InputRoot,
		OutputRoot: cfg.OutputRoot,
		Processor:  processor,
		Log:        log,
	}

	return walker.Run()
}
