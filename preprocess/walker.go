package preprocess

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// Walker visits every regular file under InputRoot in lexical order and
// hands each one to the Processor, mirroring the file's relative parent
// directory under OutputRoot. Tracks run strictly one at a time; the
// first failing track aborts the run.
type Walker struct {
	InputRoot  string
	OutputRoot string
	Processor  *Processor
	Log        *zap.Logger
}

// Run walks the input tree. Files are not filtered by extension; a
// non-audio file surfaces as a decode error from the Processor.
func (w *Walker) Run() error {
	return filepath.WalkDir(w.InputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(w.InputRoot, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		outDir := filepath.Join(w.OutputRoot, filepath.Dir(rel))

		w.Log.Info("processing track",
			zap.String("track", path),
			zap.String("output", outDir))

		return w.Processor.Process(path, outDir)
	})
}
