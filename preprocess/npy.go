package preprocess

import (
	"fmt"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// NpyWriter persists feature matrices in NumPy .npy format. An existing
// file at the destination is silently overwritten.
type NpyWriter struct{}

// Write serializes m to path.
func (NpyWriter) Write(m *mat.Dense, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := npyio.Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
