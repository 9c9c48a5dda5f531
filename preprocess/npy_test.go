package preprocess

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

func TestNpyWriterRoundTrip(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	path := filepath.Join(t.TempDir(), "m.npy")

	if err := (NpyWriter{}).Write(m, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var got mat.Dense
	if err := npyio.Read(f, &got); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if !mat.Equal(m, &got) {
		t.Errorf("round trip mismatch:\nwrote %v\nread  %v", mat.Formatted(m), mat.Formatted(&got))
	}
}

func TestNpyWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.npy")

	first := mat.NewDense(1, 2, []float64{9, 9})
	if err := (NpyWriter{}).Write(first, path); err != nil {
		t.Fatal(err)
	}

	second := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if err := (NpyWriter{}).Write(second, path); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	a, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Writing the same matrix again must produce identical bytes.
	if err := (NpyWriter{}).Write(second, path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated writes of the same matrix differ")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var got mat.Dense
	if err := npyio.Read(f, &got); err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(second, &got) {
		t.Error("file does not hold the last written matrix")
	}
}
