package hasher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSumStable(t *testing.T) {
	// xxHash64 of the empty input.
	if got := Sum(nil); got != "ef46db3751d8e999" {
		t.Errorf("empty: got %s", got)
	}
	if Sum([]byte("a")) == Sum([]byte("b")) {
		t.Error("distinct inputs collide")
	}
	if len(Sum([]byte("luminance"))) != 16 {
		t.Error("digest is not 16 hex chars")
	}
}

func TestSumFileMatchesSum(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 4096)
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := SumFile(path)
	if err != nil {
		t.Fatalf("sum file: %v", err)
	}
	if got != Sum(data) {
		t.Errorf("file digest %s != memory digest %s", got, Sum(data))
	}

	if _, err := SumFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file should fail")
	}
}
