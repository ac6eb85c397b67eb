package ports

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSourcesEndWithSingleNewline(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasSuffix(src, []byte("\n")) || bytes.HasSuffix(src, []byte("\n\n")) {
			t.Errorf("%s: want exactly one trailing newline", f)
		}
	}
}
