package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteSimplePDF_CoreFont(t *testing.T) {
	out := filepath.Join(t.TempDir(), "o.pdf")
	text := "Title\n\nBody\twith tab and café\n"
	if err := writeSimplePDF(text, out, ""); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) || len(b) < 200 {
		t.Fatalf("expected a non-trivial PDF, got %d bytes", len(b))
	}
}

func TestWriteSimplePDF_MissingFont(t *testing.T) {
	out := filepath.Join(t.TempDir(), "o.pdf")
	if err := writeSimplePDF("x\n", out, filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatalf("expected error for missing font file")
	}
}
