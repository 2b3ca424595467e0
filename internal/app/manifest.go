package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperifyio/hwpxtext/internal/hwpx"
)

// manifestEntry is a compact record of one section entry.
type manifestEntry struct {
	Name   string `json:"name"`
	Index  int    `json:"index"`
	SHA256 string `json:"sha256"`
	Chars  int    `json:"chars"`
}

// manifest records what was extracted so a run can be audited and
// reproduced. It carries no timestamps; identical inputs give identical
// manifests.
type manifest struct {
	Input        string          `json:"input"`
	InputSHA256  string          `json:"input_sha256"`
	SectionOrder string          `json:"section_order"`
	UnicodeForm  string          `json:"unicode_form,omitempty"`
	Sections     []manifestEntry `json:"sections"`
	Output       string          `json:"output"`
	OutputSHA256 string          `json:"output_sha256"`
	OutputChars  int             `json:"output_chars"`
	Version      string          `json:"version"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of b.
func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// buildManifestEntries digests the raw fragment of each section.
func buildManifestEntries(sections []hwpx.Section) []manifestEntry {
	out := make([]manifestEntry, 0, len(sections))
	for _, s := range sections {
		out = append(out, manifestEntry{
			Name:   s.Name,
			Index:  s.Index,
			SHA256: computeSHA256Hex([]byte(s.Text)),
			Chars:  len([]rune(s.Text)),
		})
	}
	return out
}

func buildManifest(cfg Config, input []byte, doc hwpx.Document, text string) manifest {
	order, _ := hwpx.ParseSectionOrder(cfg.SectionOrder)
	return manifest{
		Input:        cfg.InputPath,
		InputSHA256:  computeSHA256Hex(input),
		SectionOrder: order.String(),
		UnicodeForm:  cfg.UnicodeForm,
		Sections:     buildManifestEntries(doc.Sections),
		Output:       cfg.OutputPath,
		OutputSHA256: computeSHA256Hex([]byte(text)),
		OutputChars:  len([]rune(text)),
		Version:      BuildVersion,
	}
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
