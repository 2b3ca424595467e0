package app

import (
	"testing"

	"github.com/hyperifyio/hwpxtext/internal/hwpx"
)

func TestBuildManifestEntries_ComputesSHA256AndChars(t *testing.T) {
	sections := []hwpx.Section{
		{Name: "Contents/section0.xml", Index: 0, Text: "\nhello\n"},
		{Name: "Contents/section1.xml", Index: 1, Text: "\n안녕\n"},
	}
	entries := buildManifestEntries(sections)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries; got %d", len(entries))
	}
	if entries[0].Chars != 7 || entries[1].Chars != 4 {
		t.Fatalf("unexpected char counts: %+v", entries)
	}
	if entries[0].SHA256 != computeSHA256Hex([]byte("\nhello\n")) {
		t.Fatalf("unexpected digest: %s", entries[0].SHA256)
	}
}

func TestBuildManifest_IsDeterministic(t *testing.T) {
	cfg := Config{InputPath: "/in.hwpx", OutputPath: "/out.txt", SectionOrder: "natural"}
	doc := hwpx.Document{Sections: []hwpx.Section{{Name: "Contents/section0.xml", Text: "\nx\n"}}, Text: "x\n"}
	a := buildManifest(cfg, []byte("zip"), doc, doc.Text)
	b := buildManifest(cfg, []byte("zip"), doc, doc.Text)
	if a.InputSHA256 != b.InputSHA256 || a.OutputSHA256 != b.OutputSHA256 {
		t.Fatalf("manifest not deterministic")
	}
	if a.SectionOrder != "natural" || a.Version != BuildVersion {
		t.Fatalf("unexpected manifest: %+v", a)
	}
}

func TestDeriveManifestSidecarPath(t *testing.T) {
	if got := deriveManifestSidecarPath("/tmp/out.txt"); got != "/tmp/out.txt.manifest.json" {
		t.Fatalf("unexpected sidecar path %q", got)
	}
}
