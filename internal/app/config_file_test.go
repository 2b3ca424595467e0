package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	yml := "in: doc.hwpx\nout: doc.txt\nmanifest: auto\npdf:\n  font: NanumGothic.ttf\nsections:\n  order: natural\nunicode: nfc\nverbose: true\n"
	if err := os.WriteFile(p, []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfigFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.In != "doc.hwpx" || fc.Out != "doc.txt" || fc.Manifest != "auto" {
		t.Fatalf("unexpected paths: %+v", fc)
	}
	if fc.PDF.Font != "NanumGothic.ttf" || fc.Sections.Order != "natural" || fc.Unicode != "nfc" || !fc.Verbose {
		t.Fatalf("unexpected options: %+v", fc)
	}
}

func TestLoadConfigFile_JSONAndFallback(t *testing.T) {
	dir := t.TempDir()
	j := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(j, []byte(`{"in":"a.hwpx","sections":{"order":"natural"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfigFile(j)
	if err != nil || fc.In != "a.hwpx" || fc.Sections.Order != "natural" {
		t.Fatalf("json: fc=%+v err=%v", fc, err)
	}

	noExt := filepath.Join(dir, "hwpxtextrc")
	if err := os.WriteFile(noExt, []byte("out: b.txt\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err = LoadConfigFile(noExt)
	if err != nil || fc.Out != "b.txt" {
		t.Fatalf("fallback: fc=%+v err=%v", fc, err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("in: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfigFile(bad); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{InputPath: "flag.hwpx", SectionOrder: "lexical"}
	var fc FileConfig
	fc.In = "file.hwpx"
	fc.Out = "file.txt"
	fc.OutPDF = "file.pdf"
	fc.Sections.Order = "natural"
	fc.Unicode = "nfkc"
	ApplyFileConfig(&cfg, fc)
	if cfg.InputPath != "flag.hwpx" {
		t.Fatalf("flag input overridden: %q", cfg.InputPath)
	}
	if cfg.SectionOrder != "lexical" {
		t.Fatalf("flag order overridden: %q", cfg.SectionOrder)
	}
	if cfg.OutputPath != "file.txt" || cfg.OutputPDFPath != "file.pdf" || cfg.UnicodeForm != "nfkc" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	ApplyFileConfig(nil, fc)
}

func TestValidateConfig(t *testing.T) {
	ok := Config{InputPath: "a.hwpx", OutputPath: "a.txt"}
	if err := ValidateConfig(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []Config{
		{OutputPath: "a.txt"},
		{InputPath: "a.hwpx", OutputPath: "  "},
		{InputPath: "a.hwpx", OutputPath: "a.txt", SectionOrder: "random"},
		{InputPath: "a.hwpx", OutputPath: "a.txt", UnicodeForm: "nfd2"},
		{InputPath: "a.hwpx", OutputPath: "a.txt", PDFFontPath: "f.ttf"},
	}
	for i, c := range bad {
		if err := ValidateConfig(c); err == nil {
			t.Errorf("case %d: expected error for %+v", i, c)
		}
	}
}
