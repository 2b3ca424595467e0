package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/hwpxtext/internal/hwpx"
)

// App runs one extraction from Config.
type App struct {
	cfg       Config
	extractor hwpx.Extractor
}

// New validates cfg and wires the archive extractor. A nil extractor selects
// hwpx.ArchiveExtractor with the configured section order.
func New(cfg Config, extractor hwpx.Extractor) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if extractor == nil {
		order, _ := hwpx.ParseSectionOrder(cfg.SectionOrder)
		extractor = hwpx.ArchiveExtractor{Options: hwpx.Options{Order: order}}
	}
	return &App{cfg: cfg, extractor: extractor}, nil
}

// Run extracts the input archive and writes the text output plus any
// configured sidecars. Nothing is written to the output path on failure.
func (a *App) Run(ctx context.Context) error {
	in, err := ResolvePath(a.cfg.InputPath)
	if err != nil {
		return err
	}
	out, err := ResolvePath(a.cfg.OutputPath)
	if err != nil {
		return err
	}
	log.Debug().Str("stage", "resolve").Str("in", in).Str("out", out).Msg("paths resolved")

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := a.extractor.Extract(in)
	if err != nil {
		return err
	}
	log.Debug().Str("stage", "extract").Int("sections", len(doc.Sections)).Int("chars", len(doc.Text)).Msg("extracted")

	text, err := applyUnicodeForm(doc.Text, a.cfg.UnicodeForm)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Sidecars go first so a sidecar failure leaves no text output behind.
	if p := strings.TrimSpace(a.cfg.OutputPDFPath); p != "" {
		if err := a.writePDF(p, text); err != nil {
			return err
		}
	}
	if p := strings.TrimSpace(a.cfg.ManifestPath); p != "" {
		if err := a.writeManifest(p, in, out, doc, text); err != nil {
			return err
		}
	}

	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("stage", "write").Str("out", out).Int("bytes", len(text)).Msg("wrote text output")
	return nil
}

func (a *App) writePDF(p, text string) error {
	pdfPath, err := ResolvePath(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0o755); err != nil {
		return fmt.Errorf("create pdf dir: %w", err)
	}
	font := strings.TrimSpace(a.cfg.PDFFontPath)
	if font != "" {
		if font, err = ResolvePath(font); err != nil {
			return err
		}
	}
	if err := writeSimplePDF(text, pdfPath, font); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Info().Str("stage", "pdf").Str("out", pdfPath).Msg("wrote pdf output")
	return nil
}

func (a *App) writeManifest(p, in, out string, doc hwpx.Document, text string) error {
	manPath := deriveManifestSidecarPath(out)
	if !strings.EqualFold(p, "auto") {
		var err error
		if manPath, err = ResolvePath(p); err != nil {
			return err
		}
	}
	input, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input for manifest: %w", err)
	}
	cfg := a.cfg
	cfg.InputPath, cfg.OutputPath = in, out
	if err := os.MkdirAll(filepath.Dir(manPath), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	if err := writeJSON(manPath, buildManifest(cfg, input, doc, text)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	log.Info().Str("stage", "manifest").Str("out", manPath).Int("sections", len(doc.Sections)).Msg("wrote manifest")
	return nil
}
