package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/hwpxtext/internal/hwpx"
)

// FileConfig is the on-disk configuration schema. Keys mirror the CLI flags.
type FileConfig struct {
	In       string `yaml:"in" json:"in"`
	Out      string `yaml:"out" json:"out"`
	OutPDF   string `yaml:"outPDF" json:"outPDF"`
	Manifest string `yaml:"manifest" json:"manifest"`

	PDF struct {
		Font string `yaml:"font" json:"font"`
	} `yaml:"pdf" json:"pdf"`

	Sections struct {
		Order string `yaml:"order" json:"order"`
	} `yaml:"sections" json:"sections"`

	Unicode string `yaml:"unicode" json:"unicode"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset. Flags are parsed
// first, so explicit flags win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.In != "" {
		cfg.InputPath = fc.In
	}
	if cfg.OutputPath == "" && fc.Out != "" {
		cfg.OutputPath = fc.Out
	}
	if cfg.OutputPDFPath == "" && fc.OutPDF != "" {
		cfg.OutputPDFPath = fc.OutPDF
	}
	if cfg.ManifestPath == "" && fc.Manifest != "" {
		cfg.ManifestPath = fc.Manifest
	}
	if cfg.PDFFontPath == "" && fc.PDF.Font != "" {
		cfg.PDFFontPath = fc.PDF.Font
	}
	if cfg.SectionOrder == "" && fc.Sections.Order != "" {
		cfg.SectionOrder = fc.Sections.Order
	}
	if cfg.UnicodeForm == "" && fc.Unicode != "" {
		cfg.UnicodeForm = fc.Unicode
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks required paths and enumerated options.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required (--in)")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required (--out)")
	}
	if _, err := hwpx.ParseSectionOrder(cfg.SectionOrder); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := parseUnicodeForm(cfg.UnicodeForm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(cfg.PDFFontPath) != "" && strings.TrimSpace(cfg.OutputPDFPath) == "" {
		return errors.New("config: pdf.font requires outPDF")
	}
	return nil
}
