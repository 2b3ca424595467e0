package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/hwpxtext/internal/app"
)

// exitFailure is returned for every failure, including usage errors.
const exitFailure = 2

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain runs the CLI and returns the process exit code. Failures are
// reported as a single "[ERROR] <message>" line on stderr.
func realMain(args []string, stdout, stderr io.Writer) int {
	cfg, configPath, showVersion, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return exitFailure
	}
	if showVersion {
		fmt.Fprintf(stdout, "hwpxtext %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return 0
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "[ERROR] load config: %v\n", err)
			return exitFailure
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if err := run(cfg); err != nil {
		log.Debug().Err(err).Msg("run failed")
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return exitFailure
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cfg app.Config, configPath string, showVersion bool, err error) {
	fs := flag.NewFlagSet("hwpxtext", flag.ContinueOnError)
	// flag's own diagnostics are muted; realMain prints the single error line
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.InputPath, "in", "", "Input .hwpx path (required)")
	fs.StringVar(&cfg.OutputPath, "out", "", "Output .txt path (required)")
	fs.StringVar(&configPath, "config", "", "Optional YAML or JSON config file; flags take precedence")
	fs.StringVar(&cfg.OutputPDFPath, "out.pdf", "", "Also render the text to this PDF path")
	fs.StringVar(&cfg.PDFFontPath, "pdf.font", "", "UTF-8 TrueType font for PDF output (needed for Hangul)")
	fs.StringVar(&cfg.ManifestPath, "manifest", "", "Write a JSON manifest to this path ('auto' = <out>.manifest.json)")
	fs.StringVar(&cfg.SectionOrder, "sections.order", "", "Section ordering: lexical (default) or natural")
	fs.StringVar(&cfg.UnicodeForm, "unicode", "", "Unicode normalization of the output: none (default), nfc or nfkc")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	err = fs.Parse(args)
	if err == flag.ErrHelp {
		fs.SetOutput(stderr)
		fs.Usage()
	}
	return cfg, configPath, showVersion, err
}

func run(cfg app.Config) error {
	a, err := app.New(cfg, nil)
	if err != nil {
		return err
	}
	return a.Run(context.Background())
}
