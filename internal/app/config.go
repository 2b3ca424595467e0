package app

// Config holds runtime configuration for one extraction run.
type Config struct {
	InputPath  string
	OutputPath string

	// Optional sidecar outputs
	OutputPDFPath string
	PDFFontPath   string
	ManifestPath  string

	// Extraction
	SectionOrder string
	UnicodeForm  string

	Verbose bool
}
