package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const pdfUTF8Family = "hwpxtext"

// writeSimplePDF renders extracted text to an A4 PDF, one paragraph per line
// of input, blank lines as vertical space. Tabs become four spaces.
//
// Core PDF fonts only cover cp1252, so Hangul needs fontPath pointing at a
// UTF-8 TrueType font; without it unsupported runes print as '?'.
func writeSimplePDF(text, outPath, fontPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	tr := func(s string) string { return s }
	if strings.TrimSpace(fontPath) != "" {
		pdf.AddUTF8Font(pdfUTF8Family, "", fontPath)
		family = pdfUTF8Family
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf font: %w", err)
	}
	pdf.SetFont(family, "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.ReplaceAll(scanner.Text(), "\t", "    ")
		if strings.TrimSpace(line) == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("pdf scan: %w", err)
	}

	return pdf.OutputFileAndClose(outPath)
}
