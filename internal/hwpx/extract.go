package hwpx

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	sectionPrefix = "Contents/section"
	sectionSuffix = ".xml"
	fileExt       = ".hwpx"
)

// Section is the raw, pre-normalization text one section entry contributed.
type Section struct {
	Name string
	// Index is the N in Contents/sectionN.xml, or -1 when the name carries
	// no plain number.
	Index int
	Text  string
}

// Document is the result of extracting one archive.
type Document struct {
	Sections []Section
	Text     string
}

// Options tune extraction. The zero value matches Extract.
type Options struct {
	Order SectionOrder
}

// Extract returns the normalized text of the HWPX file at path.
func Extract(path string) (string, error) {
	doc, err := ExtractFile(path, Options{})
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

// ExtractFile validates path, opens it as a zip archive and extracts it.
func ExtractFile(path string, opts Options) (Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, notFound(path)
		}
		return Document{}, err
	}
	if !strings.EqualFold(filepath.Ext(path), fileExt) {
		return Document{}, invalidFormat("input must be a .hwpx file", nil)
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Document{}, invalidFormat("open archive", err)
	}
	defer zr.Close()
	return ExtractArchive(&zr.Reader, opts)
}

// ExtractArchive extracts all section entries of an open archive.
func ExtractArchive(zr *zip.Reader, opts Options) (Document, error) {
	names := SectionNames(zr, opts.Order)
	if len(names) == 0 {
		return Document{}, invalidFormat("no section XML found in HWPX (expected Contents/section*.xml)", nil)
	}
	files := make(map[string]*zip.File, len(zr.File))
	// last entry wins for duplicated names, as zip readers resolve them
	for _, f := range zr.File {
		files[f.Name] = f
	}

	doc := Document{Sections: make([]Section, 0, len(names))}
	var all strings.Builder
	for _, name := range names {
		text, err := readSection(files[name])
		if err != nil {
			return Document{}, err
		}
		doc.Sections = append(doc.Sections, Section{Name: name, Index: sectionIndex(name), Text: text})
		all.WriteString(text)
	}
	doc.Text = Normalize(all.String())
	return doc, nil
}

func readSection(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", &ParseError{Entry: f.Name, Err: err}
	}
	defer rc.Close()
	return SectionText(f.Name, rc)
}

// SectionNames lists entries named Contents/section*.xml in the given order.
func SectionNames(zr *zip.Reader, order SectionOrder) []string {
	var names []string
	seen := make(map[string]bool)
	for _, f := range zr.File {
		if seen[f.Name] {
			continue
		}
		if strings.HasPrefix(f.Name, sectionPrefix) && strings.HasSuffix(f.Name, sectionSuffix) {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}
	sortNames(names, order)
	return names
}

// Extractor turns an input path into a Document.
type Extractor interface {
	Extract(path string) (Document, error)
}

// ArchiveExtractor is the Extractor backed by ExtractFile.
type ArchiveExtractor struct {
	Options Options
}

func (e ArchiveExtractor) Extract(path string) (Document, error) {
	return ExtractFile(path, e.Options)
}
