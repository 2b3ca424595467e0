package hwpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const xmlNamespaceURL = "http://www.w3.org/XML/1998/namespace"

// nsScope tracks the namespace URIs declared on open elements. The decoder
// resolves bound prefixes to URIs and leaves unbound ones as the bare prefix,
// so a name whose space is not an in-scope URI uses an undeclared prefix.
type nsScope struct {
	uris   map[string]int
	frames [][]string
}

func (s *nsScope) push(attrs []xml.Attr) {
	if s.uris == nil {
		s.uris = map[string]int{xmlNamespaceURL: 1}
	}
	var frame []string
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			s.uris[a.Value]++
			frame = append(frame, a.Value)
		}
	}
	s.frames = append(s.frames, frame)
}

func (s *nsScope) pop() {
	if len(s.frames) == 0 {
		return
	}
	for _, uri := range s.frames[len(s.frames)-1] {
		if s.uris[uri]--; s.uris[uri] == 0 {
			delete(s.uris, uri)
		}
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// check reports an element or attribute name with an undeclared prefix.
func (s *nsScope) check(t xml.StartElement) error {
	if t.Name.Space != "" && s.uris[t.Name.Space] == 0 {
		return fmt.Errorf("unbound prefix %q on element %q", t.Name.Space, t.Name.Local)
	}
	for _, a := range t.Attr {
		if a.Name.Space == "" || a.Name.Space == "xmlns" {
			continue
		}
		if s.uris[a.Name.Space] == 0 {
			return fmt.Errorf("unbound prefix %q on attribute %q", a.Name.Space, a.Name.Local)
		}
	}
	return nil
}

// localName strips a namespace URI ("{uri}name") or prefix ("ns:name").
func localName(tag string) string {
	if i := strings.LastIndexAny(tag, "}:"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// SectionText walks one section XML stream in document order and returns the
// raw text fragment it contributes, including the trailing section separator.
// The entry name is only used to label a *ParseError.
func SectionText(name string, r io.Reader) (string, error) {
	var b strings.Builder
	if err := collectSection(&b, r); err != nil {
		return "", &ParseError{Entry: name, Err: err}
	}
	b.WriteString("\n")
	return b.String(), nil
}

func collectSection(b *strings.Builder, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	// Sections declaring a legacy encoding (e.g. EUC-KR) are transcoded.
	dec.CharsetReader = charset.NewReaderLabel

	var (
		depth    int
		seenRoot bool
		// capturing is set while inside a text run before its first child;
		// only that leading text is emitted.
		capturing bool
		run       strings.Builder
		ns        nsScope
	)
	flush := func() {
		if capturing {
			if run.Len() > 0 {
				b.WriteString(run.String())
			}
			run.Reset()
			capturing = false
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			flush()
			if depth == 0 && seenRoot {
				return errors.New("junk after document element")
			}
			seenRoot = true
			depth++
			ns.push(t.Attr)
			if err := ns.check(t); err != nil {
				return err
			}
			switch localName(t.Name.Local) {
			case "p", "para", "paragraph":
				b.WriteString("\n")
			case "lineBreak", "br":
				b.WriteString("\n")
			case "tab":
				b.WriteString("\t")
			case "t", "text":
				capturing = true
			}
		case xml.EndElement:
			flush()
			depth--
			ns.pop()
		case xml.CharData:
			if depth == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return errors.New("character data outside document element")
				}
				continue
			}
			if capturing {
				run.Write(t)
			}
		}
	}
	if !seenRoot {
		return errors.New("no element found")
	}
	return nil
}
