package app

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/hyperifyio/hwpxtext/internal/hwpx"
)

// parseUnicodeForm maps the --unicode option to a normalization form.
// A nil form means the text is written exactly as extracted.
func parseUnicodeForm(s string) (*norm.Form, error) {
	var f norm.Form
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return nil, nil
	case "nfc":
		f = norm.NFC
	case "nfkc":
		f = norm.NFKC
	default:
		return nil, fmt.Errorf("unknown unicode form %q (want none, nfc or nfkc)", s)
	}
	return &f, nil
}

// applyUnicodeForm recomposes text (e.g. Hangul jamo sequences) when a form
// is configured. Compatibility forms can turn ideographic spaces into ASCII
// spaces, so the result is normalized again.
func applyUnicodeForm(text, form string) (string, error) {
	f, err := parseUnicodeForm(form)
	if err != nil {
		return "", err
	}
	if f == nil {
		return text, nil
	}
	return hwpx.Normalize(f.String(text)), nil
}
