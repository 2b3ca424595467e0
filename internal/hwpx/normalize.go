package hwpx

import (
	"regexp"
	"strings"
)

var (
	blankRunRe = regexp.MustCompile(`\n{3,}`)
	spaceRunRe = regexp.MustCompile(`[ \t]{3,}`)
)

// Normalize unifies line endings, caps blank-line runs at one empty line,
// folds runs of three or more spaces/tabs into two spaces, and trims the
// result to end in exactly one newline. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	s = spaceRunRe.ReplaceAllString(s, "  ")
	return strings.TrimSpace(s) + "\n"
}
