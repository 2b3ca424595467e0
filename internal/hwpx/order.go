package hwpx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SectionOrder selects how section entry names are ordered.
type SectionOrder int

const (
	// OrderLexical sorts names byte-wise; section10.xml precedes section2.xml.
	OrderLexical SectionOrder = iota
	// OrderNatural compares embedded digit runs numerically.
	OrderNatural
)

func (o SectionOrder) String() string {
	switch o {
	case OrderNatural:
		return "natural"
	default:
		return "lexical"
	}
}

// ParseSectionOrder maps "lexical" (or "") and "natural" to a SectionOrder.
func ParseSectionOrder(s string) (SectionOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lexical":
		return OrderLexical, nil
	case "natural":
		return OrderNatural, nil
	}
	return OrderLexical, fmt.Errorf("unknown section order %q (want lexical or natural)", s)
}

func sortNames(names []string, order SectionOrder) {
	if order == OrderNatural {
		sort.SliceStable(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })
		return
	}
	sort.Strings(names)
}

func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		da, db := isDigit(a[0]), isDigit(b[0])
		switch {
		case da && db:
			na, ra := leadingDigits(a)
			nb, rb := leadingDigits(b)
			if c := compareNumeric(na, nb); c != 0 {
				return c < 0
			}
			a, b = ra, rb
		case a[0] != b[0]:
			return a[0] < b[0]
		default:
			a, b = a[1:], b[1:]
		}
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func leadingDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// compareNumeric compares digit strings of any length without overflow.
func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) - len(tb)
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	// equal value: fewer leading zeros first, for a total order
	return len(a) - len(b)
}

// sectionIndex reports the number in "Contents/sectionN.xml", or -1.
func sectionIndex(name string) int {
	s := strings.TrimSuffix(strings.TrimPrefix(name, sectionPrefix), sectionSuffix)
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
