package normalize

import (
	"fmt"
	"strings"
	"unicode"
)

// zero-width and BOM code points that creep into spreadsheet exports.
var invisibleRunes = map[rune]bool{
	'\ufeff': true, // BOM / zero-width no-break space
	'\u200b': true, // zero-width space
	'\u200c': true, // zero-width non-joiner
	'\u200d': true, // zero-width joiner
	'\u00ad': true, // soft hyphen
}

// Reference canonicalizes a free-text reference for storage and exact
// matching: invisible characters stripped, uppercased, all whitespace
// removed.
func Reference(v any) string {
	s := stringify(v)
	var b strings.Builder
	for _, r := range s {
		if invisibleRunes[r] || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Header canonicalizes a column header or narrative fragment for fuzzy
// comparison: lowercased, non-alphanumeric runs collapsed to single
// spaces, trimmed.
func Header(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// stringify renders a cell value for text processing. Nil becomes "".
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

// String exposes stringify for the row parsers.
func String(v any) string {
	return strings.TrimSpace(stringify(v))
}
