package diff

import (
	"strconv"
	"strings"
	"unicode"
)

// Escape makes every non-printable rune of s visible as a Go escape
// sequence, so that output captured from a tested program cannot move the
// cursor, change colors or otherwise corrupt the surrounding report.
// Spaces and printable Unicode are left untouched.
func Escape(s string) string {
	if isPrintable(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || (unicode.IsPrint(r) && r != unicode.ReplacementChar) {
			b.WriteRune(r)
			continue
		}
		quoted := strconv.QuoteRuneToASCII(r)
		b.WriteString(quoted[1 : len(quoted)-1])
	}
	return b.String()
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r != ' ' && (!unicode.IsPrint(r) || r == unicode.ReplacementChar) {
			return false
		}
	}
	return true
}
