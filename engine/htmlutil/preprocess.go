package htmlutil

import "strings"

// Preprocess normalizes line endings and whitespace exactly as spec.md
// §4.2 requires: \r\n and lone \r become \n, form-feeds are stripped, and
// each tab becomes four spaces.
//
// Preprocess is idempotent: Preprocess(Preprocess(s)) == Preprocess(s),
// since none of its substitutions can introduce a pattern another
// substitution still needs to fire on.
func Preprocess(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\f", "")
	s = strings.ReplaceAll(s, "\t", "    ")
	return s
}
