package sanitize

import "strings"

// unsafe lists the characters removed from free-text input: HTML markup
// delimiters plus quotes and semicolons. Removing (rather than escaping)
// keeps Clean idempotent.
const unsafe = `<>&"';`

// Clean removes unsafe characters from free-text input and trims surrounding
// whitespace. Total function: empty or absent input yields "". Removal runs
// before the trim so that whitespace exposed by a removed character is also
// trimmed, keeping Clean(Clean(s)) == Clean(s) for every s.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafe, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
