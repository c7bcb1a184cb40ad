package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first letter of s. The case of the remaining
// characters is preserved, so "edamOperation" becomes "EdamOperation".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// Label derives a human-readable label from a property name.
// Examples:
//   - "name" -> "Name"
//   - "softwareVersion" -> "Software Version"
//   - "isPartOf" -> "Is Part Of"
//   - "URL" -> "Url"
func Label(name string) string {
	// A Caser keeps state between calls and must not be shared.
	return cases.Title(language.Und).String(splitCamelCase(name))
}

// splitCamelCase inserts a space at every lower-to-upper letter boundary.
// Runs of capitals are left intact: "XMLParser" has no such boundary.
func splitCamelCase(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder

	b.Grow(len(s) + 4)

	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 && unicode.IsLower(prev) && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}

		b.WriteRune(r)
		prev = r
	}

	return b.String()
}
