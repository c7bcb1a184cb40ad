package naming

import (
	"regexp"
	"strings"
)

var markupTag = regexp.MustCompile(`<[^<>]*>`)

// StripMarkup removes HTML-like tags from s and trims surrounding space.
func StripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(markupTag.ReplaceAllString(s, ""))
}

// StripPrefix drops a CURIE namespace prefix: "schema:Text" -> "Text".
// Absolute URIs and bare names are returned unchanged.
func StripPrefix(s string) string {
	if strings.Contains(s, "://") {
		return s
	}

	_, suffix, found := strings.Cut(s, ":")
	if !found || suffix == "" {
		return s
	}

	return suffix
}
