package render

import (
	"regexp"
	"strings"
	"unicode"
)

var wordBoundary = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler converts a field name into a human-friendly label. It
// splits on underscores, dashes and camelCase boundaries: "canonical_url"
// becomes "Canonical Url", "publishedAt" becomes "Published At".
func DefaultLabeler(name string) string {
	var out []string
	for _, chunk := range wordBoundary.Split(name, -1) {
		for _, word := range camelWords(chunk) {
			if word == "" {
				continue
			}
			lower := strings.ToLower(word)
			out = append(out, strings.ToUpper(lower[:1])+lower[1:])
		}
	}
	return strings.Join(out, " ")
}

func camelWords(chunk string) []string {
	runes := []rune(chunk)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if splitsBetween(runes[i-1], runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func splitsBetween(prev, cur rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	}
	return false
}
