package title

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Display produces a human-facing title from a raw name: punctuation folded
// to spaces, release tags dropped, words title-cased. Falls back to
// "Unknown" when nothing usable remains.
func Display(rawName string) string {
	normalized := Normalize(rawName)
	source := normalized.Title
	if source == "" {
		source = StripExtension(rawName)
	}

	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range source {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	display := strings.TrimSpace(cleaned.String())
	if display == "" {
		return "Unknown"
	}
	return cases.Title(language.Und).String(display)
}
