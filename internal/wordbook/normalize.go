package wordbook

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims and lowercases a word or phrase the way keys are stored
func Normalize(s string) string {
	// Casers keep state between calls, so each call gets its own.
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Tokenize normalizes a phrase and splits it into words
func Tokenize(phrase string) []string {
	return strings.Fields(Normalize(phrase))
}
