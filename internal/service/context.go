package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"polyglot/internal/domain"
	"polyglot/internal/wordbook"
)

// Prompter asks the user to pick one of several translations
type Prompter interface {
	ChooseOne(ctx context.Context, candidates []string, word string) (string, error)
}

// ContextTranslator translates phrases and lets the user resolve ambiguous words
type ContextTranslator struct {
	db       *wordbook.Database
	prompter Prompter
	sink     wordbook.Sink
}

// NewContextTranslator creates a new disambiguating translator
func NewContextTranslator(db *wordbook.Database, prompter Prompter, sink wordbook.Sink) *ContextTranslator {
	return &ContextTranslator{
		db:       db,
		prompter: prompter,
		sink:     sink,
	}
}

// Translate translates the phrase with the current wordbook.
// A phrase without a single known word yields an empty result and a warning.
// A failed prompt aborts the whole translation.
func (t *ContextTranslator) Translate(ctx context.Context, phrase string) (string, error) {
	wb, err := t.db.Current()
	if err != nil {
		return "", err
	}

	words := wordbook.Tokenize(phrase)
	if !slices.ContainsFunc(words, wb.Contains) {
		t.sink.Warn("No recognizable words in the phrase")
		return "", nil
	}

	translated := make([]string, 0, len(words))
	for _, word := range words {
		candidates := wb.MultiplyTranslate(word)

		switch len(candidates) {
		case 0:
			translated = append(translated, domain.NotFoundMarker)
		case 1:
			translated = append(translated, candidates[0])
		default:
			choice, err := t.prompter.ChooseOne(ctx, candidates, word)
			if err != nil {
				return "", fmt.Errorf("failed to choose translation for %q: %w", word, err)
			}
			if !slices.Contains(candidates, choice) {
				return "", fmt.Errorf("%q is not a translation of %q: %w", choice, word, domain.ErrInvalidEntry)
			}
			translated = append(translated, choice)
		}
	}

	return strings.Join(translated, " "), nil
}
