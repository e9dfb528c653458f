package service

import (
	"strings"

	"polyglot/internal/domain"
	"polyglot/internal/wordbook"
)

// Analyzer reduces a word form to its base form
type Analyzer interface {
	Analyze(token string) domain.Analysis
}

// MorphologyTranslator translates phrases through the base form of every word
type MorphologyTranslator struct {
	db       *wordbook.Database
	analyzer Analyzer
}

// NewMorphologyTranslator creates a new morphology-assisted translator
func NewMorphologyTranslator(db *wordbook.Database, analyzer Analyzer) *MorphologyTranslator {
	return &MorphologyTranslator{
		db:       db,
		analyzer: analyzer,
	}
}

// Translate looks up the lemma of every word in the current pair.
// Plural forms get the plural suffix back, unknown words become the not-found marker.
func (t *MorphologyTranslator) Translate(phrase string) string {
	words := wordbook.Tokenize(phrase)
	pair := t.db.CurrentPair()

	translated := make([]string, 0, len(words))
	for _, word := range words {
		analysis := t.analyzer.Analyze(word)

		base := word
		if analysis.HasLemma() {
			base = analysis.Lemma
		}

		result := t.db.Translate(pair, base, domain.Silent)
		switch {
		case result == "":
			result = domain.NotFoundMarker
		case analysis.Plural && !strings.HasSuffix(result, domain.PluralSuffix):
			result += domain.PluralSuffix
		}
		translated = append(translated, result)
	}

	return strings.Join(translated, " ")
}
