package wordbook

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"polyglot/internal/domain"
)

// Sink receives user-facing outcomes of dictionary operations
type Sink interface {
	Warn(msg string)
	Info(msg string)
}

type nopSink struct{}

func (nopSink) Warn(string) {}
func (nopSink) Info(string) {}

// Wordbook is the dictionary of one language pair.
// Each word keeps at most two translations; the first one is the primary.
// Keys remember insertion order, which drives reverse lookup.
type Wordbook struct {
	pair    domain.LanguagePair
	words   map[string][]string
	order   []string
	history []string
	sink    Sink
}

// New creates an empty wordbook
func New(pair domain.LanguagePair, sink Sink) *Wordbook {
	if sink == nil {
		sink = nopSink{}
	}
	return &Wordbook{
		pair:  pair,
		words: make(map[string][]string),
		sink:  sink,
	}
}

// FromEntries creates a wordbook from loaded entries without touching history.
// Repeated words are merged and translations beyond the first two distinct ones are dropped.
func FromEntries(pair domain.LanguagePair, entries []domain.Entry, sink Sink) *Wordbook {
	w := New(pair, sink)
	for _, e := range entries {
		word := Normalize(e.Word)
		if word == "" {
			continue
		}
		cands, exists := w.words[word]
		if !exists {
			w.order = append(w.order, word)
		}
		for _, t := range e.Translations {
			t = Normalize(t)
			if t == "" || slices.Contains(cands, t) || len(cands) >= domain.MaxCandidates {
				continue
			}
			cands = append(cands, t)
		}
		w.words[word] = cands
	}
	return w
}

// Pair returns the language pair of the wordbook
func (w *Wordbook) Pair() domain.LanguagePair {
	return w.pair
}

// Len returns the number of words
func (w *Wordbook) Len() int {
	return len(w.order)
}

// Entries returns a copy of all entries in insertion order
func (w *Wordbook) Entries() []domain.Entry {
	entries := make([]domain.Entry, 0, len(w.order))
	for _, word := range w.order {
		entries = append(entries, domain.Entry{
			Word:         word,
			Translations: slices.Clone(w.words[word]),
		})
	}
	return entries
}

// History returns a copy of the lookup and mutation log
func (w *Wordbook) History() []string {
	return slices.Clone(w.history)
}

// Contains reports whether the word is a key or one of the stored translations
func (w *Wordbook) Contains(word string) bool {
	word = Normalize(word)
	if _, ok := w.words[word]; ok {
		return true
	}
	_, ok := w.reverse(word)
	return ok
}

// TranslateWord resolves a single word.
// A key returns its translation, two candidates are rendered as "|a/b|".
// A stored translation returns its key. On a miss it returns an empty string.
func (w *Wordbook) TranslateWord(token string, policy domain.MissPolicy) string {
	word := Normalize(token)

	if cands, ok := w.words[word]; ok {
		result := render(cands)
		w.record("TRANSLATED %s: %s", word, result)
		return result
	}

	if key, ok := w.reverse(word); ok {
		w.record("REVERSE TRANSLATED %s: %s", word, key)
		return key
	}

	w.record("%s: TRANSLATION FAILED", word)
	if policy != domain.Silent {
		w.sink.Warn(fmt.Sprintf("Translation for %q not found in %s", word, w.pair))
	}
	return ""
}

// TranslatePhrase translates a phrase word by word, keeping word order.
// Inside a multi-word phrase an unknown word is rendered as the not-found marker.
func (w *Wordbook) TranslatePhrase(phrase string, policy domain.MissPolicy) string {
	phrase = Normalize(phrase)
	if !strings.ContainsFunc(phrase, unicode.IsSpace) {
		return w.TranslateWord(phrase, policy)
	}

	words := strings.Fields(phrase)
	translated := make([]string, 0, len(words))
	for _, word := range words {
		t := w.TranslateWord(word, policy)
		if t == "" {
			t = domain.NotFoundMarker
		}
		translated = append(translated, t)
	}
	return strings.Join(translated, " ")
}

// MultiplyTranslate returns every stored translation of the word without collapsing them.
// For a stored translation it returns its key.
func (w *Wordbook) MultiplyTranslate(word string) []string {
	word = Normalize(word)
	if cands, ok := w.words[word]; ok {
		return slices.Clone(cands)
	}
	if key, ok := w.reverse(word); ok {
		w.record("REVERSE TRANSLATED %s: %s", word, key)
		return []string{key}
	}
	return nil
}

// AddOrUpdate adds a translation for the word.
// When the word already has two translations the primary one is replaced.
func (w *Wordbook) AddOrUpdate(word, translation string) error {
	word = Normalize(word)
	translation = Normalize(translation)
	if err := validate(word, translation); err != nil {
		w.record("ADD/UPDATE %s: REJECTED", word)
		return err
	}

	w.record("ADD/UPDATE %s: %s", word, translation)

	cands, exists := w.words[word]
	switch {
	case !exists:
		w.order = append(w.order, word)
		w.words[word] = []string{translation}
	case slices.Contains(cands, translation):
	case len(cands) < domain.MaxCandidates:
		w.words[word] = append(cands, translation)
	default:
		cands[0] = translation
	}

	w.sink.Info(fmt.Sprintf("Word %q added/updated in %s", word, w.pair))
	return nil
}

// Remove deletes the word and reports whether it was present
func (w *Wordbook) Remove(word string) bool {
	word = Normalize(word)
	if _, ok := w.words[word]; !ok {
		w.record("REMOVE %s: NOT FOUND", word)
		w.sink.Warn(fmt.Sprintf("Word %q not found in %s", word, w.pair))
		return false
	}

	delete(w.words, word)
	if i := slices.Index(w.order, word); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	w.record("REMOVED %s", word)
	w.sink.Info(fmt.Sprintf("Word %q removed from %s", word, w.pair))
	return true
}

func (w *Wordbook) reverse(word string) (string, bool) {
	for _, key := range w.order {
		if slices.Contains(w.words[key], word) {
			return key, true
		}
	}
	return "", false
}

func (w *Wordbook) record(format string, args ...any) {
	w.history = append(w.history, fmt.Sprintf(format, args...))
}

func render(cands []string) string {
	if len(cands) > 1 {
		return "|" + strings.Join(cands, "/") + "|"
	}
	return strings.Join(cands, "/")
}

const lineBreaks = "\r\n"

// validate rejects entries that would not survive a save and reload
func validate(word, translation string) error {
	switch {
	case word == "":
		return fmt.Errorf("word is empty: %w", domain.ErrInvalidEntry)
	case translation == "":
		return fmt.Errorf("translation for %q is empty: %w", word, domain.ErrInvalidEntry)
	case strings.Contains(word, ":"):
		return fmt.Errorf("word %q contains ':': %w", word, domain.ErrInvalidEntry)
	case strings.ContainsAny(word, lineBreaks):
		return fmt.Errorf("word %q spans several lines: %w", word, domain.ErrInvalidEntry)
	case strings.Contains(translation, ","):
		return fmt.Errorf("translation %q contains ',': %w", translation, domain.ErrInvalidEntry)
	case strings.ContainsAny(translation, lineBreaks):
		return fmt.Errorf("translation %q spans several lines: %w", translation, domain.ErrInvalidEntry)
	}
	return nil
}
