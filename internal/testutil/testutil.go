package testutil

import (
	"polyglot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// RecordingSink collects warnings and info messages
type RecordingSink struct {
	Warnings []string
	Infos    []string
}

func (s *RecordingSink) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

func (s *RecordingSink) Info(msg string) {
	s.Infos = append(s.Infos, msg)
}

// NewTestEntry creates a test entry
func NewTestEntry(word string, translations ...string) domain.Entry {
	return domain.Entry{
		Word:         word,
		Translations: translations,
	}
}

// NewTestEntries creates the English-Russian entries most tests start from
func NewTestEntries() []domain.Entry {
	return []domain.Entry{
		NewTestEntry("hello", "привет"),
		NewTestEntry("world", "мир"),
		NewTestEntry("cat", "кот", "котэ"),
	}
}

// NewTestDictionary creates a dictionary of a pair
func NewTestDictionary(pair domain.LanguagePair, entries ...domain.Entry) domain.Dictionary {
	return domain.Dictionary{
		Pair:    pair,
		Entries: entries,
	}
}
