package wordbook

import "polyglot/internal/domain"

// DefaultPair is active when nothing else is configured
const DefaultPair domain.LanguagePair = "English-Russian"

// SampleWordbooks returns the built-in seed dictionaries
func SampleWordbooks(sink Sink) []*Wordbook {
	return []*Wordbook{
		FromEntries(DefaultPair, []domain.Entry{
			{Word: "hello", Translations: []string{"привет"}},
			{Word: "world", Translations: []string{"мир"}},
			{Word: "cat", Translations: []string{"кот"}},
		}, sink),
		FromEntries("English-French", []domain.Entry{
			{Word: "hello", Translations: []string{"bonjour"}},
			{Word: "world", Translations: []string{"monde"}},
			{Word: "cat", Translations: []string{"chat"}},
		}, sink),
	}
}

// SampleDatabase returns a database over the seed dictionaries with DefaultPair active
func SampleDatabase(sink Sink) *Database {
	// seed pairs are distinct, NewDatabase cannot fail here
	db, _ := NewDatabase(SampleWordbooks(sink), DefaultPair, sink)
	return db
}
