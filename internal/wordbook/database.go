package wordbook

import (
	"fmt"
	"slices"
	"strings"

	"polyglot/internal/domain"
)

// Shelf is the ordered collection of wordbooks behind a Database.
// Databases created with Fork share one Shelf, so a mutation through any of them is seen by all.
type Shelf struct {
	books []*Wordbook
}

// NewShelf creates a shelf, rejecting repeated language pairs
func NewShelf(books ...*Wordbook) (*Shelf, error) {
	s := &Shelf{}
	for i, wb := range books {
		if wb == nil {
			return nil, fmt.Errorf("wordbook %d is nil: %w", i, domain.ErrInvalidEntry)
		}
		if s.find(wb.Pair()) != nil {
			return nil, fmt.Errorf("%s: %w", wb.Pair(), domain.ErrDuplicatePair)
		}
		s.books = append(s.books, wb)
	}
	return s, nil
}

// Len returns the number of wordbooks
func (s *Shelf) Len() int {
	if s == nil {
		return 0
	}
	return len(s.books)
}

// Pairs returns language pairs in load order
func (s *Shelf) Pairs() []domain.LanguagePair {
	if s == nil {
		return nil
	}
	pairs := make([]domain.LanguagePair, 0, len(s.books))
	for _, wb := range s.books {
		pairs = append(pairs, wb.Pair())
	}
	return pairs
}

func (s *Shelf) find(pair domain.LanguagePair) *Wordbook {
	if s == nil {
		return nil
	}
	for _, wb := range s.books {
		if wb.Pair() == pair {
			return wb
		}
	}
	return nil
}

// Database dispatches translations and edits to the wordbook of a language pair
// and tracks which pair is currently active.
type Database struct {
	shelf   *Shelf
	current domain.LanguagePair
	sink    Sink
}

// NewDatabase creates a database over the given wordbooks.
// An empty or unknown current pair falls back to the first wordbook.
func NewDatabase(books []*Wordbook, current domain.LanguagePair, sink Sink) (*Database, error) {
	if sink == nil {
		sink = nopSink{}
	}

	shelf, err := NewShelf(books...)
	if err != nil {
		return nil, err
	}

	d := &Database{shelf: shelf, current: current, sink: sink}
	if shelf.Len() > 0 && shelf.find(current) == nil {
		if current != "" {
			sink.Warn(fmt.Sprintf("Language pair %q not found, using %s", current, books[0].Pair()))
		}
		d.current = books[0].Pair()
	}
	return d, nil
}

// Fork returns a database with another current pair over the same Shelf.
// The pair is not validated; Current reports a stale pair as ErrInvalidState.
func (d *Database) Fork(pair domain.LanguagePair) *Database {
	return &Database{shelf: d.shelf, current: pair, sink: d.sink}
}

// Shelf returns the shared wordbook collection
func (d *Database) Shelf() *Shelf {
	return d.shelf
}

// WithAppendedWordbook returns a new database that also holds wb.
// The receiver keeps its own collection.
func (d *Database) WithAppendedWordbook(wb *Wordbook) (*Database, error) {
	if wb == nil {
		return nil, fmt.Errorf("wordbook is nil: %w", domain.ErrInvalidEntry)
	}
	if d.shelf.find(wb.Pair()) != nil {
		return nil, fmt.Errorf("%s: %w", wb.Pair(), domain.ErrDuplicatePair)
	}

	var books []*Wordbook
	if d.shelf != nil {
		books = slices.Clone(d.shelf.books)
	}

	current := d.current
	if d.shelf.Len() == 0 {
		current = wb.Pair()
	}

	return &Database{
		shelf:   &Shelf{books: append(books, wb)},
		current: current,
		sink:    d.sink,
	}, nil
}

// CurrentPair returns the active language pair
func (d *Database) CurrentPair() domain.LanguagePair {
	return d.current
}

// AllPairs returns every loaded language pair in load order
func (d *Database) AllPairs() []domain.LanguagePair {
	return d.shelf.Pairs()
}

// Wordbook returns the wordbook of a pair
func (d *Database) Wordbook(pair domain.LanguagePair) (*Wordbook, error) {
	wb := d.shelf.find(pair)
	if wb == nil {
		return nil, fmt.Errorf("language pair %q: %w", pair, domain.ErrNotFound)
	}
	return wb, nil
}

// Current returns the wordbook of the active pair
func (d *Database) Current() (*Wordbook, error) {
	if d.shelf.Len() == 0 {
		return nil, fmt.Errorf("no wordbooks loaded: %w", domain.ErrNotFound)
	}
	wb := d.shelf.find(d.current)
	if wb == nil {
		return nil, fmt.Errorf("current pair %q is not loaded: %w", d.current, domain.ErrInvalidState)
	}
	return wb, nil
}

// ChangePair switches the active pair; an unknown pair leaves it unchanged
func (d *Database) ChangePair(pair domain.LanguagePair) error {
	if d.shelf.find(pair) == nil {
		d.warn(fmt.Sprintf("Language pair %q not found", pair))
		return fmt.Errorf("language pair %q: %w", pair, domain.ErrNotFound)
	}
	d.current = pair
	return nil
}

// Translate translates a word or phrase with the wordbook of the pair.
// It returns an empty string when the pair is unknown or the text is blank.
func (d *Database) Translate(pair domain.LanguagePair, text string, policy domain.MissPolicy) string {
	wb := d.shelf.find(pair)
	if wb == nil {
		d.report(policy, fmt.Sprintf("Language pair %q not found", pair))
		return ""
	}
	if strings.TrimSpace(text) == "" {
		d.report(policy, "Nothing to translate")
		return ""
	}
	return wb.TranslatePhrase(text, policy)
}

// AddOrUpdate adds or updates a translation in the wordbook of the pair
func (d *Database) AddOrUpdate(pair domain.LanguagePair, word, translation string) error {
	wb, err := d.lookup(pair)
	if err != nil {
		return err
	}
	return wb.AddOrUpdate(word, translation)
}

// RemoveWord removes a word from the wordbook of the pair
func (d *Database) RemoveWord(pair domain.LanguagePair, word string) error {
	wb, err := d.lookup(pair)
	if err != nil {
		return err
	}
	if !wb.Remove(word) {
		return fmt.Errorf("word %q: %w", Normalize(word), domain.ErrNotFound)
	}
	return nil
}

// History returns the log of the wordbook of the pair
func (d *Database) History(pair domain.LanguagePair) ([]string, error) {
	wb, err := d.Wordbook(pair)
	if err != nil {
		return nil, err
	}
	return wb.History(), nil
}

func (d *Database) lookup(pair domain.LanguagePair) (*Wordbook, error) {
	wb, err := d.Wordbook(pair)
	if err != nil {
		d.warn(fmt.Sprintf("Language pair %q not found", pair))
		return nil, err
	}
	return wb, nil
}

func (d *Database) report(policy domain.MissPolicy, msg string) {
	if policy != domain.Silent {
		d.warn(msg)
	}
}

func (d *Database) warn(msg string) {
	if d.sink != nil {
		d.sink.Warn(msg)
	}
}
