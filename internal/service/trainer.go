package service

import (
	"context"
	"fmt"
	"math/rand"

	"polyglot/internal/domain"
	"polyglot/internal/wordbook"
)

// Asker asks the user free-form and yes/no questions
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// Trainer lets the user check and correct translations of the current pair
type Trainer struct {
	db    *wordbook.Database
	asker Asker
	sink  wordbook.Sink
}

// NewTrainer creates a new trainer
func NewTrainer(db *wordbook.Database, asker Asker, sink wordbook.Sink) *Trainer {
	return &Trainer{
		db:    db,
		asker: asker,
		sink:  sink,
	}
}

// RandomWord returns a random word of the current pair
func (t *Trainer) RandomWord() (string, error) {
	wb, err := t.db.Current()
	if err != nil {
		return "", err
	}

	entries := wb.Entries()
	if len(entries) == 0 {
		return "", fmt.Errorf("%s has no words: %w", wb.Pair(), domain.ErrNotFound)
	}
	return entries[rand.Intn(len(entries))].Word, nil
}

// Review shows the stored translation of a word and asks the user to confirm it.
// A missing or rejected translation is replaced by the one the user enters.
func (t *Trainer) Review(ctx context.Context, word string) error {
	pair := t.db.CurrentPair()
	word = wordbook.Normalize(word)

	current := t.db.Translate(pair, word, domain.Silent)
	if current == "" {
		t.sink.Warn(fmt.Sprintf("Translation for %q not found, please add one", word))
		translation, err := t.asker.Ask(ctx, fmt.Sprintf("Translation of %q", word))
		if err != nil {
			return err
		}
		return t.db.AddOrUpdate(pair, word, translation)
	}

	ok, err := t.asker.Confirm(ctx, fmt.Sprintf("Translation of %q is %q. Is it correct?", word, current))
	if err != nil {
		return err
	}
	if ok {
		t.sink.Info("Thanks for the confirmation!")
		return nil
	}

	translation, err := t.asker.Ask(ctx, fmt.Sprintf("Correct translation of %q", word))
	if err != nil {
		return err
	}
	return t.db.AddOrUpdate(pair, word, translation)
}
