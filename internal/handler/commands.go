package handler

import (
	"context"
	"fmt"
	"strings"

	"polyglot/internal/domain"

	"go.uber.org/zap"
)

// Translate prints the dictionary translation of a word or phrase in the current pair
func (h *Handler) Translate(text string) {
	if result := h.db.Translate(h.db.CurrentPair(), text, domain.Report); result != "" {
		fmt.Fprintln(h.out, result)
	}
}

// Advanced prints the morphology-assisted translation
func (h *Handler) Advanced(text string) {
	fmt.Fprintln(h.out, h.morphology.Translate(text))
}

// Context prints the translation with ambiguous words resolved by the user
func (h *Handler) Context(ctx context.Context, text string) error {
	result, err := h.contextual.Translate(ctx, text)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprintln(h.out, result)
	}
	return nil
}

// Add adds or updates a translation in the current pair
func (h *Handler) Add(word, translation string) error {
	pair := h.db.CurrentPair()
	if err := h.db.AddOrUpdate(pair, word, translation); err != nil {
		return err
	}

	h.logger.Info("Word saved",
		zap.String("pair", string(pair)),
		zap.String("word", word),
		zap.String("translation", translation),
	)
	return nil
}

// Remove removes a word from the current pair
func (h *Handler) Remove(word string) error {
	pair := h.db.CurrentPair()
	if err := h.db.RemoveWord(pair, word); err != nil {
		return err
	}

	h.logger.Info("Word removed", zap.String("pair", string(pair)), zap.String("word", word))
	return nil
}

// Pairs lists loaded language pairs, marking the current one
func (h *Handler) Pairs() {
	pairs := h.db.AllPairs()
	if len(pairs) == 0 {
		fmt.Fprintln(h.out, "No dictionaries loaded")
		return
	}

	for _, pair := range pairs {
		marker := " "
		if pair == h.db.CurrentPair() {
			marker = "*"
		}
		fmt.Fprintf(h.out, "%s %s\n", marker, pair)
	}
}

// UsePair switches the current pair
func (h *Handler) UsePair(pair string) error {
	if err := h.db.ChangePair(domain.LanguagePair(strings.TrimSpace(pair))); err != nil {
		return err
	}
	fmt.Fprintf(h.out, "Current pair: %s\n", h.db.CurrentPair())
	return nil
}

// Show prints every entry of the current pair
func (h *Handler) Show() error {
	wb, err := h.db.Current()
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "%s (%d words)\n", wb.Pair(), wb.Len())
	for _, e := range wb.Entries() {
		fmt.Fprintf(h.out, "%s: %s\n", e.Word, strings.Join(e.Translations, ", "))
	}
	return nil
}

// History prints the lookup and edit log of the current pair
func (h *Handler) History() error {
	history, err := h.db.History(h.db.CurrentPair())
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Fprintln(h.out, "History is empty")
		return nil
	}
	for _, record := range history {
		fmt.Fprintln(h.out, record)
	}
	return nil
}

// Review checks a word with the user; an empty word picks a random one
func (h *Handler) Review(ctx context.Context, word string) error {
	if strings.TrimSpace(word) == "" {
		random, err := h.trainer.RandomWord()
		if err != nil {
			return err
		}
		word = random
	}
	return h.trainer.Review(ctx, word)
}

// Save writes all dictionaries
func (h *Handler) Save() error {
	if err := h.dictionaries.SaveAll(h.db); err != nil {
		return err
	}
	h.logger.Info("Dictionaries saved", zap.Int("count", len(h.db.AllPairs())))
	return nil
}
