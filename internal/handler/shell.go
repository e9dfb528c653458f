package handler

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"polyglot/internal/domain"
)

const helpText = `Commands:
  translate <text>        translate a word or phrase (plain text does the same)
  advanced <text>         translate using word forms
  context <text>          translate choosing between ambiguous translations
  add [word translation]  add or update a translation
  remove <word>           remove a word
  pairs                   list language pairs
  pair <name>             switch the language pair
  show                    show the current dictionary
  history                 show the history of the current dictionary
  review [word]           check a translation
  save                    save dictionaries
  quit                    save and exit`

// cleanInput strips surrounding spaces and unprintable characters
func cleanInput(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(line))
}

// HandleLine runs one line of shell input.
// It returns false when the session should end.
func (h *Handler) HandleLine(ctx context.Context, line string) bool {
	text := cleanInput(line)
	state := h.GetState()

	switch state.State {
	case domain.StateWaitingWord:
		if text == "" || strings.EqualFold(text, "cancel") {
			h.ResetState()
			fmt.Fprintln(h.out, "Cancelled")
			return true
		}

		h.SetState(&domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})
		fmt.Fprintln(h.out, "Enter the translation")
		return true

	case domain.StateWaitingTranslation:
		word := state.CurrentWord
		h.ResetState()
		if text == "" || strings.EqualFold(text, "cancel") {
			fmt.Fprintln(h.out, "Cancelled")
			return true
		}
		if err := h.Add(word, text); err != nil {
			return h.fail("add", err)
		}
		return true
	}

	if text == "" {
		return true
	}

	cmd, args, _ := strings.Cut(text, " ")
	args = strings.TrimSpace(args)

	var err error
	switch strings.ToLower(cmd) {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprintln(h.out, helpText)
	case "translate", "t":
		h.Translate(args)
	case "advanced", "a":
		h.Advanced(args)
	case "context", "c":
		err = h.Context(ctx, args)
	case "add":
		if args == "" {
			h.SetState(&domain.StateData{State: domain.StateWaitingWord})
			fmt.Fprintln(h.out, "Enter the word (or cancel)")
			return true
		}
		word, translation, ok := strings.Cut(args, " ")
		if !ok {
			fmt.Fprintln(h.out, "Usage: add <word> <translation>")
			return true
		}
		err = h.Add(word, strings.TrimSpace(translation))
	case "remove", "rm":
		err = h.Remove(args)
	case "pairs":
		h.Pairs()
	case "pair", "use":
		err = h.UsePair(args)
	case "show", "ls":
		err = h.Show()
	case "history":
		err = h.History()
	case "review":
		err = h.Review(ctx, args)
	case "save":
		err = h.Save()
	default:
		h.Translate(text)
	}

	if err != nil {
		return h.fail(strings.ToLower(cmd), err)
	}
	return true
}
