package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"polyglot/internal/wordbook"
)

var (
	yesAnswers = []string{"y", "yes", "д", "да"}
	noAnswers  = []string{"n", "no", "н", "нет"}
)

// Prompter asks questions on an output stream and reads answers line by line
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer

	// read in flight, left over from a canceled ReadLine
	pending chan scanResult
}

type scanResult struct {
	line string
	err  error
}

// NewPrompter creates a new prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints the prompt and returns the next trimmed line.
// It returns io.EOF when the input is exhausted and ctx.Err() when ctx is done first.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, prompt)
	if p.pending == nil {
		p.pending = make(chan scanResult, 1)
		go p.scan(p.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		return res.line, res.err
	}
}

func (p *Prompter) scan(results chan<- scanResult) {
	if p.scanner.Scan() {
		results <- scanResult{line: strings.TrimSpace(p.scanner.Text())}
		return
	}

	err := p.scanner.Err()
	if err == nil {
		err = io.EOF
	}
	results <- scanResult{err: err}
}

// ChooseOne lists the candidates and reads the choice by number or by text
func (p *Prompter) ChooseOne(ctx context.Context, candidates []string, word string) (string, error) {
	fmt.Fprintf(p.out, "Choose a translation for %q:\n", word)
	for i, c := range candidates {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c)
	}

	for {
		answer, err := p.ReadLine(ctx, "> ")
		if err != nil {
			return "", err
		}

		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1], nil
		}
		if i := slices.Index(candidates, wordbook.Normalize(answer)); i >= 0 {
			return candidates[i], nil
		}

		fmt.Fprintf(p.out, "Enter a number from 1 to %d\n", len(candidates))
	}
}

// Ask reads a non-empty answer
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	for {
		answer, err := p.ReadLine(ctx, question+": ")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// Confirm reads a yes or no answer
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := p.ReadLine(ctx, question+" [y/n]: ")
		if err != nil {
			return false, err
		}

		answer = strings.ToLower(answer)
		switch {
		case slices.Contains(yesAnswers, answer):
			return true, nil
		case slices.Contains(noAnswers, answer):
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n")
	}
}
