// Package morph provides morphology analyzers for the morphology-assisted translator.
//
// Real morphological analysis is not implemented here. Identity leaves words as they are,
// Table looks word forms up in a hand-written list.
package morph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"polyglot/internal/domain"
	"polyglot/internal/wordbook"
)

// PluralTag marks a plural form in a table file
const PluralTag = "pl"

// Identity is an analyzer that knows no lemmas
type Identity struct{}

// Analyze returns an empty, singular analysis
func (Identity) Analyze(string) domain.Analysis {
	return domain.Analysis{}
}

// Table maps word forms to their lemmas
type Table struct {
	forms map[string]domain.Analysis
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{forms: make(map[string]domain.Analysis)}
}

// Add registers a word form
func (t *Table) Add(form, lemma string, plural bool) {
	t.forms[wordbook.Normalize(form)] = domain.Analysis{
		Lemma:  wordbook.Normalize(lemma),
		Plural: plural,
	}
}

// Len returns the number of known forms
func (t *Table) Len() int {
	return len(t.forms)
}

// Analyze looks the token up; unknown tokens get an empty analysis
func (t *Table) Analyze(token string) domain.Analysis {
	return t.forms[wordbook.Normalize(token)]
}

// ReadTable parses lines of "form:lemma" or "form:lemma:pl".
// Blank lines and lines starting with '#' are ignored.
func ReadTable(r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		parts := strings.Split(text, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, &domain.MalformedRecordError{File: "forms", Line: line, Text: text}
		}

		form, lemma := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if form == "" || lemma == "" {
			return nil, &domain.MalformedRecordError{File: "forms", Line: line, Text: text}
		}

		plural := false
		if len(parts) == 3 {
			if tag := strings.TrimSpace(parts[2]); tag != PluralTag {
				return nil, fmt.Errorf("line %d: unknown tag %q: %w", line, tag, domain.ErrMalformedRecord)
			}
			plural = true
		}

		t.Add(form, lemma, plural)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTable reads a table file
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open forms table: %w", err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}
