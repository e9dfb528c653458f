package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"polyglot/internal/domain"
	"polyglot/internal/wordbook"

	"go.uber.org/zap"
)

// Extension of dictionary files
const Extension = ".txt"

// DictionaryRepo implements repository.DictionaryRepository on a directory of text files.
//
// A file holds one language pair: the first line is the pair, every following
// line is "word:translation1, translation2".
type DictionaryRepo struct {
	dir    string
	logger *zap.Logger
}

// NewDictionaryRepo creates a new dictionary repository
func NewDictionaryRepo(dir string, logger *zap.Logger) *DictionaryRepo {
	return &DictionaryRepo{dir: dir, logger: logger}
}

// Dir returns the dictionary directory
func (r *DictionaryRepo) Dir() string {
	return r.dir
}

// LoadAll reads every dictionary file in the directory, ordered by file name.
// A file that cannot be read is logged and skipped; a missing directory yields no dictionaries.
func (r *DictionaryRepo) LoadAll() ([]domain.Dictionary, error) {
	files, err := os.ReadDir(r.dir)
	if errors.Is(err, os.ErrNotExist) {
		r.logger.Info("Dictionary directory does not exist", zap.String("dir", r.dir))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary directory: %w", err)
	}

	var dicts []domain.Dictionary
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != Extension {
			continue
		}

		path := filepath.Join(r.dir, f.Name())
		dict, err := r.loadFile(path)
		if err != nil {
			r.logger.Warn("Failed to load dictionary file",
				zap.String("file", path),
				zap.Error(err),
			)
			continue
		}

		r.logger.Info("Dictionary loaded",
			zap.String("pair", string(dict.Pair)),
			zap.Int("words", len(dict.Entries)),
		)
		dicts = append(dicts, dict)
	}

	return dicts, nil
}

func (r *DictionaryRepo) loadFile(path string) (domain.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dictionary{}, err
	}
	defer f.Close()

	return r.Decode(f, filepath.Base(path))
}

// Decode parses a dictionary. Malformed lines are logged and skipped,
// repeated words are merged and at most two translations per word are kept.
func (r *DictionaryRepo) Decode(reader io.Reader, source string) (domain.Dictionary, error) {
	scanner := bufio.NewScanner(reader)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return domain.Dictionary{}, err
		}
		return domain.Dictionary{}, fmt.Errorf("%s: empty dictionary file", source)
	}

	pair := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
	if pair == "" {
		return domain.Dictionary{}, fmt.Errorf("%s: missing language pair", source)
	}

	dict := domain.Dictionary{Pair: domain.LanguagePair(pair)}
	index := make(map[string]int)

	for line := 2; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		entry, err := parseLine(text)
		if err != nil {
			r.logger.Warn("Skipping dictionary line",
				zap.Error(&domain.MalformedRecordError{File: source, Line: line, Text: text}),
			)
			continue
		}

		i, seen := index[entry.Word]
		if !seen {
			index[entry.Word] = len(dict.Entries)
			dict.Entries = append(dict.Entries, domain.Entry{Word: entry.Word})
			i = len(dict.Entries) - 1
		}

		for _, t := range entry.Translations {
			existing := &dict.Entries[i]
			if slices.Contains(existing.Translations, t) {
				continue
			}
			if len(existing.Translations) >= domain.MaxCandidates {
				r.logger.Warn("Dropping extra translation",
					zap.String("file", source),
					zap.Int("line", line),
					zap.String("word", entry.Word),
					zap.String("translation", t),
				)
				continue
			}
			existing.Translations = append(existing.Translations, t)
		}
	}

	if err := scanner.Err(); err != nil {
		return domain.Dictionary{}, err
	}

	return dict, nil
}

func parseLine(line string) (domain.Entry, error) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return domain.Entry{}, domain.ErrMalformedRecord
	}

	word := wordbook.Normalize(key)
	if word == "" {
		return domain.Entry{}, domain.ErrMalformedRecord
	}

	var translations []string
	for _, t := range strings.Split(value, ",") {
		if t = wordbook.Normalize(t); t != "" {
			translations = append(translations, t)
		}
	}
	if len(translations) == 0 {
		return domain.Entry{}, domain.ErrMalformedRecord
	}

	return domain.Entry{Word: word, Translations: translations}, nil
}

// Save writes the dictionary to "<pair>.txt", replacing the previous file
func (r *DictionaryRepo) Save(dict domain.Dictionary) error {
	name := string(dict.Pair)
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("language pair %q cannot be used as a file name: %w", name, domain.ErrInvalidEntry)
	}
	// The pair line is read back trimmed.
	if name != strings.TrimSpace(name) || strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("language pair %q would not be read back unchanged: %w", name, domain.ErrInvalidEntry)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dictionary directory: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, dict); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dictionary %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write dictionary %s: %w", name, err)
	}

	path := filepath.Join(r.dir, name+Extension)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	r.logger.Info("Dictionary saved",
		zap.String("pair", name),
		zap.String("file", path),
		zap.Int("words", len(dict.Entries)),
	)
	return nil
}

// Encode writes a dictionary in the text format read by Decode
func Encode(w io.Writer, dict domain.Dictionary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, dict.Pair)
	for _, e := range dict.Entries {
		fmt.Fprintf(bw, "%s:%s\n", e.Word, strings.Join(e.Translations, ", "))
	}

	return bw.Flush()
}
