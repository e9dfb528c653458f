package service

import (
	"errors"
	"fmt"

	"polyglot/internal/domain"
	"polyglot/internal/repository"
	"polyglot/internal/wordbook"

	"go.uber.org/zap"
)

// DictionaryService loads and saves the dictionary database
type DictionaryService struct {
	repo   repository.DictionaryRepository
	sink   wordbook.Sink
	logger *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(repo repository.DictionaryRepository, sink wordbook.Sink, logger *zap.Logger) *DictionaryService {
	return &DictionaryService{
		repo:   repo,
		sink:   sink,
		logger: logger,
	}
}

// Load builds a database from stored dictionaries.
// When storage holds nothing and seed is set, the sample dictionaries are used instead.
func (s *DictionaryService) Load(pair domain.LanguagePair, seed bool) (*wordbook.Database, error) {
	dicts, err := s.repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionaries: %w", err)
	}

	books := make([]*wordbook.Wordbook, 0, len(dicts))
	seen := make(map[domain.LanguagePair]bool, len(dicts))
	for _, dict := range dicts {
		if seen[dict.Pair] {
			s.logger.Warn("Skipping duplicate language pair", zap.String("pair", string(dict.Pair)))
			continue
		}
		seen[dict.Pair] = true
		books = append(books, wordbook.FromEntries(dict.Pair, dict.Entries, s.sink))
	}

	if len(books) == 0 && seed {
		s.logger.Info("No dictionaries found, using sample data")
		books = wordbook.SampleWordbooks(s.sink)
		if pair == "" {
			pair = wordbook.DefaultPair
		}
	}

	db, err := wordbook.NewDatabase(books, pair, s.sink)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dictionaries loaded",
		zap.Int("count", len(books)),
		zap.String("current_pair", string(db.CurrentPair())),
	)
	return db, nil
}

// Save writes one language pair
func (s *DictionaryService) Save(db *wordbook.Database, pair domain.LanguagePair) error {
	wb, err := db.Wordbook(pair)
	if err != nil {
		return err
	}
	return s.repo.Save(domain.Dictionary{Pair: pair, Entries: wb.Entries()})
}

// SaveAll writes every language pair.
// A failed pair does not stop the others; all failures are returned together.
func (s *DictionaryService) SaveAll(db *wordbook.Database) error {
	var errs []error
	for _, pair := range db.AllPairs() {
		if err := s.Save(db, pair); err != nil {
			s.logger.Error("Failed to save dictionary",
				zap.String("pair", string(pair)),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
