package repository

import (
	"polyglot/internal/domain"
)

// DictionaryRepository defines persistence of dictionaries
type DictionaryRepository interface {
	LoadAll() ([]domain.Dictionary, error)
	Save(dict domain.Dictionary) error
}
