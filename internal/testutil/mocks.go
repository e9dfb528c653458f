package testutil

import (
	"context"

	"polyglot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPrompter is a mock for service.Prompter and service.Asker
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) ChooseOne(ctx context.Context, candidates []string, word string) (string, error) {
	args := m.Called(ctx, candidates, word)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Ask(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	args := m.Called(ctx, question)
	return args.Bool(0), args.Error(1)
}

// MockAnalyzer is a mock for service.Analyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(token string) domain.Analysis {
	args := m.Called(token)
	return args.Get(0).(domain.Analysis)
}

// MockDictionaryRepository is a mock for repository.DictionaryRepository
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) LoadAll() ([]domain.Dictionary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dictionary), args.Error(1)
}

func (m *MockDictionaryRepository) Save(dict domain.Dictionary) error {
	args := m.Called(dict)
	return args.Error(0)
}
