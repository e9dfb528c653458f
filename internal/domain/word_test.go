package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissPolicy_String(t *testing.T) {
	assert.Equal(t, "report", Report.String())
	assert.Equal(t, "silent", Silent.String())
}

func TestAnalysis_HasLemma(t *testing.T) {
	tests := []struct {
		name     string
		analysis Analysis
		expected bool
	}{
		{name: "with lemma", analysis: Analysis{Lemma: "cat", Plural: true}, expected: true},
		{name: "without lemma", analysis: Analysis{Plural: true}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.analysis.HasLemma())
		})
	}
}

func TestMalformedRecordError(t *testing.T) {
	err := &MalformedRecordError{File: "English-Russian.txt", Line: 3, Text: "broken"}

	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Equal(t, `English-Russian.txt:3: malformed record "broken"`, err.Error())
}
