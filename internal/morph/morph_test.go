package morph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"polyglot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_Analyze(t *testing.T) {
	assert.Equal(t, domain.Analysis{}, Identity{}.Analyze("cats"))
}

func TestReadTable(t *testing.T) {
	input := `# english forms
cats:cat:pl
Worlds : World : pl

went:go
`
	table, err := ReadTable(strings.NewReader(input))
	require.NoError(t, err)

	tests := []struct {
		token    string
		expected domain.Analysis
	}{
		{token: "cats", expected: domain.Analysis{Lemma: "cat", Plural: true}},
		{token: "WORLDS", expected: domain.Analysis{Lemma: "world", Plural: true}},
		{token: "went", expected: domain.Analysis{Lemma: "go"}},
		{token: "dogs", expected: domain.Analysis{}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Analyze(tt.token))
		})
	}
	assert.Equal(t, 3, table.Len())
}

func TestReadTable_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no colon", input: "cats cat"},
		{name: "empty lemma", input: "cats:"},
		{name: "too many fields", input: "a:b:pl:x"},
		{name: "unknown tag", input: "cats:cat:plural"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
		})
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.txt")
	require.NoError(t, os.WriteFile(path, []byte("cats:cat:pl\n"), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Analysis{Lemma: "cat", Plural: true}, table.Analyze("cats"))

	_, err = LoadTable(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
