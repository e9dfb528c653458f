package wordbook

import (
	"testing"

	"polyglot/internal/domain"
	"polyglot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWordbook(sink Sink) *Wordbook {
	return FromEntries("English-Russian", testutil.NewTestEntries(), sink)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "latin", input: "  Hello ", expected: "hello"},
		{name: "cyrillic", input: "ПРИВЕТ", expected: "привет"},
		{name: "inner spaces kept", input: " Hello  World ", expected: "hello  world"},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "big", "world"}, Tokenize("  Hello\tBIG   world "))
	assert.Empty(t, Tokenize("  "))
}

func TestWordbook_TranslateWord(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		policy         domain.MissPolicy
		expected       string
		expectedRecord string
		expectWarning  bool
	}{
		{
			name:           "single candidate",
			token:          "hello",
			expected:       "привет",
			expectedRecord: "TRANSLATED hello: привет",
		},
		{
			name:           "two candidates are rendered ambiguous",
			token:          "cat",
			expected:       "|кот/котэ|",
			expectedRecord: "TRANSLATED cat: |кот/котэ|",
		},
		{
			name:           "case and spaces are ignored",
			token:          "  HeLLo ",
			expected:       "привет",
			expectedRecord: "TRANSLATED hello: привет",
		},
		{
			name:           "reverse lookup returns the key",
			token:          "Мир",
			expected:       "world",
			expectedRecord: "REVERSE TRANSLATED мир: world",
		},
		{
			name:           "reverse lookup of second candidate",
			token:          "котэ",
			expected:       "cat",
			expectedRecord: "REVERSE TRANSLATED котэ: cat",
		},
		{
			name:           "miss is reported",
			token:          "dog",
			policy:         domain.Report,
			expected:       "",
			expectedRecord: "dog: TRANSLATION FAILED",
			expectWarning:  true,
		},
		{
			name:           "silent miss is only recorded",
			token:          "dog",
			policy:         domain.Silent,
			expected:       "",
			expectedRecord: "dog: TRANSLATION FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &testutil.RecordingSink{}
			wb := newTestWordbook(sink)

			result := wb.TranslateWord(tt.token, tt.policy)

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, []string{tt.expectedRecord}, wb.History())
			if tt.expectWarning {
				require.Len(t, sink.Warnings, 1)
				assert.Contains(t, sink.Warnings[0], "dog")
			} else {
				assert.Empty(t, sink.Warnings)
			}
		})
	}
}

func TestWordbook_ReverseLookupUsesInsertionOrder(t *testing.T) {
	wb := FromEntries("English-Russian", []domain.Entry{
		testutil.NewTestEntry("zebra", "общий"),
		testutil.NewTestEntry("apple", "общий"),
	}, nil)

	assert.Equal(t, "zebra", wb.TranslateWord("общий", domain.Report))
}

func TestWordbook_TranslatePhrase(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		expected string
	}{
		{name: "two known words", phrase: "hello world", expected: "привет мир"},
		{name: "extra whitespace collapses", phrase: "  Hello \t  WORLD ", expected: "привет мир"},
		{name: "unknown word in phrase", phrase: "hello dog world", expected: "привет |not found| мир"},
		{name: "mixed directions", phrase: "привет world", expected: "hello мир"},
		{name: "ambiguous word in phrase", phrase: "hello cat", expected: "привет |кот/котэ|"},
		{name: "single word delegates", phrase: "hello", expected: "привет"},
		{name: "single unknown word stays empty", phrase: "dog", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := newTestWordbook(nil)
			assert.Equal(t, tt.expected, wb.TranslatePhrase(tt.phrase, domain.Silent))
		})
	}
}

func TestWordbook_MultiplyTranslate(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected []string
	}{
		{name: "two candidates", word: "cat", expected: []string{"кот", "котэ"}},
		{name: "one candidate", word: "HELLO", expected: []string{"привет"}},
		{name: "reverse", word: "мир", expected: []string{"world"}},
		{name: "absent", word: "dog", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := newTestWordbook(nil)
			assert.Equal(t, tt.expected, wb.MultiplyTranslate(tt.word))
		})
	}
}

func TestWordbook_MultiplyTranslateReturnsCopy(t *testing.T) {
	wb := newTestWordbook(nil)

	cands := wb.MultiplyTranslate("cat")
	cands[0] = "changed"

	assert.Equal(t, []string{"кот", "котэ"}, wb.MultiplyTranslate("cat"))
}

func TestWordbook_Contains(t *testing.T) {
	wb := newTestWordbook(nil)

	assert.True(t, wb.Contains("Hello"))
	assert.True(t, wb.Contains("котэ"))
	assert.False(t, wb.Contains("dog"))
	assert.Empty(t, wb.History())
}

func TestWordbook_AddOrUpdate(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		translation string
		expected    []string
		expectedLen int
	}{
		{
			name:        "new word",
			word:        "Dog",
			translation: "Собака",
			expected:    []string{"собака"},
			expectedLen: 4,
		},
		{
			name:        "second translation is appended",
			word:        "hello",
			translation: "здравствуй",
			expected:    []string{"привет", "здравствуй"},
			expectedLen: 3,
		},
		{
			name:        "third translation replaces the primary",
			word:        "cat",
			translation: "кошка",
			expected:    []string{"кошка", "котэ"},
			expectedLen: 3,
		},
		{
			name:        "existing translation is kept as is",
			word:        "cat",
			translation: "КОТЭ",
			expected:    []string{"кот", "котэ"},
			expectedLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &testutil.RecordingSink{}
			wb := newTestWordbook(sink)

			err := wb.AddOrUpdate(tt.word, tt.translation)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, wb.MultiplyTranslate(tt.word))
			assert.Equal(t, tt.expectedLen, wb.Len())
			assert.Equal(t, []string{"ADD/UPDATE " + Normalize(tt.word) + ": " + Normalize(tt.translation)}, wb.History())
			assert.Len(t, sink.Infos, 1)
		})
	}
}

func TestWordbook_AddThenTranslateContainsTranslation(t *testing.T) {
	pairs := []struct{ word, translation string }{
		{"sun", "солнце"},
		{"hello", "здравствуй"},
		{"cat", "кошка"},
		{"dog", "пёс"},
	}

	wb := newTestWordbook(nil)
	for _, p := range pairs {
		require.NoError(t, wb.AddOrUpdate(p.word, p.translation))
		assert.Contains(t, wb.TranslateWord(p.word, domain.Silent), p.translation)
	}
}

func TestWordbook_AddOrUpdateRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		translation string
	}{
		{name: "empty word", word: "  ", translation: "мир"},
		{name: "empty translation", word: "peace", translation: ""},
		{name: "colon in word", word: "a:b", translation: "мир"},
		{name: "line break in word", word: "peace\nmouse", translation: "мир"},
		{name: "comma in translation", word: "peace", translation: "мир, покой"},
		{name: "line break in translation", word: "cat", translation: "кот\nmouse:мышь"},
		{name: "carriage return in translation", word: "cat", translation: "кот\rкошка"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := newTestWordbook(nil)

			err := wb.AddOrUpdate(tt.word, tt.translation)

			assert.ErrorIs(t, err, domain.ErrInvalidEntry)
			assert.Equal(t, 3, wb.Len())
			assert.Equal(t, []string{"ADD/UPDATE " + Normalize(tt.word) + ": REJECTED"}, wb.History())
		})
	}
}

func TestWordbook_AddOrUpdateSeveralWords(t *testing.T) {
	wb := newTestWordbook(nil)

	require.NoError(t, wb.AddOrUpdate("Good  Morning", "доброе утро"))

	assert.Equal(t, "доброе утро", wb.TranslateWord("good  morning", domain.Silent))
	assert.Equal(t, "good  morning", wb.TranslateWord("доброе утро", domain.Silent))
	assert.Equal(t, 4, wb.Len())
}

func TestWordbook_Remove(t *testing.T) {
	sink := &testutil.RecordingSink{}
	wb := newTestWordbook(sink)

	assert.True(t, wb.Remove("World"))
	assert.Equal(t, 2, wb.Len())
	assert.False(t, wb.Contains("мир"))
	assert.Equal(t, []string{"REMOVED world"}, wb.History())
	assert.Len(t, sink.Infos, 1)

	assert.Equal(t, []domain.Entry{
		testutil.NewTestEntry("hello", "привет"),
		testutil.NewTestEntry("cat", "кот", "котэ"),
	}, wb.Entries())
}

func TestWordbook_RemoveAbsent(t *testing.T) {
	sink := &testutil.RecordingSink{}
	wb := newTestWordbook(sink)

	assert.False(t, wb.Remove("dog"))
	assert.Equal(t, 3, wb.Len())
	assert.Equal(t, []string{"REMOVE dog: NOT FOUND"}, wb.History())
	assert.Len(t, sink.Warnings, 1)
}

func TestFromEntries(t *testing.T) {
	wb := FromEntries("English-Russian", []domain.Entry{
		testutil.NewTestEntry(" CAT ", "Кот"),
		testutil.NewTestEntry("dog", "пёс"),
		testutil.NewTestEntry("cat", "кот", "котэ", "кошка"),
		testutil.NewTestEntry("", "ничто"),
		testutil.NewTestEntry("sun", "", "солнце"),
	}, nil)

	assert.Equal(t, []domain.Entry{
		testutil.NewTestEntry("cat", "кот", "котэ"),
		testutil.NewTestEntry("dog", "пёс"),
		testutil.NewTestEntry("sun", "солнце"),
	}, wb.Entries())
	assert.Equal(t, domain.LanguagePair("English-Russian"), wb.Pair())
	assert.Empty(t, wb.History())
}

func TestWordbook_HistoryIsAppendOnly(t *testing.T) {
	wb := newTestWordbook(nil)

	wb.TranslateWord("hello", domain.Silent)
	history := wb.History()
	history[0] = "tampered"
	require.NoError(t, wb.AddOrUpdate("dog", "пёс"))
	wb.Remove("dog")

	assert.Equal(t, []string{
		"TRANSLATED hello: привет",
		"ADD/UPDATE dog: пёс",
		"REMOVED dog",
	}, wb.History())
}
