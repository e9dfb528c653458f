package domain

// LanguagePair identifies a source/target language combination, e.g. "English-Russian"
type LanguagePair string

// MaxCandidates is the number of translations kept per word
const MaxCandidates = 2

// Markers used when rendering translations
const (
	NotFoundMarker = "|not found|"
	PluralSuffix   = "s"
)

// Entry is a word with its ordered candidate translations
type Entry struct {
	Word         string
	Translations []string
}

// MissPolicy controls whether a lookup miss is reported
type MissPolicy int

const (
	// Report sends a warning for every miss
	Report MissPolicy = iota
	// Silent records the miss in history only
	Silent
)

func (p MissPolicy) String() string {
	if p == Silent {
		return "silent"
	}
	return "report"
}

// Analysis is the result of morphological analysis of a single token
type Analysis struct {
	Lemma  string // empty when the analyzer has no base form
	Plural bool
}

// HasLemma reports whether the analyzer produced a base form
func (a Analysis) HasLemma() bool {
	return a.Lemma != ""
}

// Dictionary is the persisted form of one language pair
type Dictionary struct {
	Pair    LanguagePair
	Entries []Entry
}
