package normalize

import (
	"strings"
	"unicode/utf8"
)

// defaultNoiseWords are normalized utterances with no analyzable content:
// bare acknowledgements, articles and other stopword-only messages.
var defaultNoiseWords = []string{
	"", "si", "no", "ok", "a", "e", "o", "de", "la", "el",
	"mi", "que", "es", "un", "una", "los", "las", "y", "en",
	"con", "para", "por",
}

// defaultGreetingWords mark greetings and courtesy interactions.
var defaultGreetingWords = []string{
	"hola", "buenos dias", "buenas tardes", "buenas noches", "gracias",
	"adios", "si", "no", "ok", "aja", "bien", "perfecto", "excelente",
	"de acuerdo", "entendido", "claro", "por favor", "disculpa",
}

// Filters classifies normalized utterances as noise or basic greetings.
type Filters struct {
	noise     map[string]struct{}
	greetings map[string]struct{}
}

// NewFilters creates filters from the given word lists. Entries are
// lowercased; the lists drive exact-match lookups, not substring checks.
func NewFilters(noiseWords, greetingWords []string) *Filters {
	f := &Filters{
		noise:     make(map[string]struct{}, len(noiseWords)),
		greetings: make(map[string]struct{}, len(greetingWords)),
	}
	for _, w := range noiseWords {
		f.noise[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range greetingWords {
		f.greetings[strings.ToLower(w)] = struct{}{}
	}
	return f
}

// DefaultFilters returns filters with the built-in Spanish word lists.
func DefaultFilters() *Filters {
	return NewFilters(defaultNoiseWords, defaultGreetingWords)
}

// IsNoise reports whether a normalized utterance carries no analyzable
// content: an exact noise-word match, or two or fewer characters.
func (f *Filters) IsNoise(normalized string) bool {
	if _, ok := f.noise[normalized]; ok {
		return true
	}
	return utf8.RuneCountInString(normalized) <= 2
}

// IsBasicGreeting reports whether raw text is a short greeting or courtesy
// message. The text is normalized and split into a deduplicated token set;
// it qualifies when the set intersects the greeting words and holds at most
// three tokens. The size guard keeps long sentences that merely open with a
// greeting out of the greeting bucket.
func (f *Filters) IsBasicGreeting(raw string) bool {
	tokens := strings.Fields(Normalize(raw))
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	if len(set) == 0 || len(set) > 3 {
		return false
	}
	for tok := range set {
		if _, ok := f.greetings[tok]; ok {
			return true
		}
	}
	return false
}

// NoiseWords returns the configured noise words.
func (f *Filters) NoiseWords() []string {
	return setToSlice(f.noise)
}

// GreetingWords returns the configured greeting words.
func (f *Filters) GreetingWords() []string {
	return setToSlice(f.greetings)
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	return out
}
