package taxonomy

import "strings"

// Well-known category and subcategory names shared across packages.
const (
	GeneralCategory         = "Interacciones Generales"
	UnclassifiedCategory    = "Sin Clasificar"
	UnclassifiedSubcategory = "Otros"
	IntentSubcategory       = "Por Intent"
)

// Entry binds a category/subcategory pair to its keyword list.
type Entry struct {
	Category    string
	Subcategory string
	Keywords    []string
}

// Taxonomy is the static decision table driving classification. Entries are
// kept as an ordered list, not a map: the classifier breaks score ties in
// favor of the first entry seen, so iteration order is part of the contract.
type Taxonomy struct {
	entries []Entry
}

// New creates a taxonomy from the given entries, preserving their order.
// Keywords are lowercased for accent- and case-normalized matching.
func New(entries []Entry) *Taxonomy {
	t := &Taxonomy{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		t.Add(e.Category, e.Subcategory, e.Keywords)
	}
	return t
}

// Add appends a category/subcategory entry with its keywords.
func (t *Taxonomy) Add(category, subcategory string, keywords []string) {
	normalized := make([]string, len(keywords))
	for i, kw := range keywords {
		normalized[i] = strings.ToLower(kw)
	}
	t.entries = append(t.entries, Entry{
		Category:    category,
		Subcategory: subcategory,
		Keywords:    normalized,
	})
}

// Entries returns the entries in insertion order.
func (t *Taxonomy) Entries() []Entry {
	return t.entries
}

// Len returns the number of entries.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Categories returns the distinct category names in first-appearance order.
func (t *Taxonomy) Categories() []string {
	seen := make(map[string]struct{}, len(t.entries))
	var out []string
	for _, e := range t.entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

// Subcategories returns the subcategory names under a category, in order.
func (t *Taxonomy) Subcategories(category string) []string {
	var out []string
	for _, e := range t.entries {
		if e.Category == category {
			out = append(out, e.Subcategory)
		}
	}
	return out
}
