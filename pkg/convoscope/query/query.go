// Package query applies user-selected filters to the enriched dataset and
// computes frequency rankings for the presentation layer.
package query

import (
	"sort"

	"github.com/cognicore/convoscope/pkg/convoscope/dataset"
	"github.com/cognicore/convoscope/pkg/convoscope/normalize"
	"github.com/cognicore/convoscope/pkg/convoscope/taxonomy"
)

// All is the sentinel filter value that matches every category or
// subcategory.
const All = "Todas"

// DefaultTopQuestions is the ranking size used when the caller passes a
// non-positive n.
const DefaultTopQuestions = 15

// FilterOptions selects a slice of the enriched dataset. Empty category or
// subcategory values behave like All.
type FilterOptions struct {
	Category    string
	Subcategory string
	MinTurns    int
}

// Filter returns the enriched records matching the options, preserving
// record order.
//
// The turn-count minimum is evaluated against the original dataset: noise
// rows removed from the enriched dataset may hold a conversation's highest
// turn position, so only the original view can compute true conversation
// length. Conversations meeting the minimum there are intersected with the
// category-filtered enriched rows by conversation name.
func Filter(enriched, original *dataset.Dataset, opts FilterOptions) []dataset.Record {
	if enriched.Len() == 0 {
		return nil
	}

	var allowed map[string]struct{}
	if opts.MinTurns > 0 && original != nil {
		maxTurns := make(map[string]int, original.Len())
		for _, rec := range original.Records {
			if rec.Turn > maxTurns[rec.Conversation] {
				maxTurns[rec.Conversation] = rec.Turn
			}
		}
		allowed = make(map[string]struct{}, len(maxTurns))
		for name, turns := range maxTurns {
			if turns >= opts.MinTurns {
				allowed[name] = struct{}{}
			}
		}
	}

	var out []dataset.Record
	for _, rec := range enriched.Records {
		if opts.Category != "" && opts.Category != All && rec.Category != opts.Category {
			continue
		}
		if opts.Subcategory != "" && opts.Subcategory != All && rec.Subcategory != opts.Subcategory {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[rec.Conversation]; !ok {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// QuestionCount is one entry of the frequent-question ranking.
type QuestionCount struct {
	Question string
	Count    int
}

// TopQuestions ranks normalized utterances by frequency. With
// excludeGreetings set, basic greetings and rows classified under the
// general-interaction category are dropped first, so courtesy chatter does
// not crowd out real questions. Grouping keys appear in first-appearance
// order and the descending sort is stable, which pins the order of tied
// counts across runs.
func TopQuestions(enriched *dataset.Dataset, filters *normalize.Filters, n int, excludeGreetings bool) []QuestionCount {
	if n <= 0 {
		n = DefaultTopQuestions
	}
	if filters == nil {
		filters = normalize.DefaultFilters()
	}

	index := make(map[string]int, enriched.Len())
	var counts []QuestionCount
	for _, rec := range enriched.Records {
		if excludeGreetings {
			if rec.Category == taxonomy.GeneralCategory {
				continue
			}
			if filters.IsBasicGreeting(rec.Normalized) {
				continue
			}
		}
		i, ok := index[rec.Normalized]
		if !ok {
			i = len(counts)
			index[rec.Normalized] = i
			counts = append(counts, QuestionCount{Question: rec.Normalized})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// CategoryCount is one entry of the per-category distribution.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryCounts returns interaction counts per category, descending, with
// ties in first-appearance order.
func CategoryCounts(enriched *dataset.Dataset) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for _, rec := range enriched.Records {
		i, ok := index[rec.Category]
		if !ok {
			i = len(counts)
			index[rec.Category] = i
			counts = append(counts, CategoryCount{Category: rec.Category})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// SubcategoryCount is one entry of the per-subcategory distribution.
type SubcategoryCount struct {
	Category    string
	Subcategory string
	Count       int
}

// SubcategoryCounts returns interaction counts per category/subcategory
// pair, descending, with ties in first-appearance order.
func SubcategoryCounts(enriched *dataset.Dataset) []SubcategoryCount {
	type key struct{ cat, sub string }
	index := make(map[key]int)
	var counts []SubcategoryCount
	for _, rec := range enriched.Records {
		k := key{rec.Category, rec.Subcategory}
		i, ok := index[k]
		if !ok {
			i = len(counts)
			index[k] = i
			counts = append(counts, SubcategoryCount{Category: rec.Category, Subcategory: rec.Subcategory})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
