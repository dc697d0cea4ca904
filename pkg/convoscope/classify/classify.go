// Package classify assigns a category, subcategory and confidence score to
// user utterances using a static keyword taxonomy. It is a deliberate
// heuristic, not a trained model: matching is substring containment over
// normalized text, scored by the fraction of an entry's keywords present.
package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cognicore/convoscope/pkg/convoscope/taxonomy"
)

// IntentConfidence is the fixed confidence for native intent overrides.
const IntentConfidence = 0.9

// sentinelIntents are upstream intent values that carry no signal and never
// trigger the intent override.
var sentinelIntents = map[string]struct{}{
	"":                       {},
	"UNSPECIFIED":            {},
	"Default Welcome Intent": {},
}

// Result is a classification outcome. Confidence is a keyword-match strength
// in [0,1], not a probability.
type Result struct {
	Category    string
	Subcategory string
	Confidence  float64
}

// Classifier classifies utterances against a taxonomy. It holds no mutable
// state; classification is deterministic and never fails.
type Classifier struct {
	tax   *taxonomy.Taxonomy
	title cases.Caser
}

// New creates a classifier over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Classifier {
	return &Classifier{
		tax:   tax,
		title: cases.Title(language.Spanish),
	}
}

// Classify returns the classification for one utterance.
//
// A non-sentinel native intent always wins: the intent name is rewritten to a
// title-cased label and returned under the "Por Intent" subcategory with a
// fixed confidence, regardless of the utterance content.
//
// Otherwise every taxonomy entry is scored by matched-keywords over total
// keywords, keeping the first entry with the strictly greatest score. Entry
// order therefore decides ties; callers must not reorder the taxonomy.
// When nothing matches, the unclassified fallback is returned with zero
// confidence.
func (c *Classifier) Classify(normalizedText, intentName string) Result {
	if _, sentinel := sentinelIntents[intentName]; !sentinel {
		label := c.title.String(strings.ReplaceAll(intentName, "_", " "))
		return Result{
			Category:    label,
			Subcategory: taxonomy.IntentSubcategory,
			Confidence:  IntentConfidence,
		}
	}

	best := Result{
		Category:    taxonomy.UnclassifiedCategory,
		Subcategory: taxonomy.UnclassifiedSubcategory,
	}
	for _, entry := range c.tax.Entries() {
		matches := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(normalizedText, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		score := float64(matches) / float64(len(entry.Keywords))
		if score > best.Confidence {
			best = Result{
				Category:    entry.Category,
				Subcategory: entry.Subcategory,
				Confidence:  score,
			}
		}
	}
	return best
}
