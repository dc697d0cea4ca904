// Package dataset loads delimited transcript exports and produces the two
// views every downstream consumer works from: the original dataset (all rows,
// normalized text attached) and the enriched dataset (noise rows removed,
// every surviving row classified).
package dataset

import (
	"fmt"
	"strings"
)

// Column names as produced by the agent transcript exporter.
const (
	ColUtterance    = "user_utterances"
	ColConversation = "conversation_name"
	ColTurn         = "turn_position"
	ColIntent       = "intent_name"
	ColEscalation   = "live_agent_handoff"
	ColSessionEnd   = "end_session_exit"
)

// Derived columns appended by the pipeline.
const (
	ColNormalized  = "pregunta_limpia"
	ColCategory    = "categoria"
	ColSubcategory = "subcategoria"
	ColConfidence  = "confidence"
)

// RequiredColumns lists the columns a payload must carry to be analyzable.
var RequiredColumns = []string{ColUtterance, ColConversation, ColTurn}

// Record is one interaction: a user utterance at a given turn within a
// conversation. Cells keeps the raw values for every original column so
// exports can round-trip columns the pipeline does not interpret.
type Record struct {
	Cells []string // aligned with Dataset.Columns

	Utterance    string
	Conversation string
	Turn         int
	Intent       string
	Escalated    bool
	Ended        bool

	// Derived fields. Normalized is set on every record; the classification
	// triple only on records of an enriched dataset.
	Normalized  string
	Category    string
	Subcategory string
	Confidence  float64
}

// Dataset is an immutable snapshot of loaded interaction records.
type Dataset struct {
	Columns []string // original header order
	Records []Record

	HasIntent     bool
	HasEscalation bool
	HasSessionEnd bool

	// Classified marks an enriched dataset whose records carry the
	// category/subcategory/confidence triple.
	Classified bool
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// WithRecords returns a dataset sharing this dataset's columns and flags but
// holding only the given records. Used to materialize filtered views.
func (d *Dataset) WithRecords(records []Record) *Dataset {
	return &Dataset{
		Columns:       d.Columns,
		Records:       records,
		HasIntent:     d.HasIntent,
		HasEscalation: d.HasEscalation,
		HasSessionEnd: d.HasSessionEnd,
		Classified:    d.Classified,
	}
}

// SchemaError reports required columns missing from a payload header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
