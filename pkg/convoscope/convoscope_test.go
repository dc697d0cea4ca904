package convoscope

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/convoscope/pkg/convoscope/dataset"
	"github.com/cognicore/convoscope/pkg/convoscope/query"
)

var samplePayload = []byte("user_utterances,conversation_name,turn_position\n" +
	"Hola,A,1\n" +
	"quiero rastrear mi pedido,A,2\n" +
	"hola buenos dias,B,1\n")

func TestEngineLoad(t *testing.T) {
	engine := New(Options{})

	session, err := engine.Load(samplePayload)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if session.ID == "" || session.Fingerprint == "" {
		t.Error("Session should carry an ID and fingerprint")
	}
	if session.Original.Len() != 3 || session.Enriched.Len() != 3 {
		t.Errorf("Unexpected dataset sizes: %d/%d", session.Original.Len(), session.Enriched.Len())
	}
	if session.Empty() {
		t.Error("Session with enriched rows should not be empty")
	}

	m := session.Metrics()
	if m.TotalConversations != 2 || m.TotalInteractions != 3 {
		t.Errorf("Unexpected metrics: %+v", m)
	}
}

func TestEngineCacheHit(t *testing.T) {
	engine := New(Options{})

	first, err := engine.Load(samplePayload)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := engine.Load(append([]byte(nil), samplePayload...))
	if err != nil {
		t.Fatalf("Cached load failed: %v", err)
	}
	if first != second {
		t.Error("Identical payload should return the cached session")
	}
}

func TestEngineCacheInvalidation(t *testing.T) {
	engine := New(Options{})

	first, _ := engine.Load(samplePayload)

	changed := []byte("user_utterances,conversation_name,turn_position\n" +
		"cual es la garantia,C,1\n")
	second, err := engine.Load(changed)
	if err != nil {
		t.Fatalf("Load of changed payload failed: %v", err)
	}
	if second == first || second.ID == first.ID {
		t.Error("Changed payload must replace the cached session")
	}

	engine.Invalidate()
	third, err := engine.Load(changed)
	if err != nil {
		t.Fatalf("Load after Invalidate failed: %v", err)
	}
	if third == second {
		t.Error("Invalidate should force a fresh load")
	}
	// Recompute after invalidation must match the cached result.
	if third.Fingerprint != second.Fingerprint || third.Enriched.Len() != second.Enriched.Len() {
		t.Error("Fresh load diverged from cached load")
	}
}

func TestEngineLoadSchemaError(t *testing.T) {
	engine := New(Options{})

	_, err := engine.Load([]byte("foo,bar\n1,2\n"))
	var schemaErr *dataset.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}

	// A failed load must not poison the cache.
	if _, err := engine.Load(samplePayload); err != nil {
		t.Errorf("Valid load after failure failed: %v", err)
	}
}

func TestSessionEmpty(t *testing.T) {
	engine := New(Options{})

	session, err := engine.Load([]byte("user_utterances,conversation_name,turn_position\nok,A,1\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !session.Empty() {
		t.Error("All-noise payload should yield an empty session")
	}

	// Downstream calls degrade to zero values, never fail.
	if m := session.Metrics(); m.TotalInteractions != 1 {
		t.Errorf("Original-dataset metrics should still count the noise row: %+v", m)
	}
	if got := session.TopQuestions(5, true); got != nil {
		t.Errorf("Expected nil ranking, got %+v", got)
	}
	if got := session.Filter(query.FilterOptions{}); got != nil {
		t.Errorf("Expected nil rows, got %+v", got)
	}
}

func TestSessionWriteEnrichedCSV(t *testing.T) {
	engine := New(Options{})
	session, err := engine.Load(samplePayload)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var buf bytes.Buffer
	if err := session.WriteEnrichedCSV(&buf); err != nil {
		t.Fatalf("WriteEnrichedCSV failed: %v", err)
	}
	header := strings.SplitN(buf.String(), "\n", 2)[0]
	for _, col := range []string{dataset.ColNormalized, dataset.ColCategory, dataset.ColSubcategory, dataset.ColConfidence} {
		if !strings.Contains(header, col) {
			t.Errorf("Header missing derived column %q: %s", col, header)
		}
	}
}

func TestSessionQueries(t *testing.T) {
	engine := New(Options{})
	session, err := engine.Load(samplePayload)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rows := session.Filter(query.FilterOptions{Category: "Gestión de Pedidos"})
	if len(rows) != 1 {
		t.Errorf("Expected 1 order-management row, got %d", len(rows))
	}

	top := session.TopQuestions(5, true)
	if len(top) != 1 || top[0].Question != "quiero rastrear mi pedido" {
		t.Errorf("Unexpected top questions: %+v", top)
	}

	cats := session.CategoryCounts()
	if len(cats) == 0 {
		t.Fatal("Expected category counts")
	}
	if cats[0].Category != "Interacciones Generales" || cats[0].Count != 2 {
		t.Errorf("Unexpected top category: %+v", cats[0])
	}
}
