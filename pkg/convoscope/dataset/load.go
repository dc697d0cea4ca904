package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/cognicore/convoscope/pkg/convoscope/classify"
	"github.com/cognicore/convoscope/pkg/convoscope/internalerr"
	"github.com/cognicore/convoscope/pkg/convoscope/normalize"
	"github.com/cognicore/convoscope/pkg/convoscope/taxonomy"
)

// Options configures a Load call. Nil fields fall back to the built-in
// filters and the default-taxonomy classifier.
type Options struct {
	Filters    *normalize.Filters
	Classifier *classify.Classifier
}

// Load parses a delimited transcript payload and runs the enrichment
// pipeline: decode, schema validation, normalization, noise filtering and
// classification. It returns the original dataset (every row, normalized
// text attached) and the enriched dataset (noise removed, rows classified).
//
// Validation fails fast: a payload that cannot be decoded or is missing
// required columns produces an error before any classification work, and no
// partial result. An enriched dataset with zero rows is not an error.
func Load(r io.Reader, opts Options) (original, enriched *Dataset, err error) {
	filters := opts.Filters
	if filters == nil {
		filters = normalize.DefaultFilters()
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = classify.New(taxonomy.Default())
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read payload: %w", err)
	}

	text, err := decodeText(payload)
	if err != nil {
		return nil, nil, err
	}

	rows, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", internalerr.ErrDecode, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: payload has no header row", internalerr.ErrDecode)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &SchemaError{Missing: missing}
	}

	original = &Dataset{Columns: header}
	_, original.HasIntent = index[ColIntent]
	_, original.HasEscalation = index[ColEscalation]
	_, original.HasSessionEnd = index[ColSessionEnd]

	cell := func(row []string, name string) string {
		if i, ok := index[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	original.Records = make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Cells:        row,
			Utterance:    cell(row, ColUtterance),
			Conversation: cell(row, ColConversation),
			Turn:         parseTurn(cell(row, ColTurn)),
			Intent:       strings.TrimSpace(cell(row, ColIntent)),
			Escalated:    parseFlag(cell(row, ColEscalation)),
			Ended:        parseFlag(cell(row, ColSessionEnd)),
		}
		rec.Normalized = normalize.Normalize(rec.Utterance)
		original.Records = append(original.Records, rec)
	}

	enriched = original.WithRecords(nil)
	enriched.Classified = true
	for _, rec := range original.Records {
		if filters.IsNoise(rec.Normalized) {
			continue
		}
		res := classifier.Classify(rec.Normalized, rec.Intent)
		rec.Category = res.Category
		rec.Subcategory = res.Subcategory
		rec.Confidence = res.Confidence
		enriched.Records = append(enriched.Records, rec)
	}

	return original, enriched, nil
}

// decodeText interprets the payload as UTF-8 when valid and falls back to
// Latin-1, matching the exporter's two known encodings.
func decodeText(payload []byte) (string, error) {
	if utf8.Valid(payload) {
		return string(payload), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", internalerr.ErrDecode, err)
	}
	return string(decoded), nil
}

// parseTurn reads a turn position leniently: surrounding whitespace is
// ignored and unparseable or negative values degrade to zero rather than
// failing the load.
func parseTurn(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseFlag reads the exporter's boolean cells.
func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "si", "sí", "y", "t":
		return true
	}
	return false
}
