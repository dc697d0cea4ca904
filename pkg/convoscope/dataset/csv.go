package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV serializes the dataset back to delimited text: every original
// column in header order, then the derived columns the pipeline attached.
// Derived columns already present in the header (a re-loaded export) are not
// appended twice. Output is UTF-8 with standard CSV quoting, so a written
// enriched dataset loads back cell-for-cell.
func (d *Dataset) WriteCSV(w io.Writer) error {
	present := make(map[string]struct{}, len(d.Columns))
	for _, name := range d.Columns {
		present[name] = struct{}{}
	}

	derived := []string{ColNormalized}
	if d.Classified {
		derived = append(derived, ColCategory, ColSubcategory, ColConfidence)
	}

	header := append([]string(nil), d.Columns...)
	var appended []string
	for _, name := range derived {
		if _, ok := present[name]; ok {
			continue
		}
		appended = append(appended, name)
		header = append(header, name)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range d.Records {
		row := append([]string(nil), rec.Cells...)
		for len(row) < len(d.Columns) {
			row = append(row, "")
		}
		for _, name := range appended {
			row = append(row, rec.derivedCell(name))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (r *Record) derivedCell(name string) string {
	switch name {
	case ColNormalized:
		return r.Normalized
	case ColCategory:
		return r.Category
	case ColSubcategory:
		return r.Subcategory
	case ColConfidence:
		return strconv.FormatFloat(r.Confidence, 'g', -1, 64)
	}
	return ""
}
