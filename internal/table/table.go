// Package table holds the in-memory representation of an uploaded CSV
// dataset: ingestion, summary metrics, and export back to CSV.
package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Missing is the in-memory marker for a missing cell value.
const Missing = ""

// Column is a named, ordered sequence of cells. A cell equal to Missing
// represents an absent value.
type Column struct {
	Name  string
	Cells []string
}

// Table is an ordered sequence of columns sharing one row count.
// A nil *Table means "no data uploaded", which is distinct from a
// zero-row table that still carries a header.
type Table struct {
	Columns []Column
}

// IngestError reports why an upload could not be parsed. It is always
// returned as a value for the caller to surface; a failed ingest must
// never replace a previously uploaded table.
type IngestError struct {
	Reason string
}

func (e *IngestError) Error() string {
	return "ingest: " + e.Reason
}

// Ingest decodes comma-separated text into a Table. The first record is
// the header. Any structural problem (empty input, ragged rows, duplicate
// column names) yields an *IngestError and no table.
func Ingest(raw []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	records, err := r.ReadAll()
	if err != nil {
		return nil, &IngestError{Reason: fmt.Sprintf("malformed CSV: %v", err)}
	}
	if len(records) == 0 {
		return nil, &IngestError{Reason: "empty input"}
	}

	header := records[0]
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if strings.TrimSpace(name) == "" {
			return nil, &IngestError{Reason: "blank column name in header"}
		}
		if _, dup := seen[name]; dup {
			return nil, &IngestError{Reason: fmt.Sprintf("duplicate column name %q", name)}
		}
		seen[name] = struct{}{}
	}

	rows := records[1:]
	cols := make([]Column, len(header))
	for i, name := range header {
		cells := make([]string, len(rows))
		for j, row := range rows {
			cells[j] = row[i]
		}
		cols[i] = Column{Name: name, Cells: cells}
	}
	return &Table{Columns: cols}, nil
}

// Rows returns the shared row count.
func (t *Table) Rows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnNames returns the column names in their original order.
func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Row returns the i-th row across all columns.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Cells[i]
	}
	return row
}

// WriteCSV serializes the table back to comma-separated text with a
// header row, preserving column order and the Missing marker, so that
// Ingest(WriteCSV(t)) reproduces t.
func (t *Table) WriteCSV() ([]byte, error) {
	if t == nil {
		return nil, &IngestError{Reason: "no table to export"}
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.ColumnNames()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < t.Rows(); i++ {
		if err := w.Write(t.Row(i)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return buf.Bytes(), nil
}
