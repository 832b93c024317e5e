package table

import "encoding/json"

// Summary is the fixed dashboard summary for a table. When no table is
// present it carries only the Info sentinel and marshals as
// {"info":"No data"}.
type Summary struct {
	Info             string
	RowCount         int
	ColumnCount      int
	Columns          []string
	MissingPerColumn map[string]int
}

// NoDataInfo is the sentinel reported when metrics are requested with no
// table uploaded.
const NoDataInfo = "No data"

// ComputeMetrics derives the summary for t. A nil table yields the
// NoDataInfo sentinel. Column order in Columns matches the table's
// original order.
func ComputeMetrics(t *Table) Summary {
	if t == nil {
		return Summary{Info: NoDataInfo}
	}
	missing := make(map[string]int, len(t.Columns))
	for _, c := range t.Columns {
		n := 0
		for _, cell := range c.Cells {
			if cell == Missing {
				n++
			}
		}
		missing[c.Name] = n
	}
	return Summary{
		RowCount:         t.Rows(),
		ColumnCount:      len(t.Columns),
		Columns:          t.ColumnNames(),
		MissingPerColumn: missing,
	}
}

// MarshalJSON renders either the sentinel shape or the full summary,
// never a mix of the two.
func (s Summary) MarshalJSON() ([]byte, error) {
	if s.Info != "" {
		return json.Marshal(struct {
			Info string `json:"info"`
		}{Info: s.Info})
	}
	return json.Marshal(struct {
		RowCount         int            `json:"row_count"`
		ColumnCount      int            `json:"column_count"`
		Columns          []string       `json:"columns"`
		MissingPerColumn map[string]int `json:"missing_values"`
	}{
		RowCount:         s.RowCount,
		ColumnCount:      s.ColumnCount,
		Columns:          s.Columns,
		MissingPerColumn: s.MissingPerColumn,
	})
}
