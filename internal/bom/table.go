package bom

import "strings"

// Table is a read-only view over one extracted table grid. The underlying
// rows come straight from the table extraction library: a rectangular grid
// of text cells where an empty string means no text was detected. The first
// row is treated as the header.
type Table struct {
	rows [][]string
}

// NewTable wraps an extracted grid. The grid is not copied or mutated.
func NewTable(rows [][]string) Table {
	return Table{rows: rows}
}

// Header returns the header row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[0]
}

// DataRows returns all rows below the header in document order.
func (t Table) DataRows() [][]string {
	if len(t.rows) < 2 {
		return nil
	}
	return t.rows[1:]
}

// NumRows returns the total row count including the header.
func (t Table) NumRows() int {
	return len(t.rows)
}

// cell returns the trimmed-right cell at idx, tolerating ragged rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// rowIsEmpty reports whether every cell in the row is blank.
func rowIsEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
