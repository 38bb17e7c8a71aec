package data

import "encoding/json"

// Row represents a single table row
// Cells are positionally aligned to the owning table's column list
type Row []string

// NewRow creates a new Row holding a copy of the given cells
func NewRow(cells ...string) Row {
	row := make(Row, len(cells))
	copy(row, cells)
	return row
}

// Copy creates a deep copy of the row to prevent mutation
func (r Row) Copy() Row {
	if r == nil {
		return nil
	}
	cp := make(Row, len(r))
	copy(cp, r)
	return cp
}

// Len returns the number of cells in the row
func (r Row) Len() int {
	return len(r)
}

// Get returns the cell at position i
func (r Row) Get(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// Equal reports whether both rows hold the same cells in the same order
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the row as a JSON array of strings
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(r))
}
