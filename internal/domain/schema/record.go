package schema

import "github.com/leengari/reltable/internal/domain/data"

// Record is a read-only view of one row, addressable by column name
type Record struct {
	schema *TableSchema
	row    data.Row
}

// Get returns the cell under the named column
func (r Record) Get(column string) (string, bool) {
	idx, err := r.schema.ColumnIndex(column)
	if err != nil {
		return "", false
	}
	return r.row[idx], true
}

// Cell returns the cell at position i
func (r Record) Cell(i int) string {
	return r.row[i]
}

// Len returns the number of cells
func (r Record) Len() int {
	return len(r.row)
}

// Values returns a copy of the cells
func (r Record) Values() data.Row {
	return r.row.Copy()
}

// Record returns a read-only view of row under this schema
// row must have one cell per column
func (s *TableSchema) Record(row data.Row) Record {
	return Record{schema: s, row: row}
}
