package schema

import (
	"github.com/leengari/reltable/internal/domain/data"
	"github.com/leengari/reltable/internal/domain/errors"
)

// Table represents an in-memory relation: a schema plus rows aligned to it
//
// A Table is immutable once built. NewTable copies everything it is given
// and every accessor hands out copies, so no caller can reach the
// table's own storage.
type Table struct {
	Name   string
	schema *TableSchema
	rows   []data.Row
}

// NewTable builds a table from a column list and rows
// Fails with a SchemaMismatchError if any row's cell count differs from
// the column count
func NewTable(name string, columns []string, rows []data.Row) (*Table, error) {
	owned := make([]data.Row, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, &errors.SchemaMismatchError{
				Source:   name,
				Expected: len(columns),
				Got:      len(row),
			}
		}
		owned[i] = row.Copy()
	}

	return &Table{
		Name:   name,
		schema: NewTableSchema(name, columns),
		rows:   owned,
	}, nil
}

// newTableUnsafe adopts columns and rows without copying or validating
// Callers must hand over freshly allocated storage that nothing else references
func newTableUnsafe(name string, columns []string, rows []data.Row) *Table {
	return &Table{
		Name:   name,
		schema: &TableSchema{TableName: name, Columns: columns},
		rows:   rows,
	}
}

// Builder accumulates rows for a new table
// Operators use it to avoid a second copy of every row they produce
type Builder struct {
	name    string
	columns []string
	rows    []data.Row
}

// NewBuilder starts a table with the given columns (copied)
func NewBuilder(name string, columns []string) *Builder {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Builder{name: name, columns: cols}
}

// Append adds a row that the builder takes ownership of
func (b *Builder) Append(row data.Row) error {
	if len(row) != len(b.columns) {
		return &errors.SchemaMismatchError{
			Source:   b.name,
			Expected: len(b.columns),
			Got:      len(row),
		}
	}
	b.rows = append(b.rows, row)
	return nil
}

// Build returns the finished table; the builder must not be used afterwards
func (b *Builder) Build() *Table {
	rows := b.rows
	if rows == nil {
		rows = []data.Row{}
	}
	t := newTableUnsafe(b.name, b.columns, rows)
	b.columns, b.rows = nil, nil
	return t
}

// Schema returns a copy of the table's schema
func (t *Table) Schema() *TableSchema {
	return NewTableSchema(t.Name, t.schema.Columns)
}

// Columns returns a copy of the column names in schema order
func (t *Table) Columns() []string {
	cols := make([]string, len(t.schema.Columns))
	copy(cols, t.schema.Columns)
	return cols
}

// ColumnIndex returns the position of the named column
func (t *Table) ColumnIndex(name string) (int, error) {
	idx, err := t.schema.ColumnIndex(name)
	if err != nil {
		return -1, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: name}
	}
	return idx, nil
}

// HasColumn reports whether the table has a column named name
func (t *Table) HasColumn(name string) bool {
	return t.schema.HasColumn(name)
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return t.schema.Len()
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns a copy of row i
func (t *Table) Row(i int) data.Row {
	return t.rows[i].Copy()
}

// Rows returns a deep copy of all rows
func (t *Table) Rows() []data.Row {
	rows := make([]data.Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.Copy()
	}
	return rows
}

// Record returns a read-only view of row i
func (t *Table) Record(i int) Record {
	return Record{schema: t.schema, row: t.rows[i]}
}

// Each calls fn with a read-only view of every row, in order
func (t *Table) Each(fn func(i int, rec Record)) {
	for i, row := range t.rows {
		fn(i, Record{schema: t.schema, row: row})
	}
}

// Equal reports whether both tables have identical columns and rows
// Table names are not compared
func (t *Table) Equal(other *Table) bool {
	if t.schema.Len() != other.schema.Len() || len(t.rows) != len(other.rows) {
		return false
	}
	for i, col := range t.schema.Columns {
		if other.schema.Columns[i] != col {
			return false
		}
	}
	for i, row := range t.rows {
		if !row.Equal(other.rows[i]) {
			return false
		}
	}
	return true
}
