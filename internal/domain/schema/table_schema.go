package schema

import "github.com/leengari/reltable/internal/domain/errors"

// TableSchema is the ordered list of column names defining a table's shape
type TableSchema struct {
	TableName string
	Columns   []string
}

// NewTableSchema creates a schema owning a copy of columns
func NewTableSchema(tableName string, columns []string) *TableSchema {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &TableSchema{TableName: tableName, Columns: cols}
}

// Len returns the number of columns
func (s *TableSchema) Len() int {
	return len(s.Columns)
}

// ColumnIndex returns the position of the first column named name
func (s *TableSchema) ColumnIndex(name string) (int, error) {
	for i, col := range s.Columns {
		if col == name {
			return i, nil
		}
	}
	return -1, &errors.ColumnNotFoundError{TableName: s.TableName, ColumnName: name}
}

// HasColumn reports whether the schema contains a column named name
func (s *TableSchema) HasColumn(name string) bool {
	_, err := s.ColumnIndex(name)
	return err == nil
}
