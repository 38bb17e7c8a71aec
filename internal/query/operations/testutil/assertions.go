package testutil

import (
	stderrors "errors"
	"testing"

	"github.com/leengari/reltable/internal/domain/data"
	"github.com/leengari/reltable/internal/domain/errors"
	"github.com/leengari/reltable/internal/domain/schema"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a row has the expected number of columns
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertColumns checks the table's schema matches expected exactly
func AssertColumns(t *testing.T, table *schema.Table, expected []string, context string) {
	t.Helper()
	got := table.Columns()
	if len(got) != len(expected) {
		t.Errorf("%s: expected columns %v, got %v", context, expected, got)
		return
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("%s: expected columns %v, got %v", context, expected, got)
			return
		}
	}
}

// AssertRows checks the table's rows match expected exactly, in order
func AssertRows(t *testing.T, table *schema.Table, expected [][]string, context string) {
	t.Helper()
	if table.Len() != len(expected) {
		t.Errorf("%s: expected %d rows, got %d: %v", context, len(expected), table.Len(), table.Rows())
		return
	}
	for i, cells := range expected {
		if !table.Row(i).Equal(data.NewRow(cells...)) {
			t.Errorf("%s: row %d: expected %v, got %v", context, i, cells, table.Row(i))
		}
	}
}

// AssertRowWidths checks every row's cell count equals the column count
func AssertRowWidths(t *testing.T, table *schema.Table, context string) {
	t.Helper()
	for i, row := range table.Rows() {
		if len(row) != table.ColumnCount() {
			t.Errorf("%s: row %d has %d cells, schema has %d columns", context, i, len(row), table.ColumnCount())
		}
	}
}

// AssertUnchanged checks a table still holds the content captured by Snapshot
func AssertUnchanged(t *testing.T, table *schema.Table, columns []string, rows []data.Row, context string) {
	t.Helper()
	AssertColumns(t, table, columns, context)
	expected := make([][]string, len(rows))
	for i, row := range rows {
		expected[i] = row
	}
	AssertRows(t, table, expected, context)
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertColumnNotFound checks that err reports a missing column
func AssertColumnNotFound(t *testing.T, err error, column, context string) {
	t.Helper()
	var colErr *errors.ColumnNotFoundError
	if !stderrors.As(err, &colErr) {
		t.Errorf("%s: expected ColumnNotFoundError, got: %v", context, err)
		return
	}
	if colErr.ColumnName != column {
		t.Errorf("%s: expected missing column %q, got %q", context, column, colErr.ColumnName)
	}
}
