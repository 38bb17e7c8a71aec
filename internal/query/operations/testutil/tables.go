package testutil

import (
	"testing"

	"github.com/leengari/reltable/internal/domain/data"
	"github.com/leengari/reltable/internal/domain/schema"
)

// MustTable builds a table from rows of cells and fails the test on error
func MustTable(t *testing.T, name string, columns []string, rows ...[]string) *schema.Table {
	t.Helper()
	dataRows := make([]data.Row, len(rows))
	for i, cells := range rows {
		dataRows[i] = data.NewRow(cells...)
	}
	table, err := schema.NewTable(name, columns, dataRows)
	if err != nil {
		t.Fatalf("building table %s: %v", name, err)
	}
	return table
}

// CreatePartsTable creates the left-hand parts table: [PartNo, Name]
func CreatePartsTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "parts", []string{"PartNo", "Name"},
		[]string{"1", "Bolt"},
		[]string{"2", "Screw"},
	)
}

// CreateDeptTable creates the right-hand table: [PartNo, Dept]
// PartNo 1 appears twice, PartNo 3 has no counterpart in parts
func CreateDeptTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "depts", []string{"PartNo", "Dept"},
		[]string{"1", "23"},
		[]string{"1", "07"},
		[]string{"3", "12"},
	)
}

// CreateBuyersTable creates a buyers table shaped like the sample data
func CreateBuyersTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "buyers", []string{"PartNo", "Buyer", "Qty"},
		[]string{"100", "Acme", "5"},
		[]string{"200", "Globex", "12"},
		[]string{"100", "Initech", "1"},
		[]string{"400", "Umbrella", "3"},
	)
}

// CreateSuppliersTable creates a suppliers table shaped like the sample data
// It shares both PartNo and Qty with the buyers table
func CreateSuppliersTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "suppliers", []string{"Supplier", "PartNo", "Dept", "Qty"},
		[]string{"Hooli", "100", "23", "50"},
		[]string{"Vandelay", "200", "07", "20"},
		[]string{"Soylent", "100", "23", "8"},
		[]string{"Tyrell", "300", "12", "1"},
	)
}

// Snapshot captures a table's content so callers can check it was not mutated
func Snapshot(table *schema.Table) ([]string, []data.Row) {
	return table.Columns(), table.Rows()
}
