package projection

import (
	"fmt"
	"log/slog"

	"github.com/leengari/reltable/internal/domain/data"
	"github.com/leengari/reltable/internal/domain/schema"
)

// Project returns a new table whose schema is exactly columns, in the given
// order, with every input row reduced and reordered to match
// Fails with a ColumnNotFoundError if any requested column is absent
func Project(table *schema.Table, columns []string) (*schema.Table, error) {
	return Apply(table, FromNames(columns...))
}

// Apply evaluates proj against table and returns the projected table
// A nil or SelectAll projection yields a copy of table
func Apply(table *schema.Table, proj *Projection) (*schema.Table, error) {
	name := fmt.Sprintf("project(%s)", table.Name)

	if proj == nil || proj.SelectAll {
		return schema.NewTable(name, table.Columns(), table.Rows())
	}

	indices, err := resolve(table, proj)
	if err != nil {
		return nil, err
	}

	outCols := make([]string, len(proj.Columns))
	for i, colRef := range proj.Columns {
		outCols[i] = colRef.OutputName()
	}

	b := schema.NewBuilder(name, outCols)
	table.Each(func(_ int, rec schema.Record) {
		// indices has one entry per output column
		_ = b.Append(ProjectRecord(rec, indices))
	})
	result := b.Build()

	slog.Debug("projection completed",
		slog.String("table", table.Name),
		slog.Any("columns", outCols),
		slog.Int("rows", result.Len()),
	)

	return result, nil
}

// ProjectRecord builds a new row from the cells of rec at indices
func ProjectRecord(rec schema.Record, indices []int) data.Row {
	projected := make(data.Row, len(indices))
	for i, idx := range indices {
		projected[i] = rec.Cell(idx)
	}
	return projected
}
