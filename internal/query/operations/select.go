package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/reltable/internal/domain/schema"
)

// PredicateFunc tests whether a row matches certain criteria
type PredicateFunc func(schema.Record) bool

// Select returns a new table with the same schema as table, holding exactly
// the rows whose cell under column equals value (case-sensitive, no trimming)
// Row order is preserved
func Select(table *schema.Table, column, value string) (*schema.Table, error) {
	idx, err := table.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	result := SelectWhere(table, func(rec schema.Record) bool {
		return rec.Cell(idx) == value
	})

	slog.Debug("selection completed",
		slog.String("table", table.Name),
		slog.String("column", column),
		slog.String("value", value),
		slog.Int("input_rows", table.Len()),
		slog.Int("result_rows", result.Len()),
	)

	return result, nil
}

// SelectWhere returns a new table with the same schema as table, holding
// the rows for which pred returns true, in their original order
func SelectWhere(table *schema.Table, pred PredicateFunc) *schema.Table {
	b := schema.NewBuilder(fmt.Sprintf("select(%s)", table.Name), table.Columns())
	table.Each(func(_ int, rec schema.Record) {
		if pred(rec) {
			// widths already match the shared schema
			_ = b.Append(rec.Values())
		}
	})
	return b.Build()
}
