package join

import (
	"fmt"

	"github.com/leengari/reltable/internal/domain/data"
	"github.com/leengari/reltable/internal/domain/schema"
)

// validateJoinCondition checks the join column exists on both sides and
// returns its position in each table
func validateJoinCondition(leftTable, rightTable *schema.Table, column string) (int, int, error) {
	if leftTable == nil {
		return 0, 0, fmt.Errorf("left table is nil")
	}
	if rightTable == nil {
		return 0, 0, fmt.Errorf("right table is nil")
	}

	leftIdx, err := leftTable.ColumnIndex(column)
	if err != nil {
		return 0, 0, err
	}
	rightIdx, err := rightTable.ColumnIndex(column)
	if err != nil {
		return 0, 0, err
	}
	return leftIdx, rightIdx, nil
}

// buildJoinIndex hashes every right row position by its key cell
// Positions are appended in scan order, so each bucket keeps the right
// table's relative row order
func buildJoinIndex(table *schema.Table, keyIdx int) map[string][]int {
	hashIndex := make(map[string][]int)
	table.Each(func(pos int, rec schema.Record) {
		key := rec.Cell(keyIdx)
		hashIndex[key] = append(hashIndex[key], pos)
	})
	return hashIndex
}

// mergeSchemas returns the output column list (left columns, then right
// columns whose name is not already used on the left) and the positions of
// the retained right columns
// The join key always shares its name with a left column, so it is never retained
func mergeSchemas(leftTable, rightTable *schema.Table) ([]string, []int) {
	columns := leftTable.Columns()
	var keep []int
	for i, col := range rightTable.Columns() {
		if leftTable.HasColumn(col) {
			continue
		}
		columns = append(columns, col)
		keep = append(keep, i)
	}
	return columns, keep
}

// combineRows merges a left row with the retained cells of a right row
func combineRows(left, right schema.Record, keep []int) data.Row {
	return data.JoinRows(left.Values(), right.Values(), keep)
}
