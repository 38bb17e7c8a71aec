package join

import (
	"fmt"
	"log/slog"

	"github.com/leengari/reltable/internal/domain/schema"
)

// ExecuteJoin performs an inner equi-join of leftTable and rightTable on the
// column both tables name column, using a hash join
//
// The output schema is every left column followed by the right columns whose
// names do not already appear on the left. Rows are emitted per left row in
// left order, and for each left row its matches in right order. Left rows
// without a match are dropped.
func ExecuteJoin(leftTable, rightTable *schema.Table, column string) (*schema.Table, error) {
	result, _, err := ExecuteJoinWhere(leftTable, rightTable, column, nil)
	return result, err
}

// ExecuteJoinWhere is ExecuteJoin with an optional predicate applied during the
// probe phase, before a joined row is added to the result
func ExecuteJoinWhere(
	leftTable *schema.Table,
	rightTable *schema.Table,
	column string,
	pred JoinPredicate,
) (*schema.Table, Stats, error) {
	leftIdx, rightIdx, err := validateJoinCondition(leftTable, rightTable, column)
	if err != nil {
		return nil, Stats{}, err
	}

	slog.Debug("Starting INNER JOIN",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.String("column", column),
		slog.Int("left_rows", leftTable.Len()),
		slog.Int("right_rows", rightTable.Len()),
	)

	// Build phase: hash the right table on the join column
	hashIndex := buildJoinIndex(rightTable, rightIdx)

	columns, keep := mergeSchemas(leftTable, rightTable)
	b := schema.NewBuilder(fmt.Sprintf("%s⋈%s", leftTable.Name, rightTable.Name), columns)
	outSchema := schema.NewTableSchema("", columns)

	stats := Stats{
		LeftRows:  leftTable.Len(),
		RightRows: rightTable.Len(),
		Buckets:   len(hashIndex),
	}

	// Probe phase: walk the left table in order
	var probeErr error
	leftTable.Each(func(_ int, leftRec schema.Record) {
		if probeErr != nil {
			return
		}
		rightPositions, found := hashIndex[leftRec.Cell(leftIdx)]
		if !found {
			stats.UnmatchedLeft++
			return // No matches (INNER JOIN excludes)
		}

		for _, rightPos := range rightPositions {
			joined := combineRows(leftRec, rightTable.Record(rightPos), keep)

			if pred != nil && !pred(outSchema.Record(joined)) {
				stats.SkippedByPredicate++
				continue
			}

			if err := b.Append(joined); err != nil {
				probeErr = err
				return
			}
		}
	})
	if probeErr != nil {
		return nil, Stats{}, probeErr
	}

	result := b.Build()
	stats.ResultRows = result.Len()

	slog.Debug("INNER JOIN completed",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.Int("result_rows", stats.ResultRows),
		slog.Int("unmatched_left", stats.UnmatchedLeft),
		slog.Int("filtered_by_predicate", stats.SkippedByPredicate),
	)

	return result, stats, nil
}
