package config

import (
	"fmt"
	"strings"

	"github.com/leengari/reltable/internal/engine"
)

// FlagSteps builds a pipeline from the driver's shorthand flags
//
// left is always printed, and so is right when no select or join reads it.
// selectExpr ("Column=Value") filters right, joinColumn joins left with
// right, and projectCols ("a,b") projects the last result. Either table may
// be empty when no step needs it.
func FlagSteps(left, right, selectExpr, joinColumn, projectCols string) ([]engine.Step, error) {
	var steps []engine.Step
	last := left

	if left != "" {
		steps = append(steps, engine.Step{Title: left + " table", Op: engine.OpPrint, Table: left})
	}

	if right != "" && selectExpr == "" && joinColumn == "" {
		steps = append(steps, engine.Step{Title: right + " table", Op: engine.OpPrint, Table: right})
	}

	if selectExpr != "" {
		col, val, ok := strings.Cut(selectExpr, "=")
		if !ok || strings.TrimSpace(col) == "" {
			return nil, fmt.Errorf("select must look like Column=Value, got %q", selectExpr)
		}
		target := right
		if target == "" {
			target = left
		}
		steps = append(steps, engine.Step{
			Op:     engine.OpSelect,
			Table:  target,
			Column: strings.TrimSpace(col),
			Value:  strings.TrimSpace(val),
			As:     "selected",
		})
		last = "selected"
	}

	if joinColumn != "" {
		if left == "" || right == "" {
			return nil, fmt.Errorf("join needs both a left and a right table")
		}
		steps = append(steps, engine.Step{
			Title:  "joined data",
			Op:     engine.OpJoin,
			Table:  left,
			Right:  right,
			Column: joinColumn,
			As:     "joined",
		})
		last = "joined"
	}

	if projectCols != "" {
		var cols []string
		for _, c := range strings.Split(projectCols, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cols = append(cols, c)
			}
		}
		steps = append(steps, engine.Step{Op: engine.OpProject, Table: last, Columns: cols})
	}

	return steps, nil
}
