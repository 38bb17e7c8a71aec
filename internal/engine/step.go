package engine

import (
	"fmt"
	"strings"
)

// Op names a pipeline operation
type Op string

const (
	OpPrint   Op = "print"
	OpSelect  Op = "select"
	OpProject Op = "project"
	OpJoin    Op = "join"
)

// Step is one operation of a pipeline
//
// Table is the input (the left input for joins). As, when set, registers the
// result under that name so later steps can refer to it.
type Step struct {
	Title   string   `yaml:"title,omitempty" jsonschema:"description=Banner printed above the result"`
	Op      Op       `yaml:"op" jsonschema:"enum=print,enum=select,enum=project,enum=join"`
	Table   string   `yaml:"table" jsonschema:"description=Input table (left side for join)"`
	Right   string   `yaml:"right,omitempty" jsonschema:"description=Right-hand table for join"`
	Column  string   `yaml:"column,omitempty" jsonschema:"description=Column for select and join"`
	Value   string   `yaml:"value,omitempty" jsonschema:"description=Value matched by select"`
	Columns []string `yaml:"columns,omitempty" jsonschema:"description=Output columns for project"`
	As      string   `yaml:"as,omitempty" jsonschema:"description=Register the result under this name"`
}

// Validate checks the step carries the arguments its op needs
func (s Step) Validate() error {
	if s.Table == "" {
		return fmt.Errorf("%s step requires a table", s.Op)
	}
	switch s.Op {
	case OpPrint:
	case OpSelect:
		if s.Column == "" {
			return fmt.Errorf("select step requires a column")
		}
	case OpProject:
		if len(s.Columns) == 0 {
			return fmt.Errorf("project step requires at least one column")
		}
	case OpJoin:
		if s.Right == "" {
			return fmt.Errorf("join step requires a right table")
		}
		if s.Column == "" {
			return fmt.Errorf("join step requires a column")
		}
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// Label returns the step's title, or a description built from its arguments
func (s Step) Label() string {
	if s.Title != "" {
		return s.Title
	}
	switch s.Op {
	case OpSelect:
		return fmt.Sprintf("select %s where %s = %s", s.Table, s.Column, s.Value)
	case OpProject:
		return fmt.Sprintf("project %s on %s", s.Table, strings.Join(s.Columns, ", "))
	case OpJoin:
		return fmt.Sprintf("join %s and %s on %s", s.Table, s.Right, s.Column)
	default:
		return fmt.Sprintf("%s %s", s.Op, s.Table)
	}
}

// DemoSteps reproduces the classic buyers/suppliers walkthrough:
// print the buyers, pick suppliers in department 23, join both on PartNo
func DemoSteps(buyers, suppliers string) []Step {
	return []Step{
		{Title: buyers + " table", Op: OpPrint, Table: buyers},
		{Title: suppliers + " in dept 23", Op: OpSelect, Table: suppliers, Column: "Dept", Value: "23"},
		{Title: "joined data", Op: OpJoin, Table: buyers, Right: suppliers, Column: "PartNo"},
	}
}
