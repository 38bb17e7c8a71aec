package join

import "github.com/leengari/reltable/internal/domain/schema"

// JoinPredicate tests whether a joined row should be kept
// It sees the joined row under the output schema
type JoinPredicate func(schema.Record) bool

// Stats describes one join execution
type Stats struct {
	LeftRows           int
	RightRows          int
	Buckets            int // distinct key values on the right side
	ResultRows         int
	UnmatchedLeft      int // left rows whose key had no right match
	SkippedByPredicate int
}
