package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the category of a table engine failure so callers can
// branch on it without matching concrete types
type Kind string

const (
	KindUnknown           Kind = "unknown"
	KindColumnNotFound    Kind = "column_not_found"
	KindSchemaMismatch    Kind = "schema_mismatch"
	KindSourceUnavailable Kind = "source_unavailable"
	KindTableNotFound     Kind = "table_not_found"
)

// Sentinels matched by the typed errors below via errors.Is
var (
	ErrColumnNotFound    = stderrors.New("column not found")
	ErrSchemaMismatch    = stderrors.New("schema mismatch")
	ErrSourceUnavailable = stderrors.New("source unavailable")
	ErrTableNotFound     = stderrors.New("table not found")
)

// ColumnNotFoundError is returned when a referenced column is absent
// from a table's schema (select, project, join)
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	if e.TableName == "" {
		return fmt.Sprintf("column '%s' not found", e.ColumnName)
	}
	return fmt.Sprintf("column '%s' not found in table '%s'", e.ColumnName, e.TableName)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

func (e *ColumnNotFoundError) Kind() Kind { return KindColumnNotFound }

// SchemaMismatchError reports a record whose field count disagrees
// with the header's column count
type SchemaMismatchError struct {
	Source   string
	Line     int // 1-based line in the source, 0 if the row did not come from text
	Expected int
	Got      int
}

func (e *SchemaMismatchError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("schema mismatch in %s at line %d: expected %d fields, got %d",
			e.Source, e.Line, e.Expected, e.Got)
	}
	return fmt.Sprintf("schema mismatch in %s: expected %d fields, got %d",
		e.Source, e.Expected, e.Got)
}

func (e *SchemaMismatchError) Is(target error) bool { return target == ErrSchemaMismatch }

func (e *SchemaMismatchError) Kind() Kind { return KindSchemaMismatch }

// SourceUnavailableError wraps the underlying I/O failure of an input source
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

func (e *SourceUnavailableError) Is(target error) bool { return target == ErrSourceUnavailable }

func (e *SourceUnavailableError) Kind() Kind { return KindSourceUnavailable }

// TableNotFoundError is returned by the pipeline engine when a step
// references a table that was never loaded or registered
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table '%s' not found", e.Name)
}

func (e *TableNotFoundError) Is(target error) bool { return target == ErrTableNotFound }

func (e *TableNotFoundError) Kind() Kind { return KindTableNotFound }

// KindOf walks the error chain and returns the kind of the first typed
// engine error found
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if stderrors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}
