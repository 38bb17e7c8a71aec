package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/leengari/reltable/internal/domain/errors"
	"github.com/leengari/reltable/internal/domain/schema"
	"github.com/leengari/reltable/internal/query/operations"
	"github.com/leengari/reltable/internal/query/operations/join"
	"github.com/leengari/reltable/internal/query/operations/projection"
)

var tracer = otel.Tracer("github.com/leengari/reltable/internal/engine")

// Result is the output of one pipeline step
type Result struct {
	Step     Step
	Table    *schema.Table
	Duration time.Duration
}

// Title returns the banner for the result
func (r Result) Title() string {
	return r.Step.Label()
}

// Engine runs pipelines of relational operations over a catalog of named tables
// An Engine is not safe for concurrent use
type Engine struct {
	tables    map[string]*schema.Table
	observers []Observer
}

// New creates a new Engine over the given tables
func New(tables map[string]*schema.Table) *Engine {
	catalog := make(map[string]*schema.Table, len(tables))
	for name, t := range tables {
		catalog[name] = t
	}
	return &Engine{
		tables:    catalog,
		observers: make([]Observer, 0),
	}
}

// Register adds or replaces a named table
func (e *Engine) Register(name string, table *schema.Table) {
	e.tables[name] = table
}

// Table returns the named table
func (e *Engine) Table(name string) (*schema.Table, error) {
	t, ok := e.tables[name]
	if !ok {
		return nil, &errors.TableNotFoundError{Name: name}
	}
	return t, nil
}

// ListTables returns the names of all registered tables, sorted
func (e *Engine) ListTables() []string {
	names := make([]string, 0, len(e.tables))
	for name := range e.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes steps in order and returns one result per step
//
// Results named with As become visible to later steps, and are added to the
// catalog only if every step succeeds. On failure no results are returned.
func (e *Engine) Run(ctx context.Context, steps []Step) ([]Result, error) {
	runID := uuid.New().String()

	ctx, span := tracer.Start(ctx, "engine.Run")
	defer span.End()
	span.SetAttributes(attribute.String("run_id", runID), attribute.Int("steps", len(steps)))

	e.notify(Event{Type: EventRunStart, RunID: runID, Data: len(steps)})

	staged := make(map[string]*schema.Table)
	lookup := func(name string) (*schema.Table, error) {
		if t, ok := staged[name]; ok {
			return t, nil
		}
		return e.Table(name)
	}

	results := make([]Result, 0, len(steps))
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, e.fail(span, runID, i, err)
		}

		res, err := e.runStep(ctx, runID, i+1, step, lookup)
		if err != nil {
			return nil, e.fail(span, runID, i, fmt.Errorf("step %d (%s): %w", i+1, step.Label(), err))
		}
		if step.As != "" {
			staged[step.As] = res.Table
		}
		results = append(results, res)
	}

	for name, t := range staged {
		e.tables[name] = t
	}

	e.notify(Event{Type: EventRunEnd, RunID: runID, Data: len(results)})
	slog.Debug("pipeline completed",
		slog.String("run_id", runID),
		slog.Int("steps", len(results)),
	)

	return results, nil
}

// fail closes a run that stopped after completed steps
func (e *Engine) fail(span trace.Span, runID string, completed int, err error) error {
	span.SetStatus(codes.Error, err.Error())
	e.notify(Event{Type: EventRunError, RunID: runID, Data: map[string]interface{}{
		"error":     err.Error(),
		"kind":      errors.KindOf(err),
		"completed": completed,
	}})
	return err
}

func (e *Engine) runStep(
	ctx context.Context,
	runID string,
	n int,
	step Step,
	lookup func(string) (*schema.Table, error),
) (Result, error) {
	_, span := tracer.Start(ctx, "engine.step", trace.WithAttributes(
		attribute.Int("step", n),
		attribute.String("op", string(step.Op)),
		attribute.String("table", step.Table),
	))
	defer span.End()

	e.notify(Event{Type: EventStepStart, RunID: runID, Step: n, Op: step.Op, Data: step.Label()})
	start := time.Now()

	table, err := execute(step, lookup)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		e.notify(Event{Type: EventStepError, RunID: runID, Step: n, Op: step.Op, Data: map[string]interface{}{
			"error": err.Error(),
			"kind":  errors.KindOf(err),
		}})
		return Result{}, err
	}

	res := Result{Step: step, Table: table, Duration: time.Since(start)}
	span.SetAttributes(attribute.Int("rows", table.Len()))
	e.notify(Event{Type: EventStepEnd, RunID: runID, Step: n, Op: step.Op, Data: map[string]interface{}{
		"rows_returned": table.Len(),
		"columns":       table.ColumnCount(),
		"duration":      res.Duration,
	}})

	return res, nil
}

// execute dispatches one step to its operator
func execute(step Step, lookup func(string) (*schema.Table, error)) (*schema.Table, error) {
	if err := step.Validate(); err != nil {
		return nil, err
	}

	input, err := lookup(step.Table)
	if err != nil {
		return nil, err
	}

	switch step.Op {
	case OpPrint:
		return input, nil
	case OpSelect:
		return operations.Select(input, step.Column, step.Value)
	case OpProject:
		return projection.Project(input, step.Columns)
	case OpJoin:
		right, err := lookup(step.Right)
		if err != nil {
			return nil, err
		}
		return join.ExecuteJoin(input, right, step.Column)
	}
	return nil, fmt.Errorf("unknown op %q", step.Op)
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
