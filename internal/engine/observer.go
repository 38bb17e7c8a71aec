package engine

import "time"

// EventType represents different lifecycle phases of a pipeline run
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventStepStart EventType = "step_start"
	EventStepEnd   EventType = "step_end"
	EventStepError EventType = "step_error"
	EventRunEnd    EventType = "run_end"
	EventRunError  EventType = "run_error"
)

// Event represents a lifecycle event in pipeline execution
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run identifier for tracing
	Step      int         // 1-based step number, 0 for run-level events
	Op        Op          // Operation of the step, empty for run-level events
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., step count, result rows, error)
}

// Observer interface for event subscribers
// Observers receive events at every step boundary
type Observer interface {
	OnEvent(event Event)
}
