package engine

import (
	"context"
	"log/slog"
)

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent implements the Observer interface
// It logs each event with structured fields for easy filtering and analysis
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	if event.Type == EventStepError || event.Type == EventRunError {
		level = slog.LevelWarn
	}
	lo.logger.Log(context.Background(), level, "pipeline_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"step", event.Step,
		"op", event.Op,
		"data", event.Data,
	)
}
