// Package tracing wires OpenTelemetry spans into the application's slog output.
package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SlogExporter is a span exporter that writes every finished span as a
// Debug log record
type SlogExporter struct {
	logger *slog.Logger
}

// NewSlogExporter creates an exporter writing to logger
func NewSlogExporter(logger *slog.Logger) *SlogExporter {
	return &SlogExporter{logger: logger}
}

// ExportSpans implements sdktrace.SpanExporter
func (e *SlogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		attrs := []slog.Attr{
			slog.String("span", span.Name()),
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.Duration("duration", span.EndTime().Sub(span.StartTime())),
		}
		for _, kv := range span.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}

		level := slog.LevelDebug
		if span.Status().Code == codes.Error {
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("error", span.Status().Description))
		}
		e.logger.LogAttrs(ctx, level, "span finished", attrs...)
	}
	return nil
}

// Shutdown implements sdktrace.SpanExporter
func (e *SlogExporter) Shutdown(context.Context) error {
	return nil
}

// Setup installs a global tracer provider exporting to logger when enabled
// The returned function flushes and shuts the provider down
func Setup(logger *slog.Logger, enabled bool) func(context.Context) error {
	if !enabled {
		return func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(NewSlogExporter(logger)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
