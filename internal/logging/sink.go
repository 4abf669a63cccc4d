package logging

import (
	"context"
	"log/slog"

	"lantern/internal/config"
	"lantern/internal/fault"
	"lantern/internal/safelog"
)

// SlogSink adapts an assembled *slog.Logger to the safelog.Sink capability,
// mapping severities onto slog levels and tagging each entry with
// correlation fields from the context.
type SlogSink struct {
	logger *slog.Logger
}

var _ safelog.Sink = (*SlogSink)(nil)

// NewSlogSink wraps logger. A nil logger yields a sink that discards
// everything rather than one that fails.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = NewNop()
	}
	return &SlogSink{logger: logger}
}

// Log delivers pre-formatted text at the mapped level. The error return
// exists for the Sink contract; slog delivery surfaces failures through the
// handler, so this implementation always succeeds once the call returns.
func (s *SlogSink) Log(ctx context.Context, severity safelog.Severity, text string) error {
	s.logger.Log(ctx, severity.Slog(), text, Args(ContextFields(ctx)...)...)
	return nil
}

// ConfigureDefault builds a logger from config and installs it as the
// process-wide safelog sink. This is the bootstrap call hosting
// applications make during startup, before concurrent logging begins.
func ConfigureDefault(cfg *config.Config) (*slog.Logger, error) {
	logger, err := NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := safelog.SetLogger(NewSlogSink(logger)); err != nil {
		return nil, err
	}
	return logger, nil
}

// FaultAttrs renders a fault record as standardized structured fields, for
// components that log through slog directly rather than via safelog.
func FaultAttrs(rec *fault.Record) []Attr {
	if rec == nil {
		return nil
	}
	return []Attr{
		String(FieldFaultType, rec.Kind().Type),
		String(FieldCorrelationID, rec.CorrelationID()),
		String(FieldInstanceID, rec.InstanceID()),
		Bool("retry_meaningful", rec.Kind().RetryMeaningful),
	}
}
