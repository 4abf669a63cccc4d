package safelog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"lantern/internal/fault"
)

// SafeLogger routes entries through a Registry with the no-throw guarantee:
// Log has no error return and never panics regardless of what the sink, the
// formatter, or the fallback does.
type SafeLogger struct {
	registry *Registry
	fallback io.Writer
	devLog   *slog.Logger
}

// Option adjusts a SafeLogger during construction; used mainly by tests to
// observe the fallback path.
type Option func(*SafeLogger)

// WithFallbackWriter replaces the stderr stream used on the fallback path.
func WithFallbackWriter(w io.Writer) Option {
	return func(l *SafeLogger) { l.fallback = w }
}

// WithFallbackLogger replaces the fixed development logger used on the
// fallback path.
func WithFallbackLogger(logger *slog.Logger) Option {
	return func(l *SafeLogger) { l.devLog = logger }
}

// New builds a SafeLogger over the given registry. A nil registry falls back
// to the process-wide default so construction, like everything else here,
// cannot fail.
func New(registry *Registry, opts ...Option) *SafeLogger {
	if registry == nil {
		registry = defaultRegistry
	}
	l := &SafeLogger{
		registry: registry,
		fallback: os.Stderr,
		devLog:   newDevLogger(os.Stderr),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// newDevLogger builds the fixed development-mode logger that backs the
// fallback path. It is deliberately plain: stdlib text handler, debug level,
// no configurable parts.
func newDevLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Log formats the entry and delivers it to the configured sink. It never
// returns an error and never panics: any failure along the way redirects
// the entry to the fallback path, and a fallback failure is discarded.
// No retries happen at this layer.
func (l *SafeLogger) Log(ctx context.Context, severity Severity, message string, err error) {
	text, failure := l.attempt(ctx, severity, message, err)
	if failure == nil {
		return
	}
	l.emitFallback(ctx, severity, failure, text, message, err)
}

// attempt runs the primary path: format, resolve the sink, dispatch. It
// converts panics into internal faults so the caller sees every failure as
// a plain error value.
func (l *SafeLogger) attempt(ctx context.Context, severity Severity, message string, err error) (text string, failure error) {
	defer func() {
		if p := recover(); p != nil {
			failure = fault.FromContext(ctx, fault.Internal, fmt.Sprintf("panic while logging: %v", p))
		}
	}()

	text, failure = FormatMessage(message, err)
	if failure != nil {
		return "", failure
	}
	sink, getErr := l.registry.Get()
	if getErr != nil {
		return text, getErr
	}
	if sinkErr := sink.Log(ctx, severity, text); sinkErr != nil {
		return text, fault.FromContext(ctx, fault.Transient, "configured logger sink failed", fault.WithCause(sinkErr))
	}
	return text, nil
}

// emitFallback writes the internal failure first, then the original entry,
// to the stderr stream and the development logger. Everything in here is
// best-effort: a panic or write error is swallowed so the no-throw contract
// holds even when the fallback itself misbehaves.
func (l *SafeLogger) emitFallback(ctx context.Context, severity Severity, failure error, text, message string, err error) {
	defer func() {
		_ = recover()
	}()

	if text == "" {
		// Formatting itself failed; reconstruct the original entry as best
		// we can without calling back into the path that just broke.
		text = message
		if err != nil {
			text = FormatChain(err)
		}
	}

	fmt.Fprintf(l.fallback, "lantern: logging failed: %s\n", FormatChain(failure))
	fmt.Fprintf(l.fallback, "lantern: original entry [%s]: %s\n", severity, text)

	if l.devLog != nil {
		l.devLog.Log(ctx, slog.LevelError, "logging pipeline failure", slog.Any("failure", failure))
		l.devLog.Log(ctx, severity.Slog(), text)
	}
}

var defaultLogger = New(nil)

// Log routes through the process-wide SafeLogger and the default registry.
// This is the surface most application code uses.
func Log(ctx context.Context, severity Severity, message string, err error) {
	defaultLogger.Log(ctx, severity, message, err)
}
