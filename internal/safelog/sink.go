package safelog

import "context"

// Sink is the logger capability the host application supplies. Text arrives
// pre-formatted; the sink only routes it. Implementations may block on I/O,
// so ctx is passed through for whatever cancellation the sink honors.
type Sink interface {
	Log(ctx context.Context, severity Severity, text string) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ctx context.Context, severity Severity, text string) error

func (f SinkFunc) Log(ctx context.Context, severity Severity, text string) error {
	return f(ctx, severity, text)
}
