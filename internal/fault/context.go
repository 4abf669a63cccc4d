package fault

import "context"

type contextKey string

const correlationKey contextKey = "correlation_id"

// ContextWithCorrelation annotates ctx with the correlation identifier for
// the logical operation in flight.
func ContextWithCorrelation(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationKey, id)
}

// CorrelationFromContext extracts the correlation identifier if present.
func CorrelationFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if id, ok := ctx.Value(correlationKey).(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// FromContext builds a Record whose correlation identifier comes from ctx
// when one is present.
func FromContext(ctx context.Context, kind Kind, message string, opts ...Option) *Record {
	if id, ok := CorrelationFromContext(ctx); ok {
		opts = append(opts, WithCorrelation(id))
	}
	return New(kind, message, opts...)
}

// NewCorrelationID generates a fresh correlation identifier for the start of
// a logical operation.
func NewCorrelationID() string {
	return newID()
}
