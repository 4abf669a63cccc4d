package fault

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Record is one classified failure occurrence. All fields are fixed at
// construction; a Record is never mutated afterwards.
type Record struct {
	kind          Kind
	message       string
	cause         error
	correlationID string
	instanceID    string
	friendly      string
	stack         Stack
}

// Option adjusts a Record during construction.
type Option func(*Record)

// WithCause attaches the lower-level failure this Record wraps. The cause is
// owned by the Record and exposed through errors.Unwrap.
func WithCause(cause error) Option {
	return func(r *Record) { r.cause = cause }
}

// WithCorrelation sets the caller-supplied correlation identifier shared by
// every failure produced while handling one logical operation.
func WithCorrelation(id string) Option {
	return func(r *Record) { r.correlationID = id }
}

func newID() string { return uuid.NewString() }

// New constructs a Record of the given kind. Both message and cause may be
// absent; construction never fails. The instance identifier is generated
// here and the friendly message is assembled once from the kind's template
// plus the correlation and instance identifiers.
func New(kind Kind, message string, opts ...Option) *Record {
	r := &Record{
		kind:       kind,
		message:    message,
		instanceID: newID(),
		stack:      captureStack(1),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.friendly = fmt.Sprintf("%s CorrelationId: %s, InstanceId: %s. See %s.",
		kind.friendly, r.correlationID, r.instanceID, kind.MoreInfoURL)
	return r
}

// Error implements the error interface. The cause, when present, is appended
// so plain %v rendering still shows the whole chain.
func (r *Record) Error() string {
	switch {
	case r.message != "" && r.cause != nil:
		return r.kind.Type + ": " + r.message + ": " + r.cause.Error()
	case r.message != "":
		return r.kind.Type + ": " + r.message
	case r.cause != nil:
		return r.kind.Type + ": " + r.cause.Error()
	default:
		return r.kind.Type
	}
}

// Unwrap exposes the cause for errors.Is and errors.As.
func (r *Record) Unwrap() error { return r.cause }

// Kind returns the classification metadata fixed for this Record.
func (r *Record) Kind() Kind { return r.kind }

// Message returns the raw message text, which may be empty when a cause is
// present.
func (r *Record) Message() string { return r.message }

// CorrelationID returns the caller-supplied correlation identifier, empty
// when the caller provided none.
func (r *Record) CorrelationID() string { return r.correlationID }

// InstanceID returns the identifier unique to this occurrence.
func (r *Record) InstanceID() string { return r.instanceID }

// FriendlyMessage returns the operator-facing text assembled at
// construction. It is not meant to be shown verbatim to an end user.
func (r *Record) FriendlyMessage() string { return r.friendly }

// CallStack returns the frames captured where the Record was constructed.
func (r *Record) CallStack() Stack { return r.stack }

// KindOf returns the Kind of the nearest Record in err's chain. The second
// return reports whether any Record was found.
func KindOf(err error) (Kind, bool) {
	var r *Record
	if errors.As(err, &r) {
		return r.kind, true
	}
	return Kind{}, false
}

// Is reports whether err (or anything it wraps) is a Record of the given
// kind.
func Is(err error, kind Kind) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if r, ok := e.(*Record); ok && r.kind.Type == kind.Type {
			return true
		}
	}
	return false
}

// RetryMeaningful reports whether retrying the failed operation unchanged
// could plausibly succeed. Unclassified errors report false: without
// metadata there is no basis to encourage a retry.
func RetryMeaningful(err error) bool {
	if kind, ok := KindOf(err); ok {
		return kind.RetryMeaningful
	}
	return false
}
