package safelog

import (
	"errors"
	"fmt"
	"strings"

	"lantern/internal/fault"
)

// maxChainDepth bounds cause-chain recursion. The chain model does not
// guarantee acyclicity, so rendering stops here instead of recursing until
// the stack blows.
const maxChainDepth = 32

// FormatMessage builds the diagnostic text for one log entry. At least one
// of message (non-empty) or err must be provided; otherwise an
// invalid-argument fault is returned. When err is present the full chain
// rendering wins and message is ignored.
func FormatMessage(message string, err error) (string, error) {
	if err != nil {
		return FormatChain(err), nil
	}
	if message == "" {
		return "", fault.New(fault.InvalidArgument, "format requires a message or an error")
	}
	return message, nil
}

// FormatChain renders err and every cause beneath it. It never fails: a nil
// err is replaced with a synthesized internal fault so the caller always
// gets usable text, even when misusing the API.
//
// Each level shows the runtime type name and raw message; fault Records add
// their classification fields and captured stack. Causes are appended
// recursively under an "inner:" marker.
func FormatChain(err error) string {
	if err == nil {
		err = fault.New(fault.Internal, "chain formatting requested for an absent error")
	}
	var b strings.Builder
	writeChain(&b, err, 0)
	return b.String()
}

func writeChain(b *strings.Builder, err error, depth int) {
	if depth > 0 {
		b.WriteString("\ninner: ")
	}
	fmt.Fprintf(b, "%T: %s", err, rawMessage(err))

	if rec, ok := err.(*fault.Record); ok {
		fmt.Fprintf(b, "\n  type=%s retry_meaningful=%t correlation_id=%s instance_id=%s",
			rec.Kind().Type, rec.Kind().RetryMeaningful, rec.CorrelationID(), rec.InstanceID())
		if stack := rec.CallStack(); len(stack) > 0 {
			b.WriteString("\n  stack:\n")
			b.WriteString(stack.String())
		}
	}

	cause := errors.Unwrap(err)
	if cause == nil {
		return
	}
	if depth+1 >= maxChainDepth {
		fmt.Fprintf(b, "\ninner: (cause chain truncated after %d levels)", maxChainDepth)
		return
	}
	writeChain(b, cause, depth+1)
}

// rawMessage returns the error's own text without repeating the causes that
// the chain walk will render on their own lines.
func rawMessage(err error) string {
	if rec, ok := err.(*fault.Record); ok {
		if msg := rec.Message(); msg != "" {
			return msg
		}
		return rec.Kind().Type
	}
	msg := err.Error()
	if cause := errors.Unwrap(err); cause != nil {
		if trimmed, found := strings.CutSuffix(msg, ": "+cause.Error()); found {
			return trimmed
		}
	}
	return msg
}
