// Package safelog delivers diagnostic text to an application-configured sink
// with a hard guarantee: a logging failure never reaches the caller.
//
// The pipeline is format → dispatch. Formatting turns a message or a fault
// chain into diagnostic text; dispatch hands the text to the sink held by a
// Registry. If anything in that path fails — formatting rejects its input,
// the registry was never configured, the sink returns an error or panics —
// the entry is redirected to an always-available fallback (a stderr stream
// plus a fixed development logger), and a failure of the fallback itself is
// discarded.
//
// Application code therefore calls Log without any error handling of its
// own; worst case the entry lands in the fallback sink.
package safelog
