// Package logging provides the concrete slog sinks that back the safe
// logging pipeline: a human-oriented console handler, a JSON file handler
// with size-based rotation and age-based retention, and the adapter that
// plugs an assembled *slog.Logger into the safelog registry.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing guarantees.
package logging
