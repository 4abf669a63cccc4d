package safelog

import (
	"sync"

	"lantern/internal/fault"
)

// Registry holds the single sink the host application configured. The slot
// is guarded so runtime reconfiguration stays race-free against concurrent
// Log calls; a replacement simply wins from the next read onward, no
// lifecycle hooks run.
type Registry struct {
	mu   sync.RWMutex
	sink Sink
}

// NewRegistry returns an unconfigured registry. Reading it before Set is a
// configuration fault, which the safe logging path absorbs.
func NewRegistry() *Registry {
	return &Registry{}
}

// Set installs the sink. A nil sink is rejected with an invalid-argument
// fault. Last write wins.
func (r *Registry) Set(sink Sink) error {
	if sink == nil {
		return fault.New(fault.InvalidArgument, "logger sink must not be nil")
	}
	r.mu.Lock()
	r.sink = sink
	r.mu.Unlock()
	return nil
}

// Get returns the configured sink, or a configuration fault when Set was
// never called.
func (r *Registry) Get() (Sink, error) {
	r.mu.RLock()
	sink := r.sink
	r.mu.RUnlock()
	if sink == nil {
		return nil, fault.New(fault.Configuration, "no logger sink configured; call SetLogger during startup")
	}
	return sink, nil
}

var defaultRegistry = NewRegistry()

// SetLogger configures the process-wide default registry. The hosting
// application calls this once during startup, before concurrent logging
// begins; later replacements are legal and race-free.
func SetLogger(sink Sink) error {
	return defaultRegistry.Set(sink)
}

// DefaultRegistry exposes the process-wide registry for wiring a SafeLogger
// explicitly.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
