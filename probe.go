package parallelprobe

import "context"

// Probe is the interface for host-loaded diagnostic modules.
// A probe is invoked by the runtime with an opaque invocation context and a
// sink for its line-oriented output; it returns an error only when the
// diagnostic could not run at all.
type Probe interface {
	// Name returns the identifier the probe is registered and invoked by.
	Name() string

	// Describe returns a one-line human-readable summary.
	Describe() string

	// Run executes the diagnostic, emitting output through sink.
	// Run may emit from multiple goroutines concurrently.
	Run(ctx context.Context, sink *Sink) error
}
