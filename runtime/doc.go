// Package runtime provides the host-side API for registering and invoking
// diagnostic probes.
//
// Probes are registered by name before any invocation, then invoked with a
// context and an output writer:
//
//	rt := runtime.New(runtime.WithLogger(logger))
//	if err := rt.Register(smoke.New()); err != nil {
//	    return err
//	}
//	result, err := rt.Run(ctx, "smoke", os.Stdout)
//
// The runtime owns no probe state; a probe may be invoked any number of
// times and from concurrent callers, each invocation getting its own sink.
package runtime
