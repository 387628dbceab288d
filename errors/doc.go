// Package errors provides structured error types for the parallel-probe library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), and may name the probe they relate to plus a cause chain.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseRun, "smoke")
//	err := errors.Link("instantiate guest", cause)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind.
package errors
