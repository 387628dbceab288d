// Package parallelprobe provides diagnostics for thread-parallel execution
// inside host-loaded probe modules.
//
// The library validates that a host environment can fan work out across a
// bounded set of workers and join them again: the classic fork-join smoke
// test (announce the thread budget, have every worker identify itself,
// work-share a small fixed loop, report completion).
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	parallelprobe/       Root package with the Probe contract and line Sink
//	├── runtime/         Probe registry and host-side invocation
//	├── parallel/        Fork-join regions and work-sharing loops
//	├── smoke/           The thread-parallelism smoke-test probe
//	├── linkage/         Guest WebAssembly module linkage probe
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Register and run the smoke probe:
//
//	rt := runtime.New()
//	if err := rt.Register(smoke.New()); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := rt.Run(ctx, "smoke", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Lines), "lines in", result.Duration)
//
// # Thread Safety
//
// Runtime and Sink are safe for concurrent use. A Probe's Run method is
// invoked once per call and may emit from many workers at once; Sink
// serializes the emitted lines.
//
// # Output Model
//
// Probes produce unstructured, line-oriented human-readable text. Line
// interleaving across workers inside a parallel region is unspecified and
// varies between runs; only the properties the individual probes document
// (counts, attribution, final completion line) are stable.
package parallelprobe
