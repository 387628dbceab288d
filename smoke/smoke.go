// Package smoke implements the thread-parallelism smoke-test probe.
//
// The probe reports the thread budget, runs a fork-join region in which
// every worker announces itself, work-shares a fixed six-iteration loop
// across the workers, and emits a completion line after the join barrier.
// It carries no algorithmic content; its purpose is to prove that the
// parallel engine is wired into a host-loaded module correctly.
package smoke

import (
	"context"

	parallelprobe "github.com/wippyai/parallel-probe"
	"github.com/wippyai/parallel-probe/errors"
	"github.com/wippyai/parallel-probe/parallel"
)

// Iterations is the size of the work-shared loop.
const Iterations = 6

// Probe is the smoke-test probe. Construct with New.
type Probe struct {
	threads int
}

// Option configures the probe.
type Option func(*Probe)

// WithThreads forces the width of the parallel region instead of using the
// runtime default. Values below 1 are clamped to 1.
func WithThreads(n int) Option {
	return func(p *Probe) {
		if n < 1 {
			n = 1
		}
		p.threads = n
	}
}

// New creates the smoke probe.
func New(opts ...Option) *Probe {
	p := &Probe{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Probe) Name() string {
	return "smoke"
}

func (p *Probe) Describe() string {
	return "fork-join smoke test: thread budget, per-worker hello, work-shared loop"
}

// Run emits, in order: the thread count line, one identity line per worker,
// one work line per loop index (each index processed by exactly one worker),
// and a final completion line once every worker has rejoined. Interleaving
// of the identity and work lines across workers is unspecified.
func (p *Probe) Run(ctx context.Context, sink *parallelprobe.Sink) error {
	threads := p.threads
	if threads == 0 {
		threads = parallel.MaxThreads()
	}

	sink.Emit("Number of threads: %d", threads)

	region := parallel.New(parallel.WithThreads(threads))
	err := region.Run(ctx, func(_ context.Context, w *parallel.Worker) error {
		sink.Emit("Hello World from master thread %d", w.ID())

		w.For(0, Iterations, func(i int) {
			sink.Emit("Hello World from thread %d, %d", w.ID(), i)
		})
		return nil
	})
	if err != nil {
		return errors.Wrap(errors.PhaseRun, errors.KindInternal, err, "parallel region")
	}

	sink.Emit("Finished")
	return nil
}
