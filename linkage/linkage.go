// Package linkage implements the guest-module linkage probe.
//
// The probe proves that the host can load a dynamically provided guest
// WebAssembly module and call into it from the workers of a parallel
// region: compile a minimal guest, give every worker its own instance
// (instances are not goroutine-safe), and work-share a fixed set of guest
// calls across the workers.
package linkage

import (
	"context"

	"github.com/tetratelabs/wazero"

	parallelprobe "github.com/wippyai/parallel-probe"
	"github.com/wippyai/parallel-probe/errors"
	"github.com/wippyai/parallel-probe/parallel"
)

// Iterations is the number of work-shared guest calls.
const Iterations = 6

// guestModule is a minimal hand-assembled core WebAssembly module that
// exports add(i32, i32) -> i32.
var guestModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version 1
	// type section: (i32, i32) -> i32
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	// function section: one function of type 0
	0x03, 0x02, 0x01, 0x00,
	// export section: "add" -> func 0
	0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00,
	// code section: local.get 0, local.get 1, i32.add
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b,
}

// Probe is the linkage probe. Construct with New.
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

// New creates the linkage probe.
func New(opts ...Option) *Probe {
	p := &Probe{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Probe) Name() string {
	return "linkage"
}

func (p *Probe) Describe() string {
	return "loads a guest WebAssembly module and calls it from parallel workers"
}

// Run compiles the embedded guest module, instantiates it once per worker,
// and work-shares Iterations guest calls across the region. One line is
// emitted per guest call plus a leading compile line and a trailing
// verification line.
func (p *Probe) Run(ctx context.Context, sink *parallelprobe.Sink) error {
	threads := p.threads
	if threads == 0 {
		threads = parallel.MaxThreads()
	}

	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, guestModule)
	if err != nil {
		return errors.Load("compile guest module", err)
	}

	sink.Emit("Guest module compiled: %d bytes, %d threads", len(guestModule), threads)

	region := parallel.New(parallel.WithThreads(threads))
	err = region.Run(ctx, func(ctx context.Context, w *parallel.Worker) error {
		// Anonymous module name so every worker can hold its own instance
		// within the shared runtime.
		mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
		if err != nil {
			return errors.Link("instantiate guest", err)
		}
		defer mod.Close(ctx)

		add := mod.ExportedFunction("add")
		if add == nil {
			return errors.Link("guest export add missing", nil)
		}

		var callErr error
		w.For(0, Iterations, func(i int) {
			if callErr != nil {
				return
			}
			results, err := add.Call(ctx, uint64(w.ID()), uint64(i))
			if err != nil {
				callErr = errors.Link("call guest add", err)
				return
			}
			sink.Emit("Guest add from thread %d: %d + %d = %d", w.ID(), w.ID(), i, uint32(results[0]))
		})
		return callErr
	})
	if err != nil {
		return err
	}

	sink.Emit("Guest linkage verified")
	return nil
}
