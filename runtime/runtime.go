package runtime

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"go.uber.org/zap"

	parallelprobe "github.com/wippyai/parallel-probe"
	"github.com/wippyai/parallel-probe/errors"
)

// Runtime registers and invokes diagnostic probes.
// Safe for concurrent use.
type Runtime struct {
	probes *Registry
	logger *zap.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the runtime's logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a runtime with an empty registry.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		probes: NewRegistry(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a probe to the runtime.
// Must be called before the probe is invoked by name.
func (r *Runtime) Register(p parallelprobe.Probe) error {
	if err := r.probes.Add(p); err != nil {
		return err
	}
	r.logger.Debug("probe registered", zap.String("probe", p.Name()))
	return nil
}

// Probes returns the registered probes sorted by name.
func (r *Runtime) Probes() []Info {
	return r.probes.List()
}

// Result captures one probe invocation.
type Result struct {
	Probe    string
	Lines    []string
	Duration time.Duration
}

// Run invokes the named probe, streaming its lines to out as they are
// emitted. out may be nil to only capture lines in the result.
func (r *Runtime) Run(ctx context.Context, name string, out io.Writer) (*Result, error) {
	p, err := r.probes.Get(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled(name, err)
	}

	sink := parallelprobe.NewSink(out)

	r.logger.Info("probe starting", zap.String("probe", name))
	start := time.Now()

	if err := p.Run(ctx, sink); err != nil {
		r.logger.Error("probe failed",
			zap.String("probe", name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Canceled(name, err)
		}
		return nil, err
	}

	elapsed := time.Since(start)
	r.logger.Info("probe finished",
		zap.String("probe", name),
		zap.Duration("duration", elapsed),
		zap.Int("lines", sink.Len()))

	return &Result{
		Probe:    name,
		Lines:    sink.Lines(),
		Duration: elapsed,
	}, nil
}
