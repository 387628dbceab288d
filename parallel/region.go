package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxThreads returns the maximum number of workers a region would use by
// default. Always positive.
func MaxThreads() int {
	return runtime.GOMAXPROCS(0)
}

// Region is a reusable fork-join parallel region description.
// The zero value is not usable; construct with New.
type Region struct {
	threads int
}

// Option configures a Region.
type Option func(*Region)

// WithThreads forces the worker count of the region.
// Values below 1 are clamped to 1.
func WithThreads(n int) Option {
	return func(r *Region) {
		if n < 1 {
			n = 1
		}
		r.threads = n
	}
}

// New creates a region. The worker count defaults to MaxThreads().
func New(opts ...Option) *Region {
	r := &Region{threads: MaxThreads()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Threads returns the number of workers the region runs with.
func (r *Region) Threads() int {
	return r.threads
}

// Run executes body once per worker and blocks until every worker has
// returned (join barrier). Each worker receives a unique 0-based ID.
// The first non-nil error cancels the region's context and is returned
// after the join completes.
func (r *Region) Run(ctx context.Context, body func(ctx context.Context, w *Worker) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for id := 0; id < r.threads; id++ {
		w := &Worker{id: id, threads: r.threads}
		g.Go(func() error {
			return body(ctx, w)
		})
	}
	return g.Wait()
}

// Worker identifies one participant of a running region.
type Worker struct {
	id      int
	threads int
}

// ID returns the worker's 0-based index, unique within its region.
func (w *Worker) ID() int {
	return w.id
}

// Threads returns the total worker count of the enclosing region.
func (w *Worker) Threads() int {
	return w.threads
}

// For executes the calling worker's share of the iteration range [lo, hi).
// Every worker of a region must call For with the same bounds; collectively
// each index is executed exactly once, by exactly one worker. The range is
// split into contiguous chunks of ceil((hi-lo)/threads) indices; workers
// past the end of the range execute nothing.
func (w *Worker) For(lo, hi int, fn func(i int)) {
	total := hi - lo
	if total <= 0 {
		return
	}
	chunk := (total + w.threads - 1) / w.threads
	start := lo + w.id*chunk
	if start >= hi {
		return
	}
	end := start + chunk
	if end > hi {
		end = hi
	}
	for i := start; i < end; i++ {
		fn(i)
	}
}

// For executes fn for each i in [lo, hi) using a region of its own, sized
// to at most MaxThreads() workers and never wider than the range.
func For(ctx context.Context, lo, hi int, fn func(i int)) error {
	total := hi - lo
	if total <= 0 {
		return nil
	}
	threads := MaxThreads()
	if threads > total {
		threads = total
	}
	region := New(WithThreads(threads))
	return region.Run(ctx, func(_ context.Context, w *Worker) error {
		w.For(lo, hi, fn)
		return nil
	})
}
