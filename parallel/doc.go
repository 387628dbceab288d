// Package parallel provides fork-join parallel regions with work-sharing
// loops over a bounded set of workers.
//
// A Region starts one goroutine per worker and blocks until all of them
// rejoin. Inside the region each worker has a unique 0-based ID, and a
// work-sharing loop partitions an iteration range across the workers so
// that every index is executed exactly once:
//
//	region := parallel.New()
//	err := region.Run(ctx, func(ctx context.Context, w *parallel.Worker) error {
//	    w.For(0, len(items), func(i int) {
//	        process(items[i])
//	    })
//	    return nil
//	})
//
// The worker count defaults to the maximum the runtime would schedule and
// can be forced with WithThreads. No ordering is guaranteed between workers;
// the iteration space is partitioned, not shared, so loop bodies need no
// locking of their own.
package parallel
