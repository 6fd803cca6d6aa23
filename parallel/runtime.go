package parallel

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Runtime is a fork-join executor with a fixed worker count.
// A Runtime holds no goroutines between regions and is safe to share,
// but regions must not be nested.
type Runtime struct {
	workers int   // goroutines spawned per region
	hooks   Hooks // nil when uninstrumented
}

// New builds a Runtime with the given worker count.
// Errors: ErrBadWorkers if workers <= 0.
// Complexity: O(1).
func New(workers int, opts ...Option) (*Runtime, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("parallel.New(%d): %w", workers, ErrBadWorkers)
	}

	r := &Runtime{workers: workers}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Workers returns the number of goroutines spawned per region.
func (r *Runtime) Workers() int {
	return r.workers
}

// Hooks returns the attached hooks, or nil.
func (r *Runtime) Hooks() Hooks {
	return r.hooks
}

// Partition returns the half-open block [lo,hi) owned by part p when [0,n)
// is split into parts contiguous blocks. Block sizes differ by at most one;
// trailing parts are empty when parts > n.
// Complexity: O(1).
func Partition(n, parts, p int) (lo, hi int) {
	q, rem := n/parts, n%parts
	lo = p*q + min(p, rem)
	hi = lo + q
	if p < rem {
		hi++
	}

	return lo, hi
}

// ForkJoin runs body once per worker with the worker's static block of [0,n).
// Returns after every worker has finished.
// Complexity: O(n/workers) per worker plus spawn/join cost.
func (r *Runtime) ForkJoin(region Region, n int, body func(worker, lo, hi int)) {
	r.run(region, func(w int) {
		lo, hi := Partition(n, r.workers, w)
		body(w, lo, hi)
	}, nil)
}

// Dynamic runs body(i) for every i in [0,n), handing out chunks of size chunk
// from a shared cursor. A chunk <= 0 is treated as 1.
// Iterations carry no ordering guarantee.
func (r *Runtime) Dynamic(region Region, n, chunk int, body func(i int)) {
	if chunk <= 0 {
		chunk = 1
	}

	var cursor atomic.Int64
	step := int64(chunk)
	limit := int64(n)
	r.run(region, func(int) {
		var start, end, i int64
		for {
			start = cursor.Add(step) - step
			if start >= limit {
				return
			}
			end = min(start+step, limit)
			for i = start; i < end; i++ {
				body(int(i))
			}
		}
	}, nil)
}

// run forks one goroutine per worker executing work and then merge (if
// non-nil), and joins them. The uninstrumented path takes no timestamps.
func (r *Runtime) run(region Region, work, merge func(worker int)) {
	if r.hooks != nil {
		r.runTimed(region, work, merge)
		return
	}

	var g errgroup.Group
	var w int
	for w = 0; w < r.workers; w++ {
		worker := w
		g.Go(func() error {
			work(worker)
			if merge != nil {
				merge(worker)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// runTimed is run with timestamps around spawn, work, merge and join.
// All offsets are measured from the fork instant on the monotonic clock.
func (r *Runtime) runTimed(region Region, work, merge func(worker int)) {
	var (
		g         errgroup.Group
		lastStart atomic.Int64 // latest worker start offset
		lastEnd   atomic.Int64 // latest worker end offset
	)
	ends := make([]time.Duration, r.workers)

	fork := time.Now()
	var w int
	for w = 0; w < r.workers; w++ {
		worker := w
		g.Go(func() error {
			begin := time.Since(fork)
			storeMax(&lastStart, int64(begin))

			work(worker)
			done := time.Since(fork)
			r.hooks.Worker(region, worker, done-begin)

			if merge != nil {
				merge(worker)
				end := time.Since(fork)
				r.hooks.Critical(region, worker, end-done)
				done = end
			}

			ends[worker] = done
			storeMax(&lastEnd, int64(done))
			return nil
		})
	}
	_ = g.Wait()
	joined := time.Since(fork)

	last := time.Duration(lastEnd.Load())
	r.hooks.Spawned(region, time.Duration(lastStart.Load()))
	for w = 0; w < r.workers; w++ {
		r.hooks.Barrier(region, w, last-ends[w])
	}
	r.hooks.Joined(region, joined-last)
}

// storeMax raises v to x if x is larger.
func storeMax(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x <= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}
