package parallel

import "sync"

// Reduce splits [0,n) into one static block per worker, computes local(lo,hi)
// on each, and folds the locals into identity with combine. Each fold runs
// under the region's single mutex, so combine needs no synchronization of its
// own. The result is read only after every worker has merged.
//
// combine must be associative and commutative for the result to be
// independent of merge order. local must accept empty blocks (lo == hi).
// Complexity: O(n/workers) per worker plus O(workers) serialized merges.
func Reduce[T any](r *Runtime, region Region, n int, identity T, local func(lo, hi int) T, combine func(acc, x T) T) T {
	var mu sync.Mutex
	global := identity
	partial := make([]T, r.workers) // slot w is written only by worker w

	r.run(region, func(w int) {
		lo, hi := Partition(n, r.workers, w)
		partial[w] = local(lo, hi)
	}, func(w int) {
		mu.Lock()
		global = combine(global, partial[w])
		mu.Unlock()
	})

	return global
}
