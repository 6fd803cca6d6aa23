package dijkstra

import "github.com/katalvlaran/parsssp/parallel"

// candidate is a worker-local or global frontier minimum.
// index == -1 means "none".
type candidate struct {
	dist  int64
	index int
}

// noCandidate is the reduction identity.
var noCandidate = candidate{dist: Infinity, index: -1}

// Select returns the unvisited vertex with the smallest finite distance.
//
// Each worker scans its static block of [0,n) and keeps the first index of
// the block minimum; the locals are merged under a mutex, keeping the strictly
// smaller distance. Equal distances from different blocks resolve to the
// lower index. Callers must not rely on which of several equal vertices wins.
//
// Returns (-1, false) when every vertex is visited or every unvisited vertex
// is at Infinity. dist and visited are only read.
//
// Complexity: O(n/workers) per worker + O(workers) merges.
func Select(rt *parallel.Runtime, dist []int64, visited []bool) (int, bool) {
	best := parallel.Reduce(rt, RegionSelect, len(dist), noCandidate,
		func(lo, hi int) candidate {
			local := noCandidate
			var i int
			for i = lo; i < hi; i++ {
				// strict < keeps the first index of the block minimum
				if !visited[i] && dist[i] < local.dist {
					local = candidate{dist: dist[i], index: i}
				}
			}
			return local
		},
		mergeCandidate,
	)

	if best.index < 0 {
		return -1, false
	}

	return best.index, true
}

// mergeCandidate keeps the smaller distance, then the lower index.
func mergeCandidate(acc, x candidate) candidate {
	if x.index < 0 {
		return acc
	}
	if acc.index < 0 || x.dist < acc.dist || (x.dist == acc.dist && x.index < acc.index) {
		return x
	}

	return acc
}
