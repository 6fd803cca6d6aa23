package dijkstra

import (
	"github.com/katalvlaran/parsssp/matrix"
	"github.com/katalvlaran/parsssp/parallel"
)

// Relax lowers dist[v] to dist[u]+w(u,v) for every unvisited neighbour v of u
// where that is a strict improvement. It uses DefaultChunkSize.
//
// Every iteration writes only its own dist[v]; dist[u] and visited are read
// only. No lock is taken and the outcome does not depend on the order in
// which iterations run. Calling Relax again with unchanged inputs is a no-op.
//
// dist and visited must have length g.Order().
// Complexity: O(n/workers) per worker.
func Relax(rt *parallel.Runtime, g *matrix.Adjacency, dist []int64, visited []bool, u int) {
	relax(rt, g, dist, visited, u, DefaultChunkSize)
}

// relax is Relax with an explicit chunk size.
func relax(rt *parallel.Runtime, g *matrix.Adjacency, dist []int64, visited []bool, u, chunk int) {
	du := dist[u]
	if du == Infinity {
		return // nothing reachable through u
	}
	row := g.Row(u)

	rt.Dynamic(RegionRelax, len(dist), chunk, func(v int) {
		w := row[v]
		if w == matrix.NoEdge || visited[v] {
			return
		}
		// Drop candidates that would overflow; they can never beat a finite dist[v].
		if w > Infinity-du {
			return
		}
		if nd := du + w; nd < dist[v] {
			dist[v] = nd
		}
	})
}
