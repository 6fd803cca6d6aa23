package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/parsssp/matrix"
)

// Sequential computes single-source distances on a single goroutine using a
// binary heap with lazy decrease-key. It shares no code with the parallel
// engine and serves as its reference.
//
// Complexity:
//
//   - Time:  O(V² + E log V); every row is scanned once, each improvement
//     pushes one heap entry.
//   - Space: O(V + E) worst case for stale heap entries.
func Sequential(g *matrix.Adjacency, source int) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	// 1) dist = +∞, source = 0, heap seeded with the source.
	dist := make([]int64, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = Infinity
	}
	dist[source] = 0
	pq := make(nodePQ, 0, n)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	// 2) Pop the closest vertex, skip stale entries, relax its row.
	var (
		item *nodeItem
		u, v int
		w    int64
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*nodeItem)
		u = item.id
		if visited[u] {
			continue // stale heap entry
		}
		visited[u] = true

		row := g.Row(u)
		for v, w = range row {
			if w == matrix.NoEdge || visited[v] || w > Infinity-item.dist {
				continue
			}
			if nd := item.dist + w; nd < dist[v] {
				dist[v] = nd
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			}
		}
	}

	return dist, nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
