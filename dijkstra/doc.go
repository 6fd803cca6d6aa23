// Package dijkstra provides a fork-join parallel implementation of Dijkstra's
// shortest-path algorithm on dense, undirected, non-negatively weighted
// adjacency matrices.
//
// Overview:
//
//   - Dijkstra runs the classic O(V²) array variant. Each of at most V-1
//     iterations selects the closest unvisited vertex (Select) and then
//     relaxes its row (Relax). Both phases are parallel regions of a
//     parallel.Runtime; the outer loop is sequential.
//   - Select is a parallel min-reduction: every worker scans its own block,
//     and the block minima are merged under one mutex.
//   - Relax writes only dist[v] in iteration v, so it needs no lock at all.
//   - The run stops early when the closest unvisited vertex is unreachable.
//     That is a normal outcome: unreachable vertices keep Infinity.
//
// State machine:
//
//	INIT → SELECTING → RELAXING → (SELECTING | DONE)
//
// WithTransitionHook observes every committed transition.
//
// Instrumentation:
//
//   - WithObserver attaches an Observer (see package overhead). The
//     orchestrator wraps each phase with Measure and the runtime reports
//     spawn, join, barrier and critical-section timings. Without an observer
//     the hot path reads no clock.
//
// Reference:
//
//   - Sequential is a single-goroutine heap-based Dijkstra used to verify
//     parallel results.
//
// Known limitation:
//
//   - Weight 0 means "no edge", so genuine zero-weight edges are not
//     representable.
//
// API reference:
//
//	func Dijkstra(g *matrix.Adjacency, opts ...Option) (*Result, error)
//	func Select(rt *parallel.Runtime, dist []int64, visited []bool) (int, bool)
//	func Relax(rt *parallel.Runtime, g *matrix.Adjacency, dist []int64, visited []bool, u int)
//	func Sequential(g *matrix.Adjacency, source int) ([]int64, error)
package dijkstra
