// Package parsssp is a fork-join parallel single-source shortest-path engine
// with built-in overhead attribution.
//
// 🚀 What is parsssp?
//
//	A small, dependency-light toolkit that brings together:
//		• Dense graphs: symmetric, non-negatively weighted adjacency matrices
//		• A fork-join runtime: static blocks, dynamic chunks, reductions
//		• Parallel Dijkstra: min-reduction selection, lock-free relaxation
//		• Overhead attribution: ten counters from thread spin-up to load balance
//		• A CLI: generate or read a graph, run, report, export Prometheus metrics
//
// ✨ Why parsssp?
//
//   - Deterministic – ties resolve to the lowest vertex index on any worker count
//   - Measurable – instrumentation is a decorator; without it no clock is read
//   - Verifiable – sequential heap and Floyd–Warshall references ship alongside
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    Adjacency, validators, seeded generator, text IO, Floyd–Warshall
//	parallel/  Runtime (ForkJoin, Dynamic), Reduce, timing Hooks
//	dijkstra/  Select, Relax, the INIT→SELECTING→RELAXING→DONE orchestrator
//	overhead/  Harness (dijkstra.Observer), calibration probes, Prometheus export
//	cmd/sssp/  command-line entry point
//
// Quick example (edges u–v:w):
//
//	0–1:10  0–4:5  1–2:1  1–4:2  2–3:4  3–4:3
//
//	from vertex 0 the distances are 0 7 8 8 5.
//
//	go install github.com/katalvlaran/parsssp/cmd/sssp@latest
package parsssp
