// Package matrix provides the dense graph representation consumed by the
// parallel shortest-path engine.
//
// The matrix package provides:
//
//   - Adjacency: an immutable n×n row-major matrix of non-negative int64 edge
//     weights, where 0 means "no edge" (the diagonal included).
//   - Validators that enforce the undirected contract: square, non-negative,
//     zero diagonal, symmetric.
//   - Random: a seeded generator of symmetric weighted matrices.
//   - Read/Write: a whitespace-separated text format for row-major input.
//   - FloydWarshall: an all-pairs reference used to cross-check SSSP results.
//
// Known modeling limitation: because 0 encodes "no edge", a genuine
// zero-weight edge cannot be represented. Such edges are indistinguishable
// from absent ones everywhere in this module.
//
// Matrices are best for dense or small graphs where O(V²) memory is
// acceptable.
package matrix
