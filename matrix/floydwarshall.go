// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Serves as an independent oracle for single-source results.
//
// Contract:
//   - Input is a validated undirected Adjacency; 0 off-diagonal means no edge.
//   - Output uses Unreachable (math.MaxInt64) for "no path".

package matrix

import (
	"fmt"
	"math"
)

// Unreachable marks "no path" in distance output.
const Unreachable int64 = math.MaxInt64

// opFloydWarshall is the operation tag used for error wrapping.
const opFloydWarshall = "FloydWarshall"

// initDistances converts adjacency (0 / w) into a fresh distance buffer:
//
//	diag = 0; off-diagonal 0 -> Unreachable; non-zero -> unchanged.
//
// Complexity: O(n²).
func initDistances(a *Adjacency) []int64 {
	n := a.n
	d := make([]int64, n*n)

	// Rewrite values row-by-row in a fixed order for determinism.
	var i, j int
	var w int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // distance to self stays 0
			}
			w = a.data[i*n+j]
			if w == NoEdge {
				d[i*n+j] = Unreachable
				continue
			}
			d[i*n+j] = w
		}
	}

	return d
}

// floydWarshallInPlace runs the APSP closure over a flat n×n buffer.
//
// Loop order is fixed (k → i → j). Candidates that would overflow int64 are
// discarded, so Unreachable never participates in a sum.
// Time: O(n^3); Extra space: O(1).
func floydWarshallInPlace(data []int64, n int) {
	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row base offsets for K and I in the flat buffer
		ik, kj       int64 // distances d[i,k], d[k,j]
	)

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if ik == Unreachable { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if kj == Unreachable || kj > Unreachable-ik {
					continue // no path via k, or the sum would overflow
				}
				if ik+kj < data[baseI+j] { // strict improvement only
					data[baseI+j] = ik + kj
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest distances for a.
// Returns a row-major n×n buffer; row s is the SSSP vector from s.
//
// Complexity: Time O(n^3), memory O(n²).
func FloydWarshall(a *Adjacency) ([]int64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	d := initDistances(a)
	floydWarshallInPlace(d, a.n)

	return d, nil
}

// ShortestFrom runs FloydWarshall and returns the distance row of source.
// Intended for verification on small graphs.
// Complexity: O(n^3).
func ShortestFrom(a *Adjacency, source int) ([]int64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}
	if source < 0 || source >= a.n {
		return nil, fmt.Errorf("%s: source %d: %w", opFloydWarshall, source, ErrOutOfRange)
	}

	d, err := FloydWarshall(a)
	if err != nil {
		return nil, err
	}
	out := make([]int64, a.n)
	copy(out, d[source*a.n:(source+1)*a.n])

	return out, nil
}
