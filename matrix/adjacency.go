// SPDX-License-Identifier: MIT
// Package matrix: Adjacency is the row-major n×n weight matrix of an
// undirected graph. It stores elements in a flat slice for cache friendliness
// and is immutable once constructed.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// NoEdge is the weight that encodes the absence of an edge.
const NoEdge int64 = 0

// adjacencyErrorf wraps an underlying error with Adjacency method context.
func adjacencyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, row, col, err)
}

// Adjacency is an immutable row-major matrix of int64 edge weights.
// n is the order, data holds n*n elements in row-major order.
type Adjacency struct {
	n    int     // number of vertices (rows == cols)
	data []int64 // flat backing storage, length == n*n
}

// checkOrder validates n > 0 and that n*n cells are addressable.
// Complexity: O(1).
func checkOrder(n int) error {
	if n <= 0 {
		return ErrBadShape
	}
	if n > math.MaxInt32 || n > math.MaxInt/n {
		return ErrTooLarge
	}

	return nil
}

// CheckOrder reports whether an n×n matrix may be allocated under limit
// vertices. A limit <= 0 disables the upper bound.
// Complexity: O(1).
func CheckOrder(n, limit int) error {
	if err := checkOrder(n); err != nil {
		return fmt.Errorf("CheckOrder(%d): %w", n, err)
	}
	if limit > 0 && n > limit {
		return fmt.Errorf("CheckOrder(%d): limit %d: %w", n, limit, ErrTooLarge)
	}

	return nil
}

// NewAdjacency builds an n×n matrix from a row-major slice.
// Stage 1 (Validate): n > 0 and len(data) == n*n.
// Stage 2 (Prepare): copy data so the caller cannot mutate the graph later.
// Stage 3 (Finalize): validate the undirected contract.
// Complexity: O(n²) time and memory.
func NewAdjacency(n int, data []int64) (*Adjacency, error) {
	// Validate order
	if err := checkOrder(n); err != nil {
		return nil, fmt.Errorf("NewAdjacency(%d): %w", n, err)
	}
	// Validate flat length
	if len(data) != n*n {
		return nil, fmt.Errorf("NewAdjacency(%d): len=%d: %w", n, len(data), ErrDimensionMismatch)
	}

	// Defensive copy; the graph is owned by the run that consumes it.
	buf := make([]int64, len(data))
	copy(buf, data)

	a := &Adjacency{n: n, data: buf}
	if err := ValidateUndirected(a); err != nil {
		return nil, err
	}

	return a, nil
}

// FromRows builds an Adjacency from nested rows, convenient for fixtures.
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Adjacency, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}

	flat := make([]int64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		flat = append(flat, row...)
	}

	return NewAdjacency(n, flat)
}

// newUnchecked wraps an already validated buffer without copying.
// Used by the generator, which constructs symmetric data by design.
func newUnchecked(n int, data []int64) *Adjacency {
	return &Adjacency{n: n, data: data}
}

// Order returns the number of vertices.
// Complexity: O(1).
func (a *Adjacency) Order() int {
	return a.n
}

// At retrieves the weight of edge (row, col); 0 means no edge.
// Complexity: O(1).
func (a *Adjacency) At(row, col int) (int64, error) {
	if row < 0 || row >= a.n || col < 0 || col >= a.n {
		return 0, adjacencyErrorf("At", row, col, ErrOutOfRange)
	}

	return a.data[row*a.n+col], nil
}

// Row returns a read-only view of row u. The returned slice aliases the
// matrix storage and MUST NOT be modified.
// Complexity: O(1).
func (a *Adjacency) Row(u int) []int64 {
	base := u * a.n

	return a.data[base : base+a.n : base+a.n]
}

// Data returns a copy of the row-major backing storage.
// Complexity: O(n²).
func (a *Adjacency) Data() []int64 {
	out := make([]int64, len(a.data))
	copy(out, a.data)

	return out
}

// EdgeCount returns the number of undirected edges (non-zero upper-triangle cells).
// Complexity: O(n²).
func (a *Adjacency) EdgeCount() int {
	var i, j, count int
	for i = 0; i < a.n; i++ {
		for j = i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] != NoEdge {
				count++
			}
		}
	}

	return count
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (a *Adjacency) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < a.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", a.data[i*a.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
