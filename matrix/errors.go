// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, readers and validators MUST return these sentinels
// (optionally wrapped) and tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the boundary; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> length -> negative weight -> diagonal -> symmetry.

var (
	// ErrNilMatrix indicates that a nil *Adjacency (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when the requested order is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrTooLarge is returned when n*n cells cannot be addressed or exceed a
	// caller-supplied limit. Checked before any allocation happens.
	ErrTooLarge = errors.New("matrix: order too large")

	// ErrDimensionMismatch indicates the flat data length is not n*n, or that
	// rows of a nested slice have different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeWeight signals a negative entry; shortest paths require w >= 0.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNonZeroDiagonal signals a self-loop entry; the diagonal must be 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals that an undirected matrix violated a[i][j] == a[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrBadDensity is returned by the generator for densities outside [0,1].
	ErrBadDensity = errors.New("matrix: density must be within [0,1]")

	// ErrBadMaxWeight is returned by the generator for a max weight below 1.
	ErrBadMaxWeight = errors.New("matrix: max weight must be >= 1")

	// ErrParse indicates malformed textual matrix input.
	ErrParse = errors.New("matrix: parse error")
)
