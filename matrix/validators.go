// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the undirected-graph
//    contract checks performed on every Adjacency.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry runs O(n²) on the upper triangle only.
//
// Note:
//  - ValidateUndirected follows a fixed sequence
//    (NotNil → NonNegative → ZeroDiagonal → Symmetric).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(a *Adjacency) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonNegative ensures every weight is >= 0.
// Assumes a is not nil.
// Complexity: O(n²).
func ValidateNonNegative(a *Adjacency) error {
	var idx int
	var w int64
	for idx, w = range a.data {
		if w < 0 {
			return validatorErrorf(
				fmt.Sprintf("ValidateNonNegative(%d,%d)=%d", idx/a.n, idx%a.n, w),
				ErrNegativeWeight,
			)
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures a[i][i] == 0 for all i.
// Assumes a is not nil.
// Complexity: O(n).
func ValidateZeroDiagonal(a *Adjacency) error {
	var i int
	for i = 0; i < a.n; i++ {
		if a.data[i*a.n+i] != NoEdge {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures a[i][j] == a[j][i] over the upper triangle.
// Assumes a is not nil.
// Complexity: O(n²).
func ValidateSymmetric(a *Adjacency) error {
	var i, j int
	for i = 0; i < a.n; i++ {
		for j = i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] != a.data[j*a.n+i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateUndirected runs the full contract in priority order.
// Errors: ErrNilMatrix, ErrNegativeWeight, ErrNonZeroDiagonal, ErrAsymmetry.
// Complexity: O(n²).
func ValidateUndirected(a *Adjacency) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNonNegative(a); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(a); err != nil {
		return err
	}

	return ValidateSymmetric(a)
}
