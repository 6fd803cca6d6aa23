// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the undirected-graph validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsssp/matrix"
)

// TestValidateUndirected checks each validator and the documented priority.
func TestValidateUndirected(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateUndirected(nil), matrix.ErrNilMatrix)

	a, err := matrix.Random(6, matrix.WithSeed(5))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNonNegative(a))
	require.NoError(t, matrix.ValidateZeroDiagonal(a))
	require.NoError(t, matrix.ValidateSymmetric(a))
	require.NoError(t, matrix.ValidateUndirected(a))
}

func TestValidateUndirected_Priority(t *testing.T) {
	t.Parallel()

	// negative, non-zero diagonal and asymmetric at once: negative wins
	_, err := matrix.NewAdjacency(2, []int64{1, -2, 3, 0})
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)

	// non-zero diagonal and asymmetric: diagonal wins
	_, err = matrix.NewAdjacency(2, []int64{1, 2, 3, 0})
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
}
