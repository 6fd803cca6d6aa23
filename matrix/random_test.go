// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the seeded graph generator.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsssp/matrix"
)

func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(30, matrix.WithSeed(7))
	require.NoError(t, err)
	b, err := matrix.Random(30, matrix.WithSeed(7))
	require.NoError(t, err)
	c, err := matrix.Random(30, matrix.WithSeed(8))
	require.NoError(t, err)

	require.Equal(t, a.Data(), b.Data())
	require.NotEqual(t, a.Data(), c.Data())
}

func TestRandom_Contract(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(40, matrix.WithSeed(3), matrix.WithMaxWeight(5))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateUndirected(a))

	for u := 0; u < a.Order(); u++ {
		for _, w := range a.Row(u) {
			require.GreaterOrEqual(t, w, int64(0))
			require.LessOrEqual(t, w, int64(5))
		}
	}
}

func TestRandom_Density(t *testing.T) {
	t.Parallel()

	empty, err := matrix.Random(20, matrix.WithDensity(0))
	require.NoError(t, err)
	require.Zero(t, empty.EdgeCount())

	full, err := matrix.Random(20, matrix.WithDensity(1))
	require.NoError(t, err)
	require.Equal(t, 20*19/2, full.EdgeCount())
}

func TestRandom_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Random(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Random(3, matrix.WithMaxWeight(0))
	require.ErrorIs(t, err, matrix.ErrBadMaxWeight)
	_, err = matrix.Random(3, matrix.WithDensity(-0.1))
	require.ErrorIs(t, err, matrix.ErrBadDensity)
	_, err = matrix.Random(3, matrix.WithDensity(1.5))
	require.ErrorIs(t, err, matrix.ErrBadDensity)
}
