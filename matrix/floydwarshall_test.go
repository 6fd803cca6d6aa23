// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the all-pairs reference.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsssp/matrix"
)

const unreachable = matrix.Unreachable

func TestFloydWarshall(t *testing.T) {
	t.Parallel()

	// 0 -1- 1 -1- 2, plus a direct 0-2 edge of weight 5; 3 is isolated.
	a, err := matrix.FromRows([][]int64{
		{0, 1, 5, 0},
		{1, 0, 1, 0},
		{5, 1, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	d, err := matrix.FloydWarshall(a)
	require.NoError(t, err)
	require.Equal(t, []int64{
		0, 1, 2, unreachable,
		1, 0, 1, unreachable,
		2, 1, 0, unreachable,
		unreachable, unreachable, unreachable, 0,
	}, d)
}

func TestShortestFrom(t *testing.T) {
	t.Parallel()

	a, err := matrix.FromRows([][]int64{
		{0, 10, 0, 0, 5},
		{10, 0, 1, 0, 2},
		{0, 1, 0, 4, 0},
		{0, 0, 4, 0, 3},
		{5, 2, 0, 3, 0},
	})
	require.NoError(t, err)

	d, err := matrix.ShortestFrom(a, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 7, 8, 8, 5}, d)

	_, err = matrix.ShortestFrom(a, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ShortestFrom(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFloydWarshall_Overflow(t *testing.T) {
	t.Parallel()

	big := unreachable/2 + 1
	a, err := matrix.FromRows([][]int64{
		{0, big, 0},
		{big, 0, big},
		{0, big, 0},
	})
	require.NoError(t, err)

	d, err := matrix.ShortestFrom(a, 0)
	require.NoError(t, err)
	require.Equal(t, big, d[1])
	require.Equal(t, unreachable, d[2], "sum would overflow and is discarded")
}
