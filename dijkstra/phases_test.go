package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsssp/dijkstra"
	"github.com/katalvlaran/parsssp/matrix"
	"github.com/katalvlaran/parsssp/parallel"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		dist    []int64
		visited []bool
		want    int
		ok      bool
	}{
		{"single minimum", []int64{9, 3, 7}, []bool{false, false, false}, 1, true},
		{"skips visited", []int64{9, 3, 7}, []bool{false, true, false}, 2, true},
		{"tie to lower index", []int64{5, 3, 3, 7, 3}, []bool{false, false, false, false, false}, 1, true},
		{"tie across blocks", []int64{8, 8, 8, 8, 8, 8, 8, 8}, []bool{true, true, true, false, false, false, false, false}, 3, true},
		{"all visited", []int64{0, 1}, []bool{true, true}, -1, false},
		{"rest unreachable", []int64{0, inf, inf}, []bool{true, false, false}, -1, false},
		{"empty", nil, nil, -1, false},
	}

	for _, tt := range tests {
		for _, workers := range []int{1, 2, 3, 8} {
			tt, workers := tt, workers
			t.Run(fmt.Sprintf("%s/workers=%d", tt.name, workers), func(t *testing.T) {
				t.Parallel()
				rt, err := parallel.New(workers)
				require.NoError(t, err)

				dist := append([]int64(nil), tt.dist...)
				visited := append([]bool(nil), tt.visited...)
				u, ok := dijkstra.Select(rt, dist, visited)
				assert.Equal(t, tt.want, u)
				assert.Equal(t, tt.ok, ok)
				assert.Equal(t, tt.dist, dist, "Select must not write dist")
				assert.Equal(t, tt.visited, visited, "Select must not write visited")
			})
		}
	}
}

func TestRelax(t *testing.T) {
	g, err := matrix.FromRows(fiveVertex)
	require.NoError(t, err)
	rt, err := parallel.New(4)
	require.NoError(t, err)

	t.Run("lowers unvisited neighbours", func(t *testing.T) {
		dist := []int64{0, 10, inf, inf, 5}
		visited := []bool{true, false, false, false, true}
		dijkstra.Relax(rt, g, dist, visited, 4)
		assert.Equal(t, []int64{0, 7, inf, 8, 5}, dist)
	})

	t.Run("idempotent", func(t *testing.T) {
		dist := []int64{0, 10, inf, inf, 5}
		visited := []bool{true, false, false, false, true}
		dijkstra.Relax(rt, g, dist, visited, 4)
		once := append([]int64(nil), dist...)
		dijkstra.Relax(rt, g, dist, visited, 4)
		assert.Equal(t, once, dist)
	})

	t.Run("never raises", func(t *testing.T) {
		dist := []int64{0, 1, 1, 1, 1}
		visited := []bool{true, false, false, false, false}
		dijkstra.Relax(rt, g, dist, visited, 0)
		assert.Equal(t, []int64{0, 1, 1, 1, 1}, dist)
	})

	t.Run("visited untouched", func(t *testing.T) {
		dist := []int64{0, inf, inf, inf, inf}
		visited := []bool{true, true, false, false, true}
		dijkstra.Relax(rt, g, dist, visited, 0)
		assert.Equal(t, []int64{0, inf, inf, inf, inf}, dist)
	})

	t.Run("unreachable source row", func(t *testing.T) {
		dist := []int64{inf, inf, inf, inf, inf}
		visited := make([]bool, 5)
		dijkstra.Relax(rt, g, dist, visited, 0)
		assert.Equal(t, []int64{inf, inf, inf, inf, inf}, dist)
	})
}

func TestRelax_Overflow(t *testing.T) {
	g, err := matrix.FromRows([][]int64{
		{0, 10},
		{10, 0},
	})
	require.NoError(t, err)
	rt, err := parallel.New(2)
	require.NoError(t, err)

	dist := []int64{inf - 3, inf}
	visited := []bool{true, false}
	dijkstra.Relax(rt, g, dist, visited, 0)
	assert.Equal(t, inf, dist[1], "overflowing candidate is dropped")
}
