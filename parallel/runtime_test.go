package parallel_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsssp/parallel"
)

func mustRuntime(t testing.TB, workers int, opts ...parallel.Option) *parallel.Runtime {
	t.Helper()
	rt, err := parallel.New(workers, opts...)
	require.NoError(t, err)
	return rt
}

func TestNew(t *testing.T) {
	_, err := parallel.New(0)
	require.ErrorIs(t, err, parallel.ErrBadWorkers)
	_, err = parallel.New(-2)
	require.ErrorIs(t, err, parallel.ErrBadWorkers)

	rt := mustRuntime(t, 3)
	assert.Equal(t, 3, rt.Workers())
	assert.Nil(t, rt.Hooks())

	rt = mustRuntime(t, 3, parallel.WithHooks(nil))
	assert.Nil(t, rt.Hooks())

	assert.Positive(t, parallel.DefaultWorkers())
}

func TestPartition(t *testing.T) {
	tests := []struct {
		n, parts int
	}{
		{0, 1}, {0, 4}, {1, 1}, {1, 4}, {7, 3}, {10, 4}, {100, 7}, {3, 8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d/parts=%d", tt.n, tt.parts), func(t *testing.T) {
			t.Parallel()
			next := 0
			minSize, maxSize := tt.n+1, -1
			for p := 0; p < tt.parts; p++ {
				lo, hi := parallel.Partition(tt.n, tt.parts, p)
				require.Equal(t, next, lo, "blocks are contiguous")
				require.LessOrEqual(t, lo, hi)
				next = hi
				minSize = min(minSize, hi-lo)
				maxSize = max(maxSize, hi-lo)
			}
			assert.Equal(t, tt.n, next, "blocks cover [0,n)")
			assert.LessOrEqual(t, maxSize-minSize, 1, "sizes differ by at most one")
		})
	}
}

func TestForkJoin_CoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 5, 16} {
		for _, n := range []int{0, 1, 15, 1000} {
			workers, n := workers, n
			t.Run(fmt.Sprintf("workers=%d/n=%d", workers, n), func(t *testing.T) {
				t.Parallel()
				rt := mustRuntime(t, workers)
				hits := make([]int32, n)
				var calls atomic.Int32

				rt.ForkJoin("test", n, func(_, lo, hi int) {
					calls.Add(1)
					for i := lo; i < hi; i++ {
						atomic.AddInt32(&hits[i], 1)
					}
				})

				assert.Equal(t, int32(workers), calls.Load(), "one body per worker")
				for i, h := range hits {
					require.Equal(t, int32(1), h, "index %d", i)
				}
			})
		}
	}
}

func TestDynamic_CoversEveryIndexOnce(t *testing.T) {
	for _, chunk := range []int{-1, 0, 1, 3, 64, 5000} {
		for _, workers := range []int{1, 4, 9} {
			chunk, workers := chunk, workers
			t.Run(fmt.Sprintf("chunk=%d/workers=%d", chunk, workers), func(t *testing.T) {
				t.Parallel()
				rt := mustRuntime(t, workers)
				const n = 1234
				hits := make([]int32, n)

				rt.Dynamic("test", n, chunk, func(i int) {
					atomic.AddInt32(&hits[i], 1)
				})

				for i, h := range hits {
					require.Equal(t, int32(1), h, "index %d", i)
				}
			})
		}
	}
}

func TestReduce(t *testing.T) {
	sum := func(rt *parallel.Runtime, xs []int) int {
		return parallel.Reduce(rt, "sum", len(xs), 0,
			func(lo, hi int) int {
				s := 0
				for _, x := range xs[lo:hi] {
					s += x
				}
				return s
			},
			func(acc, x int) int { return acc + x },
		)
	}

	xs := make([]int, 10_001)
	want := 0
	for i := range xs {
		xs[i] = i
		want += i
	}

	for _, workers := range []int{1, 2, 3, 8, 64} {
		rt := mustRuntime(t, workers)
		assert.Equal(t, want, sum(rt, xs), "workers=%d", workers)
	}
	assert.Zero(t, sum(mustRuntime(t, 4), nil), "empty input yields identity")
}

// recordingHooks collects every event.
type recordingHooks struct {
	mu       sync.Mutex
	spawned  int
	joined   int
	workers  map[int]int
	barriers map[int]int
	critical map[int]int
	negative bool
}

func newRecordingHooks() *recordingHooks {
	return &recordingHooks{
		workers:  make(map[int]int),
		barriers: make(map[int]int),
		critical: make(map[int]int),
	}
}

func (h *recordingHooks) check(d time.Duration) {
	if d < 0 {
		h.negative = true
	}
}

func (h *recordingHooks) Spawned(_ parallel.Region, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.check(d)
	h.spawned++
}

func (h *recordingHooks) Joined(_ parallel.Region, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.check(d)
	h.joined++
}

func (h *recordingHooks) Worker(_ parallel.Region, w int, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.check(d)
	h.workers[w]++
}

func (h *recordingHooks) Barrier(_ parallel.Region, w int, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.check(d)
	h.barriers[w]++
}

func (h *recordingHooks) Critical(_ parallel.Region, w int, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.check(d)
	h.critical[w]++
}

func TestHooks_ForkJoin(t *testing.T) {
	h := newRecordingHooks()
	rt := mustRuntime(t, 4, parallel.WithHooks(h))

	rt.ForkJoin("fj", 100, func(int, int, int) {})

	assert.Equal(t, 1, h.spawned)
	assert.Equal(t, 1, h.joined)
	assert.Len(t, h.workers, 4)
	assert.Len(t, h.barriers, 4)
	assert.Empty(t, h.critical, "no merge stage")
	assert.False(t, h.negative)
}

func TestHooks_Reduce(t *testing.T) {
	h := newRecordingHooks()
	rt := mustRuntime(t, 3, parallel.WithHooks(h))

	got := parallel.Reduce(rt, "r", 9, 0,
		func(lo, hi int) int { return hi - lo },
		func(acc, x int) int { return acc + x },
	)

	assert.Equal(t, 9, got)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, h.critical)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, h.workers)
	assert.False(t, h.negative)
}

func TestNoopHooks(t *testing.T) {
	rt := mustRuntime(t, 2, parallel.WithHooks(parallel.NoopHooks{}))
	var n atomic.Int32
	rt.Dynamic("noop", 10, 2, func(int) { n.Add(1) })
	assert.Equal(t, int32(10), n.Load())
}
