// Package dijkstra implements a fork-join parallel Dijkstra over dense
// adjacency matrices.
//
// The run alternates two parallel phases exactly like the textbook O(V²)
// array variant:
//
//   - Select: a parallel min-reduction over the unvisited vertices.
//   - Relax:  a parallel, lock-free sweep over the selected vertex's row.
//
// Complexity:
//
//   - Time:  O(V²/P + V·P) with P workers (V selections, each O(V/P) scan +
//     O(P) merges, plus an O(V/P) relaxation sweep).
//   - Space: O(V) for distances and visited flags on top of the O(V²) matrix.
//
// Notes on implementation choices:
//
//   - The loop runs at most V-1 rounds and stops early when the selected
//     vertex is unreachable; remaining distances stay at Infinity.
//   - Phase boundaries are strict: every region joins before the next starts.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/parsssp/matrix"
	"github.com/katalvlaran/parsssp/parallel"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - res: the terminal state (distances, visited flags, finalization order,
//     iteration and round counts, early-exit flag).
//   - err: error if options are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be within [0, n) (ErrSourceOutOfRange).
//  3. Workers must be positive (ErrBadWorkers).
//  4. ChunkSize must be positive (ErrBadChunk).
//
// The graph itself is validated by its constructors; it is only read here.
func Dijkstra(g *matrix.Adjacency, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.Order() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, g.Order())
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadChunk, cfg.ChunkSize)
	}

	// 2) Fork-join runtime shared by every region of this run.
	rt, err := parallel.New(cfg.Workers, parallel.WithHooks(hooksOf(cfg.Observer)))
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	r := &runner{
		g:       g,
		rt:      rt,
		options: cfg,
		state:   StateInit,
	}

	// 3) INIT, then the SELECTING/RELAXING loop until DONE.
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single run. dist and visited are
// owned here; Select and Relax borrow them for one call at a time.
type runner struct {
	g        *matrix.Adjacency // read-only for the whole run
	rt       *parallel.Runtime // fork-join executor
	options  Options
	state    State
	dist     []int64 // current best distance per vertex
	visited  []bool  // finalized flags, monotone false → true
	selected []int   // finalization order
	rounds   int     // selection rounds executed
	early    bool    // remainder unreachable
}

// buffers groups the two vectors so allocation is measured as one phase.
type buffers struct {
	dist    []int64
	visited []bool
}

// transition commits a state change and notifies the hook.
// An illegal edge means the orchestrator itself is broken, so it panics.
func (r *runner) transition(to State) {
	from := r.state
	if !isAllowedTransition(from, to) {
		panic(fmt.Sprintf("dijkstra: illegal transition %s -> %s", from, to))
	}
	r.state = to
	if r.options.OnTransition != nil {
		r.options.OnTransition(from, to)
	}
}

// init allocates and fills dist/visited, then seeds the source.
func (r *runner) init() {
	n := r.g.Order()
	obs := r.options.Observer

	// 1) Allocate both vectors (PhaseAllocate).
	buf, _ := Measure(obs, PhaseAllocate, func() buffers {
		return buffers{dist: make([]int64, n), visited: make([]bool, n)}
	})
	r.dist, r.visited = buf.dist, buf.visited
	r.selected = make([]int, 0, n)

	// 2) Fill in parallel (PhaseDistribute): dist = +∞, visited = false.
	_, _ = Measure(obs, PhaseDistribute, func() struct{} {
		r.rt.ForkJoin(RegionDistribute, n, func(_, lo, hi int) {
			var i int
			for i = lo; i < hi; i++ {
				r.dist[i] = Infinity
				r.visited[i] = false
			}
		})
		return struct{}{}
	})

	// 3) Distance to the source is zero.
	r.dist[r.options.Source] = 0
}

// process is the outer sequential loop. It runs at most n-1 rounds.
//
// Loop termination conditions:
//
//   - n-1 vertices have been finalized (the last one needs no relaxation).
//   - Select returns "none", or the selected vertex is at Infinity.
func (r *runner) process() {
	n := r.g.Order()
	obs := r.options.Observer

	if n == 1 {
		r.transition(StateDone) // the source is the whole graph
		return
	}

	var count int
	for count = 0; count < n-1; count++ {
		// SELECTING
		r.transition(StateSelecting)
		r.rounds++
		sel, _ := Measure(obs, PhaseSelect, func() candidate {
			u, ok := Select(r.rt, r.dist, r.visited)
			if !ok {
				return noCandidate
			}
			return candidate{dist: r.dist[u], index: u}
		})
		if sel.index < 0 || sel.dist == Infinity {
			r.early = true
			r.transition(StateDone)
			return
		}

		// Commit before relaxation; Relax reads visited.
		u := sel.index
		r.visited[u] = true
		r.selected = append(r.selected, u)

		// RELAXING
		r.transition(StateRelaxing)
		_, _ = Measure(obs, PhaseRelax, func() struct{} {
			relax(r.rt, r.g, r.dist, r.visited, u, r.options.ChunkSize)
			return struct{}{}
		})
	}

	r.transition(StateDone)
}

// result freezes the runner into a Result.
func (r *runner) result() *Result {
	return &Result{
		Source:     r.options.Source,
		Distances:  r.dist,
		Visited:    r.visited,
		Selected:   r.selected,
		Iterations: len(r.selected),
		Rounds:     r.rounds,
		EarlyExit:  r.early,
		Workers:    r.rt.Workers(),
	}
}
