// Package dijkstra defines core types and configuration options
// for the fork-join parallel Dijkstra over dense adjacency matrices.
//
// Options:
//
//	– Source:     index of the starting vertex (0 ≤ source < n).
//	– Workers:    goroutines per parallel region (default runtime.NumCPU()).
//	– ChunkSize:  iterations per dynamic-schedule chunk in relaxation.
//	– Observer:   optional instrumentation; nil means no timestamps at all.
//	– OnTransition: optional callback for every orchestrator state change.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided matrix pointer is nil.
//	– ErrSourceOutOfRange if the source index is outside [0, n).
//	– ErrBadWorkers       if the worker count is not positive.
//	– ErrBadChunk         if the chunk size is not positive.
package dijkstra

import (
	"errors"
	"time"

	"github.com/katalvlaran/parsssp/matrix"
	"github.com/katalvlaran/parsssp/parallel"
)

// Infinity is the distance of a vertex not (yet) reached from the source.
const Infinity = matrix.Unreachable

// DefaultChunkSize is the dynamic-schedule chunk used by relaxation.
const DefaultChunkSize = 64

// Region labels for the parallel regions entered by a run.
const (
	RegionDistribute parallel.Region = "distribute"
	RegionSelect     parallel.Region = "select"
	RegionRelax      parallel.Region = "relax"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *matrix.Adjacency was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source index is not a vertex.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("dijkstra: worker count must be positive")

	// ErrBadChunk indicates a non-positive dynamic-schedule chunk size.
	ErrBadChunk = errors.New("dijkstra: chunk size must be positive")
)

// Phase names an orchestrator phase measured by an Observer.
type Phase int

const (
	// PhaseAllocate covers allocation of the distance and visited vectors.
	PhaseAllocate Phase = iota

	// PhaseDistribute covers the parallel initialisation of both vectors.
	PhaseDistribute

	// PhaseSelect covers one Frontier Selector invocation.
	PhaseSelect

	// PhaseRelax covers one Relaxation Engine invocation.
	PhaseRelax
)

// String returns the phase label.
func (p Phase) String() string {
	switch p {
	case PhaseAllocate:
		return "allocate"
	case PhaseDistribute:
		return "distribute"
	case PhaseSelect:
		return "select"
	case PhaseRelax:
		return "relax"
	default:
		return "unknown"
	}
}

// Observer receives phase timings from the orchestrator and, through the
// embedded parallel.Hooks, synchronization timings from every region.
type Observer interface {
	parallel.Hooks

	// Phase reports the wall time of one phase invocation.
	Phase(phase Phase, d time.Duration)
}

// Options configures the behavior of Dijkstra.
type Options struct {
	Source       int                  // index of the source vertex
	Workers      int                  // goroutines per parallel region
	ChunkSize    int                  // relaxation chunk size
	Observer     Observer             // optional instrumentation
	OnTransition func(from, to State) // optional state-change callback
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the source vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithWorkers sets the number of goroutines spawned per parallel region.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithChunkSize sets the dynamic-schedule chunk used during relaxation.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		o.ChunkSize = n
	}
}

// WithObserver attaches instrumentation. The observer only sees timings;
// it cannot alter selection or relaxation results.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithTransitionHook registers fn to be called on every state change, after
// the change is committed. fn runs on the orchestrator goroutine.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(o *Options) {
		o.OnTransition = fn
	}
}

// DefaultOptions returns Options with source 0, one worker per CPU, the
// default chunk size and no instrumentation.
func DefaultOptions() Options {
	return Options{
		Source:    0,
		Workers:   parallel.DefaultWorkers(),
		ChunkSize: DefaultChunkSize,
	}
}

// Result is the terminal state of a run.
//
// A full run finalizes n-1 vertices; the last remaining vertex is never
// selected (its distance is already final), so Visited holds n-1 true entries.
type Result struct {
	Source     int     // source vertex
	Distances  []int64 // shortest distances; Infinity when unreachable
	Visited    []bool  // finalized vertices
	Selected   []int   // vertices in finalization order
	Iterations int     // completed select+relax iterations (== len(Selected))
	Rounds     int     // Select invocations, including a final "none"
	EarlyExit  bool    // stopped because the remainder is unreachable
	Workers    int     // goroutines per region used by the run
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return r.Distances[v] != Infinity
}
