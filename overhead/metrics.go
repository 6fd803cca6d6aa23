package overhead

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/parsssp/dijkstra"
	"github.com/katalvlaran/parsssp/parallel"
)

// Metric identifies one overhead counter.
type Metric int

const (
	ThreadCreation Metric = iota
	ThreadTermination
	ParallelRegion
	CriticalSection
	BarrierSync
	Reduction
	Scheduling
	MemoryAllocation
	DataDistribution
	LoadBalancing

	numMetrics
)

// labels are the report labels, indexed by Metric.
var labels = [numMetrics]string{
	ThreadCreation:    "Thread Creation Overhead",
	ThreadTermination: "Thread Termination Overhead",
	ParallelRegion:    "Parallel Region Overhead",
	CriticalSection:   "Critical Section Time",
	BarrierSync:       "Barrier Synchronization Time",
	Reduction:         "Reduction Operation Time",
	Scheduling:        "Task Scheduling Overhead",
	MemoryAllocation:  "Memory Allocation Time",
	DataDistribution:  "Data Distribution Time",
	LoadBalancing:     "Load Balancing Time",
}

// keys are stable snake_case identifiers used as metric label values.
var keys = [numMetrics]string{
	ThreadCreation:    "thread_creation",
	ThreadTermination: "thread_termination",
	ParallelRegion:    "parallel_region",
	CriticalSection:   "critical_section",
	BarrierSync:       "barrier_sync",
	Reduction:         "reduction",
	Scheduling:        "scheduling",
	MemoryAllocation:  "memory_allocation",
	DataDistribution:  "data_distribution",
	LoadBalancing:     "load_balancing",
}

// String returns the report label.
func (m Metric) String() string {
	if m < 0 || m >= numMetrics {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return labels[m]
}

// Key returns the snake_case identifier.
func (m Metric) Key() string {
	if m < 0 || m >= numMetrics {
		return "unknown"
	}
	return keys[m]
}

// All returns every metric in report order.
func All() []Metric {
	out := make([]Metric, numMetrics)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// Entry is one line of a report.
type Entry struct {
	Metric       Metric
	Name         string
	Microseconds float64
}

// Snapshot is a read-only copy of every counter.
type Snapshot [numMetrics]time.Duration

// Get returns the value of m.
func (s Snapshot) Get(m Metric) time.Duration {
	return s[m]
}

// Harness accumulates overhead counters. It is safe for concurrent use.
type Harness struct {
	counters [numMetrics]atomic.Int64 // nanoseconds
}

var _ dijkstra.Observer = (*Harness)(nil)

// New returns a Harness with all counters at zero.
func New() *Harness {
	return &Harness{}
}

// Add accumulates d into m. Negative durations are ignored so counters stay
// monotone.
func (h *Harness) Add(m Metric, d time.Duration) {
	if d <= 0 {
		return
	}
	h.counters[m].Add(int64(d))
}

// Value returns the current value of m.
func (h *Harness) Value(m Metric) time.Duration {
	return time.Duration(h.counters[m].Load())
}

// Snapshot copies every counter.
func (h *Harness) Snapshot() Snapshot {
	var s Snapshot
	for i := range s {
		s[i] = time.Duration(h.counters[i].Load())
	}
	return s
}

// Report returns every counter in fixed order, in microseconds.
func (h *Harness) Report() []Entry {
	s := h.Snapshot()
	out := make([]Entry, 0, numMetrics)
	for _, m := range All() {
		out = append(out, Entry{Metric: m, Name: m.String(), Microseconds: micros(s[m])})
	}
	return out
}

// Reset zeroes every counter. Use it only between runs.
func (h *Harness) Reset() {
	for i := range h.counters {
		h.counters[i].Store(0)
	}
}

// Phase implements dijkstra.Observer.
func (h *Harness) Phase(phase dijkstra.Phase, d time.Duration) {
	switch phase {
	case dijkstra.PhaseAllocate:
		h.Add(MemoryAllocation, d)
	case dijkstra.PhaseDistribute:
		h.Add(DataDistribution, d)
	case dijkstra.PhaseSelect:
		h.Add(ParallelRegion, d)
	case dijkstra.PhaseRelax:
		h.Add(LoadBalancing, d)
	}
}

// Spawned implements parallel.Hooks.
func (h *Harness) Spawned(_ parallel.Region, d time.Duration) {
	h.Add(ThreadCreation, d)
}

// Joined implements parallel.Hooks.
func (h *Harness) Joined(_ parallel.Region, d time.Duration) {
	h.Add(ThreadTermination, d)
}

// Worker implements parallel.Hooks. Only the selection scan counts as
// scheduling; other regions' work is covered by their phase counters.
func (h *Harness) Worker(region parallel.Region, _ int, d time.Duration) {
	if region == dijkstra.RegionSelect {
		h.Add(Scheduling, d)
	}
}

// Barrier implements parallel.Hooks.
func (h *Harness) Barrier(_ parallel.Region, _ int, d time.Duration) {
	h.Add(BarrierSync, d)
}

// Critical implements parallel.Hooks.
func (h *Harness) Critical(_ parallel.Region, _ int, d time.Duration) {
	h.Add(CriticalSection, d)
}

// micros converts d to fractional microseconds.
func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// WriteReport prints the total followed by the numbered metric listing:
//
//	Total Execution Time: 1234 microseconds
//
//	Detailed Timing Metrics (microseconds):
//	1. Thread Creation Overhead: 12.000
//	...
func WriteReport(w io.Writer, total time.Duration, entries []Entry) error {
	if _, err := fmt.Fprintf(w, "Total Execution Time: %d microseconds\n", total.Microseconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\nDetailed Timing Metrics (microseconds):\n"); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "%d. %s: %.3f\n", i+1, e.Name, e.Microseconds); err != nil {
			return err
		}
	}
	return nil
}
