package parallel

import (
	"errors"
	"runtime"
	"time"
)

// ErrBadWorkers indicates a non-positive worker count.
var ErrBadWorkers = errors.New("parallel: worker count must be positive")

// Region labels a parallel region for instrumentation.
type Region string

// Hooks receives timing events from instrumented regions.
// Implementations must be safe for concurrent use: Worker, Barrier and
// Critical may be called from several goroutines of the same region.
type Hooks interface {
	// Spawned reports the time from fork until the last worker started.
	Spawned(region Region, d time.Duration)

	// Joined reports the time from the last worker finishing until the join returned.
	Joined(region Region, d time.Duration)

	// Worker reports one worker's time in the work stage (merge excluded).
	Worker(region Region, worker int, d time.Duration)

	// Barrier reports how long one worker idled at the exit barrier.
	Barrier(region Region, worker int, d time.Duration)

	// Critical reports one worker's lock wait plus merge time.
	Critical(region Region, worker int, d time.Duration)
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) Spawned(Region, time.Duration)       {}
func (NoopHooks) Joined(Region, time.Duration)        {}
func (NoopHooks) Worker(Region, int, time.Duration)   {}
func (NoopHooks) Barrier(Region, int, time.Duration)  {}
func (NoopHooks) Critical(Region, int, time.Duration) {}

// Option configures a Runtime.
type Option func(*Runtime)

// WithHooks attaches instrumentation hooks. A nil h leaves the runtime
// uninstrumented.
func WithHooks(h Hooks) Option {
	return func(r *Runtime) {
		r.hooks = h
	}
}

// DefaultWorkers returns the hardware-available concurrency.
func DefaultWorkers() int {
	return runtime.NumCPU()
}
