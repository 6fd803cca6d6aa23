package dijkstra

import (
	"time"

	"github.com/katalvlaran/parsssp/parallel"
)

// Measure runs fn and, when obs is non-nil, reports its wall time for phase.
// The value returned by fn is passed through untouched. With a nil observer
// no clock is read and the returned duration is zero.
func Measure[T any](obs Observer, phase Phase, fn func() T) (T, time.Duration) {
	if obs == nil {
		return fn(), 0
	}

	start := time.Now()
	v := fn()
	d := time.Since(start)
	obs.Phase(phase, d)

	return v, d
}

// hooksOf returns the parallel hooks carried by obs, or nil.
func hooksOf(obs Observer) parallel.Hooks {
	if obs == nil {
		return nil
	}

	return obs
}
