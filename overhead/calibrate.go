package overhead

import (
	"fmt"
	"time"

	"github.com/katalvlaran/parsssp/parallel"
)

// Probe repetition counts.
const (
	threadProbeRounds    = 5
	barrierProbeRounds   = 10
	reductionProbeRounds = 5
)

// Probe region labels.
const (
	regionThreadProbe    parallel.Region = "calibrate/threads"
	regionBarrierProbe   parallel.Region = "calibrate/barrier"
	regionReductionProbe parallel.Region = "calibrate/reduction"
)

// probeHooks forwards only the events a probe is meant to measure.
type probeHooks struct {
	parallel.NoopHooks
	h       *Harness
	threads bool // forward Spawned/Joined
	barrier bool // forward Barrier
}

func (p probeHooks) Spawned(_ parallel.Region, d time.Duration) {
	if p.threads {
		p.h.Add(ThreadCreation, d)
	}
}

func (p probeHooks) Joined(_ parallel.Region, d time.Duration) {
	if p.threads {
		p.h.Add(ThreadTermination, d)
	}
}

func (p probeHooks) Barrier(_ parallel.Region, _ int, d time.Duration) {
	if p.barrier {
		p.h.Add(BarrierSync, d)
	}
}

// Calibrate runs the stand-alone probes with the given worker count and adds
// their timings to h:
//
//   - thread probe: empty regions, feeding Thread Creation/Termination;
//   - barrier probe: regions with a one-microsecond body, feeding Barrier Sync;
//   - reduction probe: a parallel sum over size integers, feeding Reduction.
//
// Errors: parallel.ErrBadWorkers if workers <= 0.
func (h *Harness) Calibrate(workers, size int) error {
	threads, err := parallel.New(workers, parallel.WithHooks(probeHooks{h: h, threads: true}))
	if err != nil {
		return fmt.Errorf("overhead: calibrate: %w", err)
	}
	barrier, _ := parallel.New(workers, parallel.WithHooks(probeHooks{h: h, barrier: true}))
	plain, _ := parallel.New(workers)

	var i int
	for i = 0; i < threadProbeRounds; i++ {
		threads.ForkJoin(regionThreadProbe, workers, func(_, _, _ int) {})
	}

	for i = 0; i < barrierProbeRounds; i++ {
		barrier.ForkJoin(regionBarrierProbe, workers, func(_, _, _ int) {
			time.Sleep(time.Microsecond)
		})
	}

	data := make([]int64, max(size, 0))
	for i = range data {
		data[i] = 1
	}
	for i = 0; i < reductionProbeRounds; i++ {
		start := time.Now()
		_ = parallel.Reduce(plain, regionReductionProbe, len(data), int64(0),
			func(lo, hi int) int64 {
				var sum int64
				for _, v := range data[lo:hi] {
					sum += v
				}
				return sum
			},
			func(acc, x int64) int64 { return acc + x },
		)
		h.Add(Reduction, time.Since(start))
	}

	return nil
}
