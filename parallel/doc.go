// Package parallel implements the fork-join runtime used by the shortest-path
// engine.
//
// Overview:
//
//   - A Runtime has a fixed worker count. Every parallel region spawns exactly
//     that many goroutines and joins them before returning; nothing persists
//     between regions.
//   - ForkJoin statically partitions [0,n) into contiguous blocks, one per
//     worker.
//   - Dynamic hands out fixed-size chunks of [0,n) from a shared atomic cursor,
//     so faster workers take more chunks.
//   - Reduce maps each block to a worker-local value and merges the locals into
//     one result under a single mutex.
//
// Ordering:
//
//   - A region returns only after all workers have finished. All writes made
//     inside a region happen-before the caller's next statement.
//
// Instrumentation:
//
//   - A Runtime built WithHooks reports spawn latency, join latency, per-worker
//     work time, exit-barrier waits and critical-section time. Without hooks no
//     timestamps are taken at all.
package parallel
