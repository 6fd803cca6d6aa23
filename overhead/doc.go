// Package overhead attributes the wall time of a parallel shortest-path run
// to ten named sources of parallel overhead.
//
// A Harness is a dijkstra.Observer. Attach it with dijkstra.WithObserver and
// it accumulates, for the whole run:
//
//	Thread Creation Overhead      fork until the last worker started (every region)
//	Thread Termination Overhead   last worker finished until the join returned
//	Parallel Region Overhead      wall time of every selection phase
//	Critical Section Time         lock wait + merge in the selection reduction
//	Barrier Synchronization Time  per-worker idle time at region exit
//	Reduction Operation Time      calibration reduction probe
//	Task Scheduling Overhead      per-worker scan time in selection
//	Memory Allocation Time        allocation of the distance/visited vectors
//	Data Distribution Time        parallel initialisation of both vectors
//	Load Balancing Time           wall time of every dynamic relaxation phase
//
// Counters only grow during a run. Report returns them in the fixed order
// above, in microseconds. The harness never sees or touches distances.
//
// Calibrate runs the stand-alone probes (thread create/terminate, barrier,
// reduction) before a run. Collector exports a finished run as Prometheus
// gauges.
package overhead
