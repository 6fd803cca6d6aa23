package overhead

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector exports one finished run as Prometheus gauges on a private
// registry, so several collectors never clash.
type Collector struct {
	reg        *prometheus.Registry
	overhead   *prometheus.GaugeVec
	total      prometheus.Gauge
	iterations prometheus.Gauge
	workers    prometheus.Gauge
	vertices   prometheus.Gauge
}

// NewCollector registers the gauges on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		overhead: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sssp_overhead_microseconds",
			Help: "Accumulated parallel overhead per source, in microseconds",
		}, []string{"metric"}),
		total: f.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_total_microseconds",
			Help: "Wall time of the shortest-path run, in microseconds",
		}),
		iterations: f.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_iterations",
			Help: "Completed select+relax iterations",
		}),
		workers: f.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_workers",
			Help: "Goroutines spawned per parallel region",
		}),
		vertices: f.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_vertices",
			Help: "Graph order",
		}),
	}
}

// RunInfo describes a finished run for export.
type RunInfo struct {
	Total      time.Duration
	Iterations int
	Workers    int
	Vertices   int
}

// Observe copies the harness counters and run info into the gauges.
func (c *Collector) Observe(h *Harness, info RunInfo) {
	for _, e := range h.Report() {
		c.overhead.WithLabelValues(e.Metric.Key()).Set(e.Microseconds)
	}
	c.total.Set(micros(info.Total))
	c.iterations.Set(float64(info.Iterations))
	c.workers.Set(float64(info.Workers))
	c.vertices.Set(float64(info.Vertices))
}

// Gatherer exposes the private registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.reg
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
