package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parsssp/dijkstra"
	"github.com/katalvlaran/parsssp/internal/config"
	"github.com/katalvlaran/parsssp/matrix"
	"github.com/katalvlaran/parsssp/overhead"
	"github.com/katalvlaran/parsssp/parallel"
)

// runOptions holds the flag values of the root command.
type runOptions struct {
	source         int
	seed           int64
	maxWeight      int64
	density        float64
	chunk          int
	input          string
	printDistances bool
	noReport       bool
	verify         bool
	metricsFile    string
	configFile     string
	verbose        bool
}

// run executes one shortest-path computation:
//  1. parse positional arguments;
//  2. resolve configuration (defaults < file < env < flags);
//  3. check the graph size against the vertex limit;
//  4. build or read the graph;
//  5. calibrate and attach the overhead harness unless --no-report;
//  6. run the parallel Dijkstra and, optionally, verify it;
//  7. print results and export metrics.
func (c *CLI) run(cmd *cobra.Command, args []string, opts *runOptions) error {
	size, workers, err := parsePositionals(args)
	if err != nil {
		return err
	}

	cfg, err := c.resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := c.Logger.With("run", uuid.NewString()[:8])
	logger.Debug("configuration", "vertices", size, "workers", workers, "source", cfg.Source,
		"chunk", cfg.ChunkSize, "density", cfg.Density, "max_weight", cfg.MaxWeight)

	if err := matrix.CheckOrder(size, cfg.MaxVertices); err != nil {
		return fmt.Errorf("cannot allocate a %d-vertex graph: %w", size, err)
	}

	g, err := c.loadGraph(logger, size, cfg, opts.input)
	if err != nil {
		return err
	}

	dopts := []dijkstra.Option{
		dijkstra.Source(cfg.Source),
		dijkstra.WithWorkers(workers),
		dijkstra.WithChunkSize(cfg.ChunkSize),
	}

	var harness *overhead.Harness
	if !opts.noReport {
		harness = overhead.New()
		prog := newProgress(logger)
		if err := harness.Calibrate(workers, size); err != nil {
			return fmt.Errorf("calibrate: %w", err)
		}
		prog.done("calibrated probes")
		dopts = append(dopts, dijkstra.WithObserver(harness))
	}

	start := time.Now()
	res, err := dijkstra.Dijkstra(g, dopts...)
	total := time.Since(start)
	if err != nil {
		return err
	}
	logger.Info("shortest paths computed",
		"vertices", size, "workers", res.Workers, "iterations", res.Iterations,
		"early_exit", res.EarlyExit, "elapsed", total.Round(time.Microsecond))

	if opts.verify {
		if err := verify(g, res); err != nil {
			return err
		}
		logger.Info("verified against sequential reference")
	}

	out := cmd.OutOrStdout()
	if opts.printDistances {
		if err := writeDistances(out, res.Distances); err != nil {
			return err
		}
	}
	if harness != nil {
		if err := overhead.WriteReport(out, total, harness.Report()); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if harness == nil {
			harness = overhead.New()
		}
		col := overhead.NewCollector()
		col.Observe(harness, overhead.RunInfo{
			Total:      total,
			Iterations: res.Iterations,
			Workers:    res.Workers,
			Vertices:   size,
		})
		if err := col.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}

	return nil
}

// parsePositionals reads <graph_size> [num_threads]. Both must be positive.
func parsePositionals(args []string) (size, workers int, err error) {
	size, err = positiveInt("graph_size", args[0])
	if err != nil {
		return 0, 0, err
	}

	workers = parallel.DefaultWorkers()
	if len(args) > 1 {
		workers, err = positiveInt("num_threads", args[1])
		if err != nil {
			return 0, 0, err
		}
	}

	return size, workers, nil
}

func positiveInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, usageErrorf("%s must be a positive integer, got %q", name, s)
	}
	return v, nil
}

// resolveConfig loads the config file and environment, applies explicitly
// set flags on top, and adjusts the log level.
func (c *CLI) resolveConfig(cmd *cobra.Command, opts *runOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("source") {
		cfg.Source = opts.source
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("max-weight") {
		cfg.MaxWeight = opts.maxWeight
	}
	if f.Changed("density") {
		cfg.Density = opts.density
	}
	if f.Changed("chunk") {
		cfg.ChunkSize = opts.chunk
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, &UsageError{Err: err}
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, &UsageError{Err: err}
	}
	c.SetLogLevel(level)

	return cfg, nil
}

// loadGraph reads the matrix from path, or generates one when path is empty.
func (c *CLI) loadGraph(logger *log.Logger, size int, cfg config.Config, path string) (*matrix.Adjacency, error) {
	prog := newProgress(logger)

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		g, err := matrix.Read(f, size)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		prog.done("graph loaded", "path", path, "edges", g.EdgeCount())
		return g, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := matrix.Random(size,
		matrix.WithSeed(seed),
		matrix.WithMaxWeight(cfg.MaxWeight),
		matrix.WithDensity(cfg.Density),
	)
	if err != nil {
		return nil, fmt.Errorf("generate graph: %w", err)
	}
	prog.done("graph generated", "seed", seed, "edges", g.EdgeCount())

	return g, nil
}

// verify compares res against the sequential heap-based reference.
func verify(g *matrix.Adjacency, res *dijkstra.Result) error {
	want, err := dijkstra.Sequential(g, res.Source)
	if err != nil {
		return err
	}
	for v := range want {
		if want[v] != res.Distances[v] {
			return fmt.Errorf("%w: vertex %d: got %s, want %s",
				ErrVerifyFailed, v, formatDistance(res.Distances[v]), formatDistance(want[v]))
		}
	}
	return nil
}
