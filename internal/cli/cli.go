// Package cli implements the sssp command-line interface.
//
// The command generates (or reads) a dense undirected graph, runs the
// parallel Dijkstra from one source and prints either the instrumented
// overhead report, the distance table, or both. It is built with cobra and
// logs to stderr through charmbracelet/log; stdout carries results only.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Run executes the command with args and returns the process exit code.
// Errors go to stderr; usage errors are followed by the usage text and
// produce no stdout output.
func (c *CLI) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprint(stderr, root.UsageString())
	}
	return ExitFailure
}

// RootCommand creates the sssp cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:   "sssp <graph_size> [num_threads]",
		Short: "Parallel single-source shortest paths with overhead attribution",
		Long: `sssp runs a fork-join parallel Dijkstra over a dense, undirected,
non-negatively weighted graph of graph_size vertices and reports where the
parallel wall time went: thread spin-up, barriers, critical sections,
reduction, scheduling, allocation, data distribution and load balancing.

num_threads selects the goroutines per parallel region and defaults to the
number of CPUs.`,
		Example: `  sssp 2000
  sssp 2000 8 --seed 42
  sssp 5 1 --input graph.txt --print-distances --no-report`,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args, opts)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	f := root.Flags()
	f.IntVar(&opts.source, "source", 0, "source vertex index")
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed for the generated graph (0 = clock)")
	f.Int64Var(&opts.maxWeight, "max-weight", 0, "largest generated edge weight")
	f.Float64Var(&opts.density, "density", 0, "probability that a vertex pair is connected")
	f.IntVar(&opts.chunk, "chunk", 0, "relaxation dynamic-schedule chunk size")
	f.StringVar(&opts.input, "input", "", "read the row-major adjacency matrix from this file")
	f.BoolVar(&opts.printDistances, "print-distances", false, "print the vertex/distance table")
	f.BoolVar(&opts.noReport, "no-report", false, "skip instrumentation and the overhead report")
	f.BoolVar(&opts.verify, "verify", false, "check distances against a sequential reference")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	f.StringVar(&opts.configFile, "config", "", "TOML configuration file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// validateArgs enforces <graph_size> [num_threads] arity.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageErrorf("expected <graph_size> [num_threads], got %d argument(s)", len(args))
	}
	return nil
}
