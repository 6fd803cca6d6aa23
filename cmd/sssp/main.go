// Command sssp runs the instrumented parallel single-source shortest-path
// benchmark. See `sssp --help`.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/parsssp/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
