package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/seqkit/internal/cli"
)

// shutdownSignals cancel the running command so deferred telemetry shutdown
// and report printing still happen.
var shutdownSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := cli.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "seqbench:", err)
		stop()
		os.Exit(1)
	}
}
