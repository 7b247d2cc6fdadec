package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := NewRunner(RunnerOpts{})
	if err := runner.Command().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cuer: %v\n", err)
		return 1
	}
	return 0
}
