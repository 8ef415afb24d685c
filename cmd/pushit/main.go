package main

import (
	"context"
	"os"
	"os/signal"

	"pushit.dev/pushit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := cli.Execute(ctx, rootCmd, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
