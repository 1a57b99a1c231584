package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wedding-timeline/internal/cli"
	"wedding-timeline/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
	})

	if err := cli.New(logger, os.Stdout).Execute(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
