package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"oopclassroom/internal/config"
	"oopclassroom/internal/logging"
	"oopclassroom/internal/playground"
)

// RunPlayground starts the interactive playground on the given streams.
// Failures are logged before the configured logger is closed.
func RunPlayground(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		logging.Get().Error("invalid configuration", "error", err)
		return err
	}

	logger := cfg.Logger()
	logging.Init(logger)
	defer func() {
		logging.Init(nil)
		logger.Close()
	}()

	chooser := playground.NewPromptChooserWithIO(in, out)
	if err := playground.New(chooser, out).Run(ctx); err != nil {
		logger.Error("playground failed", "error", err)
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RunPlayground(ctx, os.Stdin, os.Stdout); err != nil {
		stop()
		os.Exit(1)
	}
}
