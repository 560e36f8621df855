package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"oopclassroom/internal/config"
	"oopclassroom/internal/lesson"
	"oopclassroom/internal/logging"
)

// RunClassroom plays the lesson once, writing the lesson text to out.
// Failures are logged before the configured logger is closed.
func RunClassroom(ctx context.Context, out io.Writer) error {
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

	logger.Debug("classroom started", "log_level", cfg.LogLevel.String())
	if err := lesson.Run(ctx, out); err != nil {
		logger.Error("classroom failed", "error", err)
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RunClassroom(ctx, os.Stdout); err != nil {
		stop()
		os.Exit(1)
	}
}
