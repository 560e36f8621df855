package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oopclassroom/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlaygroundBadConfig(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "verbose-please")

	out := &bytes.Buffer{}
	err := RunPlayground(context.Background(), strings.NewReader(""), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvLogLevel)
	assert.Empty(t, out.String())
}

func TestRunPlaygroundCancelled(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	err := RunPlayground(ctx, strings.NewReader(""), out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunPlaygroundLogsFailureToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "playground.log")
	t.Setenv(config.EnvLogLevel, "info")
	t.Setenv(config.EnvLogFile, logFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunPlayground(ctx, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)

	contents, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(contents), "playground failed")
	assert.Contains(t, string(contents), "context canceled")
}
