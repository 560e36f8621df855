package config

import (
	"fmt"
	"os"

	"oopclassroom/internal/logging"
)

// Environment variables read by Load
const (
	EnvLogLevel = "CLASSROOM_LOG_LEVEL"
	EnvLogFile  = "CLASSROOM_LOG_FILE"
)

// Config holds the runtime settings of the classroom binaries
type Config struct {
	LogLevel logging.LogLevel
	LogFile  string // empty means stderr
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv, so tests can supply their own lookup
func LoadFrom(getenv func(string) string) (*Config, error) {
	level, err := logging.ParseLevel(getenv(EnvLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}

	return &Config{
		LogLevel: level,
		LogFile:  getenv(EnvLogFile),
	}, nil
}

// Logger builds the logger described by the configuration
func (c *Config) Logger() *logging.Logger {
	if c.LogFile == "" {
		return logging.Console(c.LogLevel)
	}
	return logging.File(c.LogFile, true, c.LogLevel)
}
