// Package config provides configuration for the chess rules engine and the
// replay tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of games replayed concurrently by the CLI.
	// Zero means one per CPU.
	Workers int

	Engine *EngineConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Engine:     NewEngineConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Silent returns a copy of c that never logs. Engine settings are shared
// by value so the copy behaves identically.
func (c *Config) Silent() *Config {
	engine := *c.engineConfig()
	output := *c.outputConfig()
	return &Config{
		Workers:    c.Workers,
		Engine:     &engine,
		Output:     &output,
		OutputFile: io.Discard,
		LogFile:    io.Discard,
	}
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	case c.Workers < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", c.Workers)
	case c.OutputFile == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "nil output writer")
	case c.LogFile == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "nil log writer")
	}
	return nil
}

func (c *Config) engineConfig() *EngineConfig {
	if c.Engine == nil {
		return NewEngineConfig()
	}
	return c.Engine
}

func (c *Config) outputConfig() *OutputConfig {
	if c.Output == nil {
		return NewOutputConfig()
	}
	return c.Output
}
