// Package config provides configuration for the minimax-chess engine and CLI.
package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=chosen moves, 2=per-depth commentary

	// Sub-configurations
	Search *SearchConfig
	Game   *GameConfig
	Output *OutputConfig
	Batch  *BatchConfig

	// Workers is the number of concurrent searches for batch analysis and
	// the goroutine limit for perft divide.
	Workers int

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Batch:      NewBatchConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logger returns a logger writing to LogFile, or one that discards
// everything when Verbosity is 0 or no log file is set.
func (c *Config) Logger() *log.Logger {
	if c.LogFile == nil || c.Verbosity <= 0 {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, "", log.LstdFlags)
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}
