// Package config provides configuration for the chess engine and its driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/negamax-chess-go/internal/errors"
	"github.com/lgbarn/negamax-chess-go/internal/eval"
)

// Config holds all program configuration.
type Config struct {
	// Search engine settings.
	Search SearchConfig

	// Evaluation weights: material values, piece-square tables and
	// positional terms.
	Eval eval.Weights

	// Verbosity: 0=nothing, 1=search summaries, 2=running commentary.
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Eval:       eval.DefaultWeights(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	for kind, v := range c.Eval.Material {
		if v < 0 {
			return fmt.Errorf("material value for kind %d is negative: %w", kind, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// Logf writes a message to the log stream when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
