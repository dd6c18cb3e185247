package config

import (
	"io"

	"github.com/lgbarn/negamax-chess-go/internal/eval"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithShuffle enables or disables root move shuffling.
func (b *ConfigBuilder) WithShuffle(enabled bool) *ConfigBuilder {
	b.cfg.Search.Shuffle = enabled
	return b
}

// WithSeed sets the shuffle seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithTTCapacity sets the transposition table capacity.
func (b *ConfigBuilder) WithTTCapacity(capacity int) *ConfigBuilder {
	b.cfg.Search.TTCapacity = capacity
	return b
}

// WithMateScores sets the checkmate and stalemate sentinel scores.
func (b *ConfigBuilder) WithMateScores(checkmate, stalemate int) *ConfigBuilder {
	b.cfg.Search.CheckmateScore = checkmate
	b.cfg.Search.StalemateScore = stalemate
	return b
}

// WithWeights sets the evaluation weights.
func (b *ConfigBuilder) WithWeights(w eval.Weights) *ConfigBuilder {
	b.cfg.Eval = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
