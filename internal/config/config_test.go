package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/negamax-chess-go/internal/errors"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Depth != 3 {
		t.Errorf("Depth = %d, want 3", cfg.Depth)
	}
	if !cfg.Shuffle {
		t.Error("Shuffle should be true by default")
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.TTCapacity <= 0 {
		t.Errorf("TTCapacity = %d, want a positive bound", cfg.TTCapacity)
	}
	if cfg.CheckmateScore != 100000 {
		t.Errorf("CheckmateScore = %d, want 100000", cfg.CheckmateScore)
	}
	if cfg.StalemateScore != 0 {
		t.Errorf("StalemateScore = %d, want 0", cfg.StalemateScore)
	}
	if cfg.CenterBonus != 10 {
		t.Errorf("CenterBonus = %d, want 10", cfg.CenterBonus)
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	valid := NewSearchConfig()

	tests := []struct {
		name    string
		mutate  func(c *SearchConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *SearchConfig) {}, false},
		{"depth one", func(c *SearchConfig) { c.Depth = 1 }, false},
		{"unbounded table", func(c *SearchConfig) { c.TTCapacity = 0 }, false},
		{"zero depth", func(c *SearchConfig) { c.Depth = 0 }, true},
		{"negative depth", func(c *SearchConfig) { c.Depth = -2 }, true},
		{"negative capacity", func(c *SearchConfig) { c.TTCapacity = -1 }, true},
		{"zero checkmate score", func(c *SearchConfig) { c.CheckmateScore = 0 }, true},
		{"stalemate outranks mate", func(c *SearchConfig) { c.StalemateScore = 200000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output and log streams should default to stdout/stderr")
	}
	if got := cfg.Eval.Material[chess.Queen]; got != 900 {
		t.Errorf("queen value = %d, want 900", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_ValidateRejectsNegativeMaterial(t *testing.T) {
	cfg := NewConfig()
	cfg.Eval.Material[chess.Rook] = -1
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithDepth(2).
		WithShuffle(false).
		WithSeed(42).
		WithTTCapacity(128).
		WithMateScores(5000, -10).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(2).
		Build()

	if cfg.Search.Depth != 2 {
		t.Errorf("Depth = %d, want 2", cfg.Search.Depth)
	}
	if cfg.Search.Shuffle {
		t.Error("Shuffle should be disabled")
	}
	if cfg.Search.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Search.Seed)
	}
	if cfg.Search.TTCapacity != 128 {
		t.Errorf("TTCapacity = %d, want 128", cfg.Search.TTCapacity)
	}
	if cfg.Search.CheckmateScore != 5000 || cfg.Search.StalemateScore != -10 {
		t.Errorf("mate scores = %d/%d, want 5000/-10", cfg.Search.CheckmateScore, cfg.Search.StalemateScore)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("writers were not applied")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "summary %d\n", 7)
	cfg.Logf(2, "commentary\n")

	if got := buf.String(); got != "summary 7\n" {
		t.Errorf("log = %q, want %q", got, "summary 7\n")
	}

	cfg.LogFile = nil
	cfg.Logf(0, "dropped") // must not panic
}
