package config

import (
	"fmt"

	"github.com/lgbarn/negamax-chess-go/internal/errors"
)

// SearchConfig holds settings consumed by the search engine.
type SearchConfig struct {
	// Depth is the fixed search depth in plies.
	Depth int

	// Shuffle randomises the order of root moves before searching, so that
	// equally scored moves are chosen differently across runs.
	Shuffle bool

	// Seed for the shuffle source. Zero means seed from the clock.
	Seed int64

	// TTCapacity bounds the transposition table (0 = unlimited).
	TTCapacity int

	// CheckmateScore is returned (negated) for a side that is mated.
	CheckmateScore int

	// StalemateScore is returned for a side with no moves that is not in check.
	StalemateScore int

	// CenterBonus is the ordering bonus for quiet moves to d4, e4, d5 or e5.
	CenterBonus int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() SearchConfig {
	return SearchConfig{
		Depth:          3,
		Shuffle:        true,
		TTCapacity:     1 << 20,
		CheckmateScore: 100000,
		StalemateScore: 0,
		CenterBonus:    10,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 {
		return fmt.Errorf("search depth %d must be positive: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.TTCapacity < 0 {
		return fmt.Errorf("transposition table capacity %d is negative: %w", s.TTCapacity, errors.ErrInvalidConfig)
	}
	if s.CheckmateScore <= 0 {
		return fmt.Errorf("checkmate score %d must be positive: %w", s.CheckmateScore, errors.ErrInvalidConfig)
	}
	if abs(s.StalemateScore) >= s.CheckmateScore {
		return fmt.Errorf("stalemate score %d must be smaller than checkmate score %d: %w",
			s.StalemateScore, s.CheckmateScore, errors.ErrInvalidConfig)
	}
	return nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
