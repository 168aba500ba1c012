package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/minimax-chess/internal/errors"
)

// DefaultMaxDepth is the deepest iterative deepening iteration by default.
const DefaultMaxDepth = 1

// SearchConfig holds settings for the minimax search.
type SearchConfig struct {
	// MaxDepth is the last depth limit iterative deepening runs (0..MaxDepth).
	MaxDepth int

	// MoveTime bounds a single search; 0 means no deadline.
	MoveTime time.Duration

	// NodeLimit bounds the nodes visited by a single search; 0 means no limit.
	NodeLimit uint64

	// Seed seeds tie-breaking; 0 means seed from the wall clock.
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		MaxDepth: DefaultMaxDepth,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.MaxDepth < 0 {
		return fmt.Errorf("max depth (%d) is negative: %w", s.MaxDepth, errors.ErrInvalidConfig)
	}
	if s.MoveTime < 0 {
		return fmt.Errorf("move time (%v) is negative: %w", s.MoveTime, errors.ErrInvalidConfig)
	}
	return nil
}

// ResolvedSeed returns Seed, or the current time when Seed is 0.
func (s *SearchConfig) ResolvedSeed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}
