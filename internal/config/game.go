package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess/internal/errors"
)

// DefaultMaxTurns is the default ply limit for self-play.
const DefaultMaxTurns = 200

// GameConfig holds settings for the self-play driver.
type GameConfig struct {
	// MaxTurns stops self-play after this many plies; 0 means no limit.
	MaxTurns int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{MaxTurns: DefaultMaxTurns}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxTurns < 0 {
		return fmt.Errorf("max turns (%d) is negative: %w", g.MaxTurns, errors.ErrInvalidConfig)
	}
	return nil
}
