package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// GameStatus is the outcome of a position.
type GameStatus int

const (
	Ongoing GameStatus = iota
	WhiteWins
	BlackWins
	Drawn
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Drawn:
		return "draw"
	default:
		return "ongoing"
	}
}

// Result returns the game result token ("1-0", "0-1", "1/2-1/2" or "*").
func (s GameStatus) Result() string {
	switch s {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Status classifies a position. Draw rules are checked before checkmate.
func Status(pos *chess.Position) GameStatus {
	switch {
	case IsDraw(pos):
		return Drawn
	case IsCheckmated(pos, chess.White):
		return BlackWins
	case IsCheckmated(pos, chess.Black):
		return WhiteWins
	default:
		return Ongoing
	}
}
