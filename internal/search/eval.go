// Package search chooses moves with a depth-limited minimax search over a
// material evaluation, driven by iterative deepening.
package search

import (
	"math"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
)

// Score bounds. A checkmate of Black scores MaxScore and of White MinScore.
const (
	MaxScore = math.MaxInt
	MinScore = math.MinInt
)

// pieceValues holds the material value of each piece kind.
var pieceValues = [chess.NumPieceValues]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// PieceValue returns the material value of a piece kind.
func PieceValue(kind chess.Piece) int {
	if kind < 0 || kind >= chess.NumPieceValues {
		return 0
	}
	return pieceValues[kind]
}

// Material returns White's material minus Black's.
func Material(pos *chess.Position) int {
	score := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Get(sq)
		if !chess.IsColoured(piece) {
			continue
		}
		value := PieceValue(chess.ExtractPiece(piece))
		if chess.ExtractColour(piece) == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// Utility scores a terminal position: 0 for a draw, MinScore when White is
// checkmated and MaxScore when Black is. ok is false for a position that is
// not terminal, and the score must then be ignored.
func Utility(pos *chess.Position) (score int, ok bool) {
	switch {
	case engine.IsDraw(pos):
		return 0, true
	case engine.IsCheckmated(pos, chess.White):
		return MinScore, true
	case engine.IsCheckmated(pos, chess.Black):
		return MaxScore, true
	default:
		return 0, false
	}
}
