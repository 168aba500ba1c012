package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Generator produces the pseudo-legal moves of the piece standing on from.
// attackOnly asks for only those moves that attack a square: pawn pushes,
// en passant and castling are left out.
type Generator func(pos *chess.Position, from chess.Square, attackOnly bool) []chess.Move

var (
	knightOffsets   = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	generatorByKind = map[chess.Piece]Generator{}
)

func init() {
	generatorByKind[chess.Pawn] = PawnMoves
	generatorByKind[chess.Knight] = KnightMoves
	generatorByKind[chess.Bishop] = BishopMoves
	generatorByKind[chess.Rook] = RookMoves
	generatorByKind[chess.Queen] = QueenMoves
	generatorByKind[chess.King] = KingMoves
}

// PieceMoves dispatches to the generator for whatever piece stands on from.
// Asking about an empty square is not fatal: the result is empty and the
// returned error wraps ErrEmptySquare.
func PieceMoves(pos *chess.Position, from chess.Square, attackOnly bool) ([]chess.Move, error) {
	if pos.IsEmpty(from) {
		return nil, fmt.Errorf("square %v: %w", from, errors.ErrEmptySquare)
	}
	return pieceMoves(pos, from, attackOnly), nil
}

// pieceMoves is PieceMoves for callers that only ever pass occupied squares.
func pieceMoves(pos *chess.Position, from chess.Square, attackOnly bool) []chess.Move {
	gen := generatorByKind[chess.ExtractPiece(pos.Get(from))]
	if gen == nil {
		return nil
	}
	return gen(pos, from, attackOnly)
}

// KnightMoves generates the knight's jumps that land on the board on an
// empty or enemy-occupied square.
func KnightMoves(pos *chess.Position, from chess.Square, _ bool) []chess.Move {
	return offsetMoves(pos, from, knightOffsets[:])
}

// BishopMoves generates the bishop's diagonal rays.
func BishopMoves(pos *chess.Position, from chess.Square, _ bool) []chess.Move {
	return slidingMoves(pos, from, true, false)
}

// RookMoves generates the rook's orthogonal rays.
func RookMoves(pos *chess.Position, from chess.Square, _ bool) []chess.Move {
	return slidingMoves(pos, from, false, true)
}

// QueenMoves generates the queen's diagonal and orthogonal rays.
func QueenMoves(pos *chess.Position, from chess.Square, _ bool) []chess.Move {
	return slidingMoves(pos, from, true, true)
}

// offsetMoves generates single-step moves for the knight and king.
func offsetMoves(pos *chess.Position, from chess.Square, offsets [][2]int) []chess.Move {
	colour := chess.ExtractColour(pos.Get(from))
	file, rank := from.File(), from.Rank()

	var moves []chess.Move
	for _, offset := range offsets {
		toFile := file + offset[0]
		toRank := rank + offset[1]
		if toFile < 0 || toFile >= chess.BoardSize || toRank < 0 || toRank >= chess.BoardSize {
			continue
		}
		to := chess.NewSquare(toFile, toRank)
		if !pos.IsColour(to, colour) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slidingMoves casts rays outward from a bishop, rook or queen. A ray stops
// at the board edge, before a friendly piece, or on an enemy piece.
func slidingMoves(pos *chess.Position, from chess.Square, diagonal, straight bool) []chess.Move {
	var dirs [][2]int
	if diagonal {
		dirs = append(dirs, diagonalDirs[:]...)
	}
	if straight {
		dirs = append(dirs, straightDirs[:]...)
	}

	colour := chess.ExtractColour(pos.Get(from))
	var moves []chess.Move
	for _, dir := range dirs {
		toFile := from.File() + dir[0]
		toRank := from.Rank() + dir[1]
		for toFile >= 0 && toFile < chess.BoardSize && toRank >= 0 && toRank < chess.BoardSize {
			to := chess.NewSquare(toFile, toRank)
			if !pos.IsEmpty(to) {
				if !pos.IsColour(to, colour) {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			toFile += dir[0]
			toRank += dir[1]
		}
	}
	return moves
}
