package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// GenerateLegalMoves returns every legal move for colour: each pseudo-legal
// move is applied to a copy of the position and kept only if the mover's
// king is not left attacked. Moves are ordered by origin square, then by
// generator order.
func GenerateLegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	moves := pseudoLegalMoves(pos, colour)

	// Filter in place
	legal := moves[:0]
	for _, m := range moves {
		if !leavesKingAttacked(pos, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns the legal moves for the side to move.
func LegalMoves(pos *chess.Position) []chess.Move {
	return GenerateLegalMoves(pos, pos.ToMove)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first one found.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !pos.IsColour(sq, colour) {
			continue
		}
		for _, m := range pieceMoves(pos, sq, false) {
			if !leavesKingAttacked(pos, m, colour) {
				return true
			}
		}
	}
	return false
}

// IsLegal reports whether m is among the legal moves of the piece on its
// origin square.
func IsLegal(pos *chess.Position, m chess.Move) bool {
	if !m.IsValid() || pos.IsEmpty(m.From) {
		return false
	}
	colour := chess.ExtractColour(pos.Get(m.From))
	for _, candidate := range pieceMoves(pos, m.From, false) {
		if candidate == m {
			return !leavesKingAttacked(pos, m, colour)
		}
	}
	return false
}

// pseudoLegalMoves concatenates the generator output of every piece of
// colour, scanning squares a1 to h8.
func pseudoLegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if pos.IsColour(sq, colour) {
			moves = append(moves, pieceMoves(pos, sq, false)...)
		}
	}
	return moves
}

// leavesKingAttacked simulates m and checks the mover's king.
func leavesKingAttacked(pos *chess.Position, m chess.Move, colour chess.Colour) bool {
	return IsInCheck(Apply(pos, m), colour)
}
