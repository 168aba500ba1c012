package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A side
// without a king is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsAttacked(pos, king, colour)
}

// IsAttacked reports whether any piece of the opponent of defender attacks
// target. Each enemy piece is asked for its attack-only moves, so castling
// is never considered and a pawn only attacks a diagonal holding one of
// defender's pieces. An empty square on a pawn diagonal is not attacked.
func IsAttacked(pos *chess.Position, target chess.Square, defender chess.Colour) bool {
	attacker := defender.Opposite()
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !pos.IsColour(sq, attacker) {
			continue
		}
		for _, m := range pieceMoves(pos, sq, true) {
			if m.To == target {
				return true
			}
		}
	}
	return false
}
