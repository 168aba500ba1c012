package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// DrawType classifies why a position is drawn.
type DrawType int

const (
	NotDrawn DrawType = iota
	DrawByRepetition
	DrawByNoMoves
	DrawByInsufficientMaterial
)

// String returns a short description of the draw type.
func (d DrawType) String() string {
	switch d {
	case DrawByRepetition:
		return "repetition"
	case DrawByNoMoves:
		return "no legal moves"
	case DrawByInsufficientMaterial:
		return "insufficient material"
	default:
		return "none"
	}
}

// RepetitionMinHalfmoves is the halfmove clock needed before the repetition
// heuristic applies.
const RepetitionMinHalfmoves = 16

// IsCheckmated returns true if colour's king is attacked and colour has no
// legal move.
func IsCheckmated(pos *chess.Position, colour chess.Colour) bool {
	return IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the side to move has no legal move and is not
// checkmated.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !HasLegalMoves(pos, colour) && !IsInCheck(pos, colour)
}

// HasInsufficientMaterial reports whether neither side can force mate.
// Any queen, rook or pawn is enough, as is, for one colour, two knights,
// a knight with a bishop, or bishops on both square colours.
func HasInsufficientMaterial(pos *chess.Position) bool {
	var knights, bishops [2]int
	var lightBishop, darkBishop [2]bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Get(sq)
		if !chess.IsColoured(piece) {
			continue
		}
		c := chess.ExtractColour(piece)
		switch chess.ExtractPiece(piece) {
		case chess.Queen, chess.Rook, chess.Pawn:
			return false
		case chess.Knight:
			knights[c]++
		case chess.Bishop:
			bishops[c]++
			if sq.IsLight() {
				lightBishop[c] = true
			} else {
				darkBishop[c] = true
			}
		}
		if knights[c] >= 2 || (knights[c] > 0 && bishops[c] > 0) || (lightBishop[c] && darkBishop[c]) {
			return false
		}
	}
	return true
}

// IsRepetitionDraw applies the fixed-window repetition heuristic: the
// halfmove clock is at least RepetitionMinHalfmoves, the history is full,
// and its first four moves equal its last four. This catches an exact
// four-move cycle only; it is not three-fold repetition.
func IsRepetitionDraw(pos *chess.Position) bool {
	if pos.HalfmoveClock < RepetitionMinHalfmoves || pos.History.Len != chess.MaxHistory {
		return false
	}
	half := chess.MaxHistory / 2
	for i := 0; i < half; i++ {
		if pos.History.At(i) != pos.History.At(i+half) {
			return false
		}
	}
	return true
}

// DrawReason returns why the position is drawn, or NotDrawn.
func DrawReason(pos *chess.Position) DrawType {
	switch {
	case IsRepetitionDraw(pos):
		return DrawByRepetition
	case IsStalemate(pos):
		return DrawByNoMoves
	case HasInsufficientMaterial(pos):
		return DrawByInsufficientMaterial
	default:
		return NotDrawn
	}
}

// IsDraw returns true if any draw rule applies.
func IsDraw(pos *chess.Position) bool {
	return DrawReason(pos) != NotDrawn
}

// IsGameOver returns true on a draw or when either side is checkmated.
func IsGameOver(pos *chess.Position) bool {
	return IsDraw(pos) || IsCheckmated(pos, chess.White) || IsCheckmated(pos, chess.Black)
}
