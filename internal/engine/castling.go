package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// castleRule describes one castling option.
type castleRule struct {
	right    chess.CastlingRights
	colour   chess.Colour
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	// empty squares between king and rook
	between []chess.Square
	// squares the king stands on, crosses and lands on
	safe []chess.Square
}

var castleRules = [4]castleRule{
	{
		right: chess.WhiteKingside, colour: chess.White,
		kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
		between: []chess.Square{chess.F1, chess.G1},
		safe:    []chess.Square{chess.E1, chess.F1, chess.G1},
	},
	{
		right: chess.WhiteQueenside, colour: chess.White,
		kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
		between: []chess.Square{chess.B1, chess.C1, chess.D1},
		safe:    []chess.Square{chess.E1, chess.D1, chess.C1},
	},
	{
		right: chess.BlackKingside, colour: chess.Black,
		kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
		between: []chess.Square{chess.F8, chess.G8},
		safe:    []chess.Square{chess.E8, chess.F8, chess.G8},
	},
	{
		right: chess.BlackQueenside, colour: chess.Black,
		kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
		between: []chess.Square{chess.B8, chess.C8, chess.D8},
		safe:    []chess.Square{chess.E8, chess.D8, chess.C8},
	},
}

// KingMoves generates the king's steps to adjacent squares and, unless
// attackOnly is set, any castling moves whose right is still held, whose
// intervening squares are empty and whose king path is not attacked.
func KingMoves(pos *chess.Position, from chess.Square, attackOnly bool) []chess.Move {
	moves := offsetMoves(pos, from, kingOffsets[:])
	if attackOnly {
		return moves
	}

	colour := chess.ExtractColour(pos.Get(from))
	for i := range castleRules {
		rule := &castleRules[i]
		if rule.colour != colour || rule.kingFrom != from || !pos.Castling.Has(rule.right) {
			continue
		}
		if canCastle(pos, rule) {
			moves = append(moves, chess.NewMove(rule.kingFrom, rule.kingTo))
		}
	}
	return moves
}

// canCastle checks the occupancy and safety conditions of a castling rule.
func canCastle(pos *chess.Position, rule *castleRule) bool {
	if pos.Get(rule.rookFrom) != chess.MakeColouredPiece(rule.colour, chess.Rook) {
		return false
	}
	for _, sq := range rule.between {
		if !pos.IsEmpty(sq) {
			return false
		}
	}
	for _, sq := range rule.safe {
		if IsAttacked(pos, sq, rule.colour) {
			return false
		}
	}
	return true
}

// castleRuleFor returns the rule matching a king move, or nil when the move
// is not a castling move.
func castleRuleFor(piece chess.Piece, move chess.Move) *castleRule {
	if chess.ExtractPiece(piece) != chess.King {
		return nil
	}
	for i := range castleRules {
		rule := &castleRules[i]
		if rule.colour == chess.ExtractColour(piece) && rule.kingFrom == move.From && rule.kingTo == move.To {
			return rule
		}
	}
	return nil
}

// castlingRightsAfter computes the rights surviving a move. A right survives
// when it was held before, the move did not start on that side's king square
// or on the right's rook square, and the rook is still on its square
// afterwards.
func castlingRightsAfter(prior chess.CastlingRights, move chess.Move, next *chess.Position) chess.CastlingRights {
	rights := chess.NoCastling
	for i := range castleRules {
		rule := &castleRules[i]
		if !prior.Has(rule.right) {
			continue
		}
		if move.From == rule.kingFrom || move.From == rule.rookFrom {
			continue
		}
		if next.Get(rule.rookFrom) != chess.MakeColouredPiece(rule.colour, chess.Rook) {
			continue
		}
		rights |= rule.right
	}
	return rights
}
