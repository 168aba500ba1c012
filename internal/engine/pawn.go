package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// PawnMoves generates the pseudo-legal moves of the pawn on from: single and
// double pushes onto empty squares, diagonal captures of enemy pieces and en
// passant captures. A move landing on the far rank is emitted once per
// promotion choice.
//
// With attackOnly set only diagonal captures of enemy pieces are returned:
// pushes and en passant are left out, and an empty diagonal is not an
// attack.
func PawnMoves(pos *chess.Position, from chess.Square, attackOnly bool) []chess.Move {
	colour := chess.ExtractColour(pos.Get(from))
	dir := chess.ColourOffset(colour)
	file, rank := from.File(), from.Rank()
	toRank := rank + dir
	if toRank < 0 || toRank >= chess.BoardSize {
		return nil
	}

	var moves []chess.Move
	if !attackOnly {
		one := chess.NewSquare(file, toRank)
		if pos.IsEmpty(one) {
			moves = addPawnMove(moves, colour, from, one)
			if rank == pawnStartRank(colour) {
				two := chess.NewSquare(file, toRank+dir)
				if pos.IsEmpty(two) {
					moves = addPawnMove(moves, colour, from, two)
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		toFile := file + df
		if toFile < 0 || toFile >= chess.BoardSize {
			continue
		}
		to := chess.NewSquare(toFile, toRank)
		if pos.IsColour(to, colour.Opposite()) || (!attackOnly && isEnPassantTarget(pos, colour, to)) {
			moves = addPawnMove(moves, colour, from, to)
		}
	}

	return moves
}

// addPawnMove appends a pawn move, expanding it into the four promotion
// choices when it reaches the far rank.
func addPawnMove(moves []chess.Move, colour chess.Colour, from, to chess.Square) []chess.Move {
	if to.Rank() != promotionRank(colour) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, piece := range chess.PromotionPieces {
		moves = append(moves, chess.NewPromotion(from, to, piece))
	}
	return moves
}

// isEnPassantTarget reports whether a pawn of colour may capture en passant
// onto to.
func isEnPassantTarget(pos *chess.Position, colour chess.Colour, to chess.Square) bool {
	if pos.EnPassant == chess.NoSquare || to != pos.EnPassant {
		return false
	}
	// White captures onto the sixth rank, Black onto the third.
	if colour == chess.White {
		return to.Rank() == 5
	}
	return to.Rank() == 2
}

// pawnStartRank returns the 0-based rank pawns of colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// promotionRank returns the 0-based rank on which pawns of colour promote.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}
