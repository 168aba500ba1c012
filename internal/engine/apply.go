package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Apply returns the position reached by playing m. The input position is
// never modified. The move is not checked for legality, only for being
// well formed; an invalid move or an empty origin square is a programming
// error and panics with a *errors.PositionError.
//
// Besides relocating the piece, Apply removes a pawn captured en passant,
// moves the rook when the king castles, promotes (to a queen when m names
// no piece), hands the move to the opponent of the piece that moved,
// updates castling rights, the en passant target, both clocks and the
// move history.
func Apply(pos *chess.Position, m chess.Move) *chess.Position {
	if !m.IsValid() || pos.IsEmpty(m.From) {
		panic(&errors.PositionError{
			Err:      errors.ErrInvalidMove,
			FEN:      FEN(pos),
			MoveText: m.String(),
		})
	}

	next := pos.Copy()
	piece := pos.Get(m.From)
	colour := chess.ExtractColour(piece)
	kind := chess.ExtractPiece(piece)
	captured := !pos.IsEmpty(m.To)

	next.Set(m.To, piece)
	next.Set(m.From, chess.Empty)

	switch kind {
	case chess.Pawn:
		if m.To == pos.EnPassant && !captured && m.From.File() != m.To.File() {
			// The captured pawn sits beside the origin, on the destination file.
			next.Set(chess.NewSquare(m.To.File(), m.From.Rank()), chess.Empty)
			captured = true
		}
		if m.To.Rank() == promotionRank(colour) {
			promotion := m.Promotion
			if promotion == chess.Off {
				promotion = chess.Queen
			}
			next.Set(m.To, chess.MakeColouredPiece(colour, promotion))
		}
	case chess.King:
		if rule := castleRuleFor(piece, m); rule != nil {
			next.Set(rule.rookTo, next.Get(rule.rookFrom))
			next.Set(rule.rookFrom, chess.Empty)
		}
	}

	next.ToMove = colour.Opposite()
	next.Castling = castlingRightsAfter(pos.Castling, m, next)

	next.EnPassant = chess.NoSquare
	if kind == chess.Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		next.EnPassant = chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	if kind == chess.Pawn || captured {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}
	if colour == chess.Black {
		next.FullmoveNumber = pos.FullmoveNumber + 1
	}

	next.History.Push(m)
	return next
}

// ApplyUCI parses a coordinate-encoded move, checks it against the legal
// moves of the side to move and applies it. A five-character promotion may
// be given without its piece letter, in which case the queen is chosen.
func ApplyUCI(pos *chess.Position, text string) (*chess.Position, error) {
	m, err := ResolveMove(pos, text)
	if err != nil {
		return nil, err
	}
	return Apply(pos, m), nil
}

// ResolveMove parses text and returns the matching legal move for the side
// to move.
func ResolveMove(pos *chess.Position, text string) (chess.Move, error) {
	m, err := chess.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	for _, legal := range LegalMoves(pos) {
		if legal.From != m.From || legal.To != m.To {
			continue
		}
		if legal.Promotion == m.Promotion || (m.Promotion == chess.Off && legal.Promotion == chess.Queen) {
			return legal, nil
		}
	}
	return chess.Move{}, &errors.PositionError{
		Err:      errors.ErrIllegalMove,
		FEN:      FEN(pos),
		MoveText: text,
	}
}

// ApplyMoves plays a sequence of coordinate-encoded moves from pos. The
// returned error names the 1-based ply that failed.
func ApplyMoves(pos *chess.Position, moves []string) (*chess.Position, error) {
	for i, text := range moves {
		next, err := ApplyUCI(pos, text)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", i+1, err)
		}
		pos = next
	}
	return pos, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
