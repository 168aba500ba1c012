package chess

import (
	"fmt"

	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Move is the unit exchanged between the generators, the legality filter and
// the transition function. Promotion is Off unless the move is a pawn
// promotion.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: Off}
}

// NewPromotion creates a promoting move.
func NewPromotion(from, to Square, promotion Piece) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// IsValid reports whether both squares lie on the board and the promotion
// piece, if any, is a legal promotion choice.
func (m Move) IsValid() bool {
	if !m.From.Valid() || !m.To.Valid() || m.From == m.To {
		return false
	}
	switch m.Promotion {
	case Off, Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// IsPromotion returns true if the move names a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != Off
}

// String returns the coordinate encoding: origin, destination and an
// optional lowercase promotion letter (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	buf := make([]byte, 0, 5)
	buf = append(buf, m.From.String()...)
	buf = append(buf, m.To.String()...)
	if m.IsPromotion() {
		buf = append(buf, m.Promotion.Letter()+('a'-'A'))
	}
	return string(buf)
}

// ParseMove parses the 4 or 5 character coordinate encoding.
func ParseMove(text string) (Move, error) {
	if len(text) < 4 || len(text) > 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	move := NewMove(from, to)
	if len(text) == 5 {
		kind := KindFromLetter(text[4])
		switch kind {
		case Queen, Rook, Bishop, Knight:
			move.Promotion = kind
		default:
			return Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrInvalidMove)
		}
	}
	if !move.IsValid() {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	return move, nil
}

// MustParseMove is like ParseMove but panics on a malformed encoding.
func MustParseMove(text string) Move {
	move, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return move
}

// MaxHistory is the number of half-moves retained for the repetition check.
const MaxHistory = 8

// MoveHistory is a bounded FIFO of the most recent half-moves, oldest first.
// It is a plain value so that copying a Position copies its history.
type MoveHistory struct {
	Moves [MaxHistory]Move
	Len   int
}

// Push appends a move, evicting the oldest entry once the buffer is full.
func (h *MoveHistory) Push(m Move) {
	if h.Len == MaxHistory {
		copy(h.Moves[:], h.Moves[1:])
		h.Len--
	}
	h.Moves[h.Len] = m
	h.Len++
}

// At returns the i-th retained move, oldest first.
func (h *MoveHistory) At(i int) Move {
	return h.Moves[i]
}

// Slice returns the retained moves, oldest first.
func (h *MoveHistory) Slice() []Move {
	out := make([]Move, h.Len)
	copy(out, h.Moves[:h.Len])
	return out
}
