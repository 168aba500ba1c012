package chess

import (
	"fmt"

	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Square is a flat board index in [0,64): rank*8 + file, with a1 = 0 and h8 = 63.
type Square int

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Named squares used by the castling rules.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank (0 = first rank).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// IsLight reports whether s is a light square (a1 is dark).
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns the two-character file+rank form, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts two-character file+rank notation to a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	col, rank := text[0], text[1]
	if col < 'a' || col > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return NewSquare(int(col-ColBase), int(rank-RankBase)), nil
}
