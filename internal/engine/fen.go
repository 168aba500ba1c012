// Package engine provides chess move generation, legality checking,
// move application and game-end detection.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a position from a FEN string. The halfmove clock and
// fullmove number fields are optional and default to 0 and 1.
func ParseFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    len(parts) + 1,
			Expected: "at least 4 fields",
		}
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, fen, parts[4:]); err != nil {
		return nil, err
	}

	return pos, nil
}

// MustParseFEN is like ParseFEN but panics if the string cannot be parsed.
func MustParseFEN(fen string) *chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
			Expected: "8 ranks", Got: placement}
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
						Expected: "piece letter", Got: string(c)}
				}
				if file >= chess.BoardSize {
					return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
						Expected: "8 squares per rank", Got: row}
				}
				pos.Set(chess.NewSquare(file, rank), piece)
				file++
			}
		}
		if file != chess.BoardSize {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
				Expected: "8 squares per rank", Got: row}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 2,
			Expected: "w or b", Got: field}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		right, ok := chess.CastlingRightFromLetter(field[i])
		if !ok {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 3,
				Expected: "KQkq or -", Got: field}
		}
		pos.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 4,
			Expected: "square or -", Got: field}
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen string, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 5,
				Expected: "halfmove clock", Got: fields[0]}
		}
		pos.HalfmoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 6,
				Expected: "fullmove number", Got: fields[1]}
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// FEN converts a position to a FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			if pos.IsEmpty(sq) {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.ColouredLetter(pos.Get(sq)))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	return MustParseFEN(InitialFEN)
}
