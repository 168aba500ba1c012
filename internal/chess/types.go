// Package chess provides core chess types: pieces, squares, moves and positions.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the one-character side-to-move token ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece represents a piece kind, or a coloured piece when built with
// MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Not a piece (used as "no promotion")
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the promotion choices in generation order.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColoured reports whether p holds a real coloured piece rather than
// Empty or Off.
func IsColoured(p Piece) bool {
	return ExtractPiece(p) >= Pawn && ExtractPiece(p) <= King
}

// PieceFromLetter converts a notation letter to a coloured piece.
// Uppercase letters are white, lowercase black. ok is false for any other byte.
func PieceFromLetter(c byte) (piece Piece, ok bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	kind := KindFromLetter(c)
	if kind == Off {
		return Empty, false
	}
	return MakeColouredPiece(colour, kind), true
}

// KindFromLetter converts an uppercase or lowercase letter to a piece kind,
// returning Off when the letter names no piece.
func KindFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Off
	}
}

// ColouredLetter returns the notation letter of a coloured piece:
// uppercase for white, lowercase for black, '.' for an empty square.
func ColouredLetter(p Piece) byte {
	if !IsColoured(p) {
		return '.'
	}
	letter := ExtractPiece(p).Letter()
	if ExtractColour(p) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
