package chess

// CastlingRights is a set of up to four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingOrder is the notation order of the rights.
var castlingOrder = [4]struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r && r != 0
}

// String returns the notation form ("KQkq", "Kq", or "-" when empty).
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	buf := make([]byte, 0, 4)
	for _, o := range castlingOrder {
		if c&o.right != 0 {
			buf = append(buf, o.letter)
		}
	}
	return string(buf)
}

// CastlingRightFromLetter maps 'K', 'Q', 'k', 'q' to a right.
func CastlingRightFromLetter(c byte) (CastlingRights, bool) {
	for _, o := range castlingOrder {
		if o.letter == c {
			return o.right, true
		}
	}
	return NoCastling, false
}

// Position holds the 64-square board and all state needed to continue the
// game. Positions are treated as values: the transition function always
// produces a new Position and never mutates its input.
type Position struct {
	// Board is indexed by Square; each cell holds Empty or a coloured piece.
	Board [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Castling rights still available.
	Castling CastlingRights

	// Square passed over by a pawn that just advanced two squares, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number; incremented after Black moves.
	FullmoveNumber int

	// The most recent half-moves, used by the repetition heuristic.
	History MoveHistory
}

// NewPosition creates a position with an empty board and White to move.
func NewPosition() *Position {
	p := &Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
	for sq := range p.Board {
		p.Board[sq] = Empty
	}
	return p
}

// NewInitialPosition returns the standard chess starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Board[NewSquare(file, 0)] = W(backRank[file])
		p.Board[NewSquare(file, 1)] = W(Pawn)
		p.Board[NewSquare(file, 6)] = B(Pawn)
		p.Board[NewSquare(file, 7)] = B(backRank[file])
	}
	p.Castling = AllCastling
	return p
}

// Get returns the piece on sq.
func (p *Position) Get(sq Square) Piece {
	return p.Board[sq]
}

// Set places a piece (or Empty) on sq.
func (p *Position) Set(sq Square, piece Piece) {
	p.Board[sq] = piece
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return !IsColoured(p.Board[sq])
}

// IsColour reports whether sq holds a piece of the given colour.
func (p *Position) IsColour(sq Square, colour Colour) bool {
	piece := p.Board[sq]
	return IsColoured(piece) && ExtractColour(piece) == colour
}

// KingSquare returns the square of the given colour's king, or NoSquare.
func (p *Position) KingSquare(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPosition := &Position{}
	*newPosition = *p
	return newPosition
}
