package chess

import (
	"testing"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove != White {
			t.Errorf("ToMove = %v; want White", p.ToMove)
		}
		if p.FullmoveNumber != 1 {
			t.Errorf("FullmoveNumber = %d; want 1", p.FullmoveNumber)
		}
		if p.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", p.EnPassant)
		}
		if p.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", p.HalfmoveClock)
		}
		if p.Castling != NoCastling {
			t.Errorf("Castling = %v; want -", p.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if !p.IsEmpty(sq) {
				t.Errorf("IsEmpty(%v) = false; want true", sq)
			}
		}
	})
}

func TestNewInitialPosition(t *testing.T) {
	p := NewInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		{"empty e3", "e3", Empty},
		{"empty d4", "d4", Empty},
		{"empty c6", "c6", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.sq)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.sq, err)
			}
			if got := p.Get(sq); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("king squares", func(t *testing.T) {
		if got := p.KingSquare(White); got != E1 {
			t.Errorf("KingSquare(White) = %v; want e1", got)
		}
		if got := p.KingSquare(Black); got != E8 {
			t.Errorf("KingSquare(Black) = %v; want e8", got)
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		if got := p.Castling.String(); got != "KQkq" {
			t.Errorf("Castling = %q; want KQkq", got)
		}
	})
}

func TestPositionCopy(t *testing.T) {
	original := NewInitialPosition()
	original.ToMove = Black
	original.FullmoveNumber = 5
	original.EnPassant = NewSquare(4, 2)
	original.History.Push(NewMove(NewSquare(4, 1), NewSquare(4, 3)))

	copied := original.Copy()

	t.Run("copies all state", func(t *testing.T) {
		if *copied != *original {
			t.Errorf("Copy() differs from original")
		}
	})

	t.Run("modifications are independent", func(t *testing.T) {
		copied.Set(NewSquare(4, 3), W(Pawn))
		copied.ToMove = White
		copied.FullmoveNumber = 10
		copied.History.Push(NewMove(NewSquare(4, 6), NewSquare(4, 4)))

		if got := original.Get(NewSquare(4, 3)); got != Empty {
			t.Errorf("original Get(e4) = %v after copy modification; want Empty", got)
		}
		if original.ToMove != Black {
			t.Errorf("original ToMove = %v after copy modification; want Black", original.ToMove)
		}
		if original.FullmoveNumber != 5 {
			t.Errorf("original FullmoveNumber = %d after copy modification; want 5", original.FullmoveNumber)
		}
		if original.History.Len != 1 {
			t.Errorf("original History.Len = %d after copy modification; want 1", original.History.Len)
		}
	})
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{NoCastling, "-"},
		{AllCastling, "KQkq"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{BlackKingside, "k"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("CastlingRights(%d).String() = %q; want %q", tt.rights, got, tt.want)
		}
	}
}

func TestColouredPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for kind := Pawn; kind <= King; kind++ {
			p := MakeColouredPiece(colour, kind)
			if ExtractColour(p) != colour || ExtractPiece(p) != kind {
				t.Errorf("MakeColouredPiece(%v, %v) round trip = (%v, %v)",
					colour, kind, ExtractColour(p), ExtractPiece(p))
			}
			if !IsColoured(p) {
				t.Errorf("IsColoured(%v %v) = false; want true", colour, kind)
			}
		}
	}
	if IsColoured(Empty) || IsColoured(Off) {
		t.Error("IsColoured(Empty/Off) = true; want false")
	}
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		letter byte
		want   Piece
		ok     bool
	}{
		{'K', W(King), true},
		{'q', B(Queen), true},
		{'n', B(Knight), true},
		{'P', W(Pawn), true},
		{'x', Empty, false},
		{'1', Empty, false},
	}
	for _, tt := range tests {
		got, ok := PieceFromLetter(tt.letter)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PieceFromLetter(%c) = (%v, %v); want (%v, %v)", tt.letter, got, ok, tt.want, tt.ok)
		}
		if ok && ColouredLetter(got) != tt.letter {
			t.Errorf("ColouredLetter(%v) = %c; want %c", got, ColouredLetter(got), tt.letter)
		}
	}
}
