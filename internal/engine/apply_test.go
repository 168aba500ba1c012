package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/minimax-chess/internal/chess"
	chesserrors "github.com/lgbarn/minimax-chess/internal/errors"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
	}{
		{
			name:    "double pawn push sets en passant",
			fen:     InitialFEN,
			move:    "e2e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "black move increments fullmove",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    "e7e5",
			wantFEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		},
		{
			name:    "quiet move increments halfmove clock",
			fen:     InitialFEN,
			move:    "g1f3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "kingside castle moves the rook",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1g1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:    "queenside castle lands on c1",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1c1",
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 9",
			move:    "e8c8",
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 4 10",
		},
		{
			name:    "rook move drops one right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "a1a2",
			wantFEN: "r3k2r/8/8/8/8/8/R7/4K2R b Kkq - 1 1",
		},
		{
			name:    "king move drops both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1e2",
			wantFEN: "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:    "capturing a rook removes its right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "h1h8",
			wantFEN: "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1",
		},
		{
			name:    "en passant removes the captured pawn",
			fen:     "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move:    "e5f6",
			wantFEN: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "promotion without a piece makes a queen",
			fen:     "4k3/P7/8/8/8/8/8/4K3 w - - 5 40",
			move:    "a7a8",
			wantFEN: "Q3k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
		{
			name:    "capture resets halfmove clock",
			fen:     "4k3/8/8/3p4/8/8/8/3QK3 w - - 7 30",
			move:    "d1d5",
			wantFEN: "4k3/8/8/3Q4/8/8/8/4K3 b - - 0 30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			next := Apply(pos, chess.MustParseMove(tt.move))
			if got := FEN(next); got != tt.wantFEN {
				t.Errorf("FEN after %s = %q, want %q", tt.move, got, tt.wantFEN)
			}
			if got := FEN(pos); got != tt.fen {
				t.Errorf("Apply modified its input: %q", got)
			}
		})
	}
}

func TestApply_Promotions(t *testing.T) {
	pos := MustParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	a8 := chess.NewSquare(0, 7)

	plain := Apply(pos, chess.NewMove(chess.NewSquare(0, 6), a8))
	seen := make(map[chess.Piece]bool)
	for _, piece := range chess.PromotionPieces {
		next := Apply(pos, chess.NewPromotion(chess.NewSquare(0, 6), a8, piece))
		if got := next.Get(a8); got != chess.W(piece) {
			t.Errorf("promotion to %v left %v on a8", piece, got)
		}
		seen[next.Get(a8)] = true

		// Only the promoted piece differs from the unspecified promotion.
		for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
			if sq != a8 && next.Get(sq) != plain.Get(sq) {
				t.Errorf("promotion to %v changed %v", piece, sq)
			}
		}
	}
	if len(seen) != 4 {
		t.Errorf("got %d distinct promoted pieces, want 4", len(seen))
	}
	if plain.Get(a8) != chess.W(chess.Queen) {
		t.Errorf("unspecified promotion = %v, want queen", plain.Get(a8))
	}
}

func TestApply_History(t *testing.T) {
	pos := NewInitialPosition()
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8", "e2e4"}
	for _, text := range moves {
		pos = Apply(pos, chess.MustParseMove(text))
	}
	if pos.History.Len != chess.MaxHistory {
		t.Fatalf("History.Len = %d, want %d", pos.History.Len, chess.MaxHistory)
	}
	if got := pos.History.At(0).String(); got != "g8f6" {
		t.Errorf("oldest entry = %s, want g8f6", got)
	}
	if got := pos.History.At(chess.MaxHistory - 1).String(); got != "e2e4" {
		t.Errorf("newest entry = %s, want e2e4", got)
	}
}

func TestApply_EnPassantClearedNextPly(t *testing.T) {
	pos := Apply(NewInitialPosition(), chess.MustParseMove("e2e4"))
	if pos.EnPassant.String() != "e3" {
		t.Fatalf("EnPassant = %v, want e3", pos.EnPassant)
	}
	pos = Apply(pos, chess.MustParseMove("g8f6"))
	if pos.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant = %v, want none after a knight move", pos.EnPassant)
	}
}

func TestApply_PanicsOnInvalidMove(t *testing.T) {
	tests := []struct {
		name string
		move chess.Move
	}{
		{"same square", chess.NewMove(chess.E1, chess.E1)},
		{"off board", chess.NewMove(chess.E1, chess.Square(64))},
		{"empty origin", chess.NewMove(chess.NewSquare(4, 3), chess.NewSquare(4, 4))},
		{"bad promotion", chess.NewPromotion(chess.NewSquare(0, 6), chess.A8, chess.King)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Apply did not panic")
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, chesserrors.ErrInvalidMove) {
					t.Errorf("panic value = %v, want ErrInvalidMove", r)
				}
			}()
			Apply(NewInitialPosition(), tt.move)
		})
	}
}

func TestApplyUCI(t *testing.T) {
	pos := NewInitialPosition()

	next, err := ApplyUCI(pos, "e2e4")
	if err != nil {
		t.Fatalf("ApplyUCI(e2e4) failed: %v", err)
	}
	if next.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", next.ToMove)
	}

	if _, err := ApplyUCI(pos, "e2e5"); !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("ApplyUCI(e2e5) error = %v, want ErrIllegalMove", err)
	}
	if _, err := ApplyUCI(pos, "e7e5"); !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("ApplyUCI(e7e5) with white to move error = %v, want ErrIllegalMove", err)
	}
	if _, err := ApplyUCI(pos, "e2"); !errors.Is(err, chesserrors.ErrInvalidMove) {
		t.Errorf("ApplyUCI(e2) error = %v, want ErrInvalidMove", err)
	}
}

func TestResolveMove_Promotion(t *testing.T) {
	pos := MustParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	tests := []struct {
		text string
		want chess.Piece
	}{
		{"a7a8", chess.Queen},
		{"a7a8q", chess.Queen},
		{"a7a8n", chess.Knight},
		{"a7a8r", chess.Rook},
	}
	for _, tt := range tests {
		m, err := ResolveMove(pos, tt.text)
		if err != nil {
			t.Fatalf("ResolveMove(%s) failed: %v", tt.text, err)
		}
		if m.Promotion != tt.want {
			t.Errorf("ResolveMove(%s).Promotion = %v, want %v", tt.text, m.Promotion, tt.want)
		}
	}
}

func TestApplyMoves(t *testing.T) {
	pos, err := ApplyMoves(NewInitialPosition(), []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	if err != nil {
		t.Fatalf("ApplyMoves failed: %v", err)
	}
	if !IsCheckmated(pos, chess.White) {
		t.Error("expected fool's mate")
	}

	_, err = ApplyMoves(NewInitialPosition(), []string{"e2e4", "e2e4"})
	var posErr *chesserrors.PositionError
	if !errors.As(err, &posErr) {
		t.Fatalf("ApplyMoves error = %v, want a PositionError", err)
	}
	if posErr.MoveText != "e2e4" {
		t.Errorf("MoveText = %q, want e2e4", posErr.MoveText)
	}
}
