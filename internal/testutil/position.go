package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/minimax-chess/internal/chess"
)

// PerftCase is a reference position with known leaf counts; Nodes[i] is the
// count at depth i+1.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// PerftSuite lists well-known perft positions covering castling, en passant,
// promotion and discovered checks.
var PerftSuite = []PerftCase{
	{
		Name:  "initial",
		FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Nodes: []uint64{20, 400, 8902},
	},
	{
		Name:  "kiwipete",
		FEN:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Nodes: []uint64{48, 2039},
	},
	{
		Name:  "rook endgame",
		FEN:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		Nodes: []uint64{14, 191, 2812},
	},
	{
		Name:  "promotions",
		FEN:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		Nodes: []uint64{6, 264, 9467},
	},
	{
		Name:  "discovered check",
		FEN:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		Nodes: []uint64{44, 1486, 62379},
	},
}

// PlacePieces builds a position with toMove to move, no castling rights and
// the given pieces. Each placement is a piece letter followed by a square,
// uppercase for White: "Ke1", "qd8", "Pe2".
func PlacePieces(t testing.TB, toMove chess.Colour, placements ...string) *chess.Position {
	t.Helper()
	pos := chess.NewPosition()
	pos.ToMove = toMove
	for _, p := range placements {
		if len(p) != 3 {
			t.Fatalf("bad placement %q", p)
		}
		piece, ok := chess.PieceFromLetter(p[0])
		if !ok {
			t.Fatalf("bad piece letter in %q", p)
		}
		sq, err := chess.ParseSquare(p[1:])
		if err != nil {
			t.Fatalf("bad square in %q: %v", p, err)
		}
		pos.Set(sq, piece)
	}
	return pos
}

// MoveStrings returns the encodings of moves, sorted, for order-insensitive
// comparison with AssertEqual.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
