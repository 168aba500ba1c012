package hashing

import (
	"testing"

	"github.com/lgbarn/minimax-chess/internal/engine"
)

func TestHashConsistency(t *testing.T) {
	a := engine.NewInitialPosition()
	b := engine.MustParseFEN(engine.InitialFEN)

	if Hash(a) != Hash(b) {
		t.Errorf("identical positions produced different hashes: %x != %x", Hash(a), Hash(b))
	}
}

func TestHashIgnoresClocks(t *testing.T) {
	a := engine.MustParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	b := engine.MustParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 12 40")

	if Hash(a) != Hash(b) {
		t.Error("clocks should not change the hash")
	}
}

func TestHashDifferentPositions(t *testing.T) {
	base := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	tests := []struct {
		name string
		fen  string
	}{
		{"piece moved", "4k3/8/8/8/8/8/8/4K1R1 w - - 0 1"},
		{"side to move", "4k3/8/8/8/8/8/8/4K2R b K - 0 1"},
		{"castling rights", "4k3/8/8/8/8/8/8/4K2R w - - 0 1"},
	}

	want := Hash(engine.MustParseFEN(base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Hash(engine.MustParseFEN(tt.fen)) == want {
				t.Errorf("%s produced the same hash as the base position", tt.fen)
			}
		})
	}
}

func TestHashEnPassant(t *testing.T) {
	with := engine.MustParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	without := engine.MustParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - - 0 2")

	if Hash(with) == Hash(without) {
		t.Error("en passant target should change the hash")
	}
}

func TestHashAfterMoves(t *testing.T) {
	// Knights out and back reach the initial placement with the same side
	// to move and rights.
	pos, err := engine.ApplyMoves(engine.NewInitialPosition(), []string{"g1f3", "g8f6", "f3g1", "f6g8"})
	if err != nil {
		t.Fatal(err)
	}
	if Hash(pos) != Hash(engine.NewInitialPosition()) {
		t.Error("transposed position should hash like the initial position")
	}
}

func TestDuplicateDetector(t *testing.T) {
	d := NewDuplicateDetector()

	fens := []string{
		engine.InitialFEN,
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 5 9",
		"4k3/8/8/8/8/8/8/4K2R b K - 0 1",
	}
	wantFirst := []int{0, 1, 0, 3}
	wantDup := []bool{false, false, true, false}

	for i, fen := range fens {
		first, dup := d.CheckAndAdd(engine.MustParseFEN(fen), i)
		if dup != wantDup[i] || first != wantFirst[i] {
			t.Errorf("CheckAndAdd(%d) = (%d, %v); want (%d, %v)", i, first, dup, wantFirst[i], wantDup[i])
		}
	}

	if got := d.DuplicateCount(); got != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", got)
	}
	if got := d.UniqueCount(); got != 3 {
		t.Errorf("UniqueCount() = %d; want 3", got)
	}
}
