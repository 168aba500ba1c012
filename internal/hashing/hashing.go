// Package hashing provides Zobrist position hashes and duplicate detection
// for batches of positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/minimax-chess/internal/chess"
)

var (
	zobristPiece     [64][chess.NumSquares]uint64 // indexed by coloured piece value
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64 // by file
	zobristSide      uint64                  // Black to move
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist hash of the placement, side to move, castling
// rights and en passant file of pos. Clocks and history are not hashed.
func Hash(pos *chess.Position) uint64 {
	var key uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p := pos.Get(sq); chess.IsColoured(p) {
			key ^= zobristPiece[p][sq]
		}
	}
	if pos.ToMove == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[pos.Castling&chess.AllCastling]
	if pos.EnPassant != chess.NoSquare {
		key ^= zobristEnPassant[pos.EnPassant.File()]
	}
	return key
}

// Signature identifies a position already seen by a DuplicateDetector.
type Signature struct {
	Hash  uint64
	Index int // input index of the first occurrence
	Board [chess.NumSquares]chess.Piece
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use.
type DuplicateDetector struct {
	hashTable      map[uint64][]Signature
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{hashTable: make(map[uint64][]Signature)}
}

// CheckAndAdd reports whether pos was seen before and, if so, the index it
// was first added under. Otherwise pos is recorded under index.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position, index int) (first int, duplicate bool) {
	sig := Signature{Hash: Hash(pos), Index: index, Board: pos.Board}

	for _, existing := range d.hashTable[sig.Hash] {
		// Compare boards too, hash collisions are possible.
		if existing.Board == sig.Board {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return index, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
