// Package game drives a self-play game: check for the end of the game, ask
// the searcher for a move, apply it, and repeat.
package game

import (
	"context"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
	"github.com/lgbarn/minimax-chess/internal/search"
)

// Chooser picks a move for the side to move.
type Chooser interface {
	Search(ctx context.Context, pos *chess.Position) (search.Result, error)
}

// Ply is one played half-move.
type Ply struct {
	Number int // 1-based
	Move   chess.Move
	Result search.Result
	After  *chess.Position
}

// Record is the outcome of a game.
type Record struct {
	Start   *chess.Position
	Plies   []Ply
	Final   *chess.Position
	Status  engine.GameStatus
	Draw    engine.DrawType
	Stopped bool // the ply limit or ctx ended the game before a result
}

// Moves returns the played moves in order.
func (r *Record) Moves() []chess.Move {
	moves := make([]chess.Move, len(r.Plies))
	for i, p := range r.Plies {
		moves[i] = p.Move
	}
	return moves
}

// PlyFunc is called after every ply; returning an error ends the game with
// that error.
type PlyFunc func(ply Ply) error

// Play plays from start until the game is over, maxTurns plies have been
// played (0 means no limit) or ctx is done. onPly may be nil.
func Play(ctx context.Context, start *chess.Position, chooser Chooser, maxTurns int, onPly PlyFunc) (*Record, error) {
	record := &Record{Start: start, Final: start}
	pos := start

	for ply := 1; ; ply++ {
		if status := engine.Status(pos); status != engine.Ongoing {
			record.Status = status
			record.Draw = engine.DrawReason(pos)
			return record, nil
		}
		if maxTurns > 0 && ply > maxTurns {
			record.Stopped = true
			return record, nil
		}
		if ctx.Err() != nil {
			record.Stopped = true
			return record, ctx.Err()
		}

		result, err := chooser.Search(ctx, pos)
		if err != nil {
			return record, errors.Wrapf(err, "ply %d", ply)
		}
		if !engine.IsLegal(pos, result.Move) {
			return record, &errors.PositionError{
				Err:      errors.ErrIllegalMove,
				FEN:      engine.FEN(pos),
				Ply:      ply,
				MoveText: result.Move.String(),
			}
		}

		pos = engine.Apply(pos, result.Move)
		p := Ply{Number: ply, Move: result.Move, Result: result, After: pos}
		record.Plies = append(record.Plies, p)
		record.Final = pos

		if onPly != nil {
			if err := onPly(p); err != nil {
				return record, err
			}
		}
	}
}
