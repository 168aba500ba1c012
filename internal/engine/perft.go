package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/minimax-chess/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(Apply(pos, m), depth-1)
	}
	return nodes
}

// Divide runs Perft below each legal root move and returns the counts keyed
// by move encoding. Root moves are searched concurrently by at most workers
// goroutines; workers <= 0 means no limit.
func Divide(ctx context.Context, pos *chess.Position, depth, workers int) (map[string]uint64, error) {
	moves := LegalMoves(pos)
	counts := make(map[string]uint64, len(moves))
	if depth <= 0 {
		return counts, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, m := range moves {
		m := m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n := Perft(Apply(pos, m), depth-1)
			mu.Lock()
			counts[m.String()] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
