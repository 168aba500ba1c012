package search

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Result is the outcome of a search.
type Result struct {
	Move  chess.Move
	Score int
	// Depth is the last depth limit whose iteration completed.
	Depth int
	// Nodes counts the positions visited across all iterations.
	Nodes uint64
	// Stopped is set when a deadline or node budget ended the search early.
	Stopped bool
}

// Searcher runs minimax searches. A Searcher is not safe for concurrent use;
// give each goroutine its own.
type Searcher struct {
	maxDepth  int
	moveTime  time.Duration
	nodeLimit uint64
	rng       *rand.Rand
	logger    *log.Logger
	verbosity int

	nodes uint64
}

// New creates a Searcher from the search settings, verbosity and log file
// of cfg.
func New(cfg *config.Config) *Searcher {
	return &Searcher{
		maxDepth:  cfg.Search.MaxDepth,
		moveTime:  cfg.Search.MoveTime,
		nodeLimit: cfg.Search.NodeLimit,
		rng:       rand.New(rand.NewSource(cfg.Search.ResolvedSeed())),
		logger:    cfg.Logger(),
		verbosity: cfg.Verbosity,
	}
}

// MaxValue returns the minimax value of pos with White to choose: the
// utility of a terminal position, the material balance once depth reaches
// zero, and otherwise the highest MinValue over White's moves.
func (s *Searcher) MaxValue(pos *chess.Position, depth int) int {
	s.nodes++
	if score, ok := Utility(pos); ok {
		return score
	}
	if depth == 0 {
		return Material(pos)
	}

	best := MinScore
	for _, m := range engine.GenerateLegalMoves(pos, chess.White) {
		if score := s.MinValue(engine.Apply(pos, m), depth-1); score > best {
			best = score
		}
	}
	return best
}

// MinValue is MaxValue with Black choosing the lowest score.
func (s *Searcher) MinValue(pos *chess.Position, depth int) int {
	s.nodes++
	if score, ok := Utility(pos); ok {
		return score
	}
	if depth == 0 {
		return Material(pos)
	}

	best := MaxScore
	for _, m := range engine.GenerateLegalMoves(pos, chess.Black) {
		if score := s.MaxValue(engine.Apply(pos, m), depth-1); score < best {
			best = score
		}
	}
	return best
}

// ChooseMove picks the best move for the side to move at one depth limit.
// Each successor is scored by the opponent's value function at depthLimit.
// A move that checkmates the opponent is taken whatever its score. When no
// move improves on the worst possible score the first legal move is played,
// and equal best moves are chosen between at random.
//
// Between moves ctx and the node budget are checked; complete is false when
// either ran out before every move was scored.
func (s *Searcher) ChooseMove(ctx context.Context, pos *chess.Position, depthLimit int) (best chess.Move, bestScore int, complete bool) {
	return s.chooseMove(ctx, pos, depthLimit, true)
}

func (s *Searcher) chooseMove(ctx context.Context, pos *chess.Position, depthLimit int, interruptible bool) (best chess.Move, bestScore int, complete bool) {
	mover := pos.ToMove
	moves := engine.GenerateLegalMoves(pos, mover)
	if len(moves) == 0 {
		return chess.Move{}, 0, true
	}

	white := mover == chess.White
	bestScore = MaxScore
	if white {
		bestScore = MinScore
	}
	found := false
	var ties []chess.Move

	for i, m := range moves {
		if interruptible && i > 0 && s.exhausted(ctx) {
			return best, bestScore, false
		}

		next := engine.Apply(pos, m)
		var score int
		if white {
			score = s.MinValue(next, depthLimit)
		} else {
			score = s.MaxValue(next, depthLimit)
		}

		improves := score > bestScore
		if !white {
			improves = score < bestScore
		}
		if engine.IsCheckmated(next, mover.Opposite()) {
			// An immediate mate is never traded for an equal-scoring longer one.
			best, bestScore, found = m, score, true
			ties = append(ties[:0], m)
			break
		}
		switch {
		case improves:
			best, bestScore, found = m, score, true
			ties = append(ties[:0], m)
		case found && score == bestScore:
			ties = append(ties, m)
		}
	}

	switch {
	case !found:
		best = moves[0]
		s.debugf("\tmate forced, picked move %v", best)
	case len(ties) > 1:
		s.debugf("\tno best move out of ties: { %s }", joinMoves(ties))
		best = ties[s.rng.Intn(len(ties))]
	default:
		s.debugf("\tbest move for %v is %v", mover, best)
	}
	return best, bestScore, true
}

// Search runs iterative deepening from depth 0 to the configured maximum
// and returns the move chosen by the deepest completed iteration. Depth 0
// always runs to completion; later iterations stop early when ctx is done,
// the move time elapses or the node budget is spent.
func (s *Searcher) Search(ctx context.Context, pos *chess.Position) (Result, error) {
	if !engine.HasLegalMoves(pos, pos.ToMove) {
		return Result{}, &errors.PositionError{Err: errors.ErrNoLegalMoves, FEN: engine.FEN(pos)}
	}
	if s.moveTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.moveTime)
		defer cancel()
	}

	s.nodes = 0
	var result Result
	for depth := 0; depth <= s.maxDepth; depth++ {
		s.debugf("depth: %d", depth)
		move, score, complete := s.chooseMove(ctx, pos, depth, depth > 0)
		if !complete {
			result.Stopped = true
			s.debugf("depth %d abandoned after %d nodes", depth, s.nodes)
			break
		}
		result.Move, result.Score, result.Depth = move, score, depth
	}
	result.Nodes = s.nodes

	if s.verbosity >= 1 {
		s.logger.Printf("%v plays %v (depth %d, %d nodes)", pos.ToMove, result.Move, result.Depth, result.Nodes)
	}
	return result, nil
}

// Nodes returns the nodes visited by the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// exhausted reports whether the search must stop.
func (s *Searcher) exhausted(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	return s.nodeLimit > 0 && s.nodes >= s.nodeLimit
}

func (s *Searcher) debugf(format string, args ...interface{}) {
	if s.verbosity >= 2 {
		s.logger.Printf(format, args...)
	}
}

func joinMoves(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}
