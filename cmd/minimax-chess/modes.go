// modes.go - One function per command-line mode
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
	"github.com/lgbarn/minimax-chess/internal/game"
	"github.com/lgbarn/minimax-chess/internal/hashing"
	"github.com/lgbarn/minimax-chess/internal/output"
	"github.com/lgbarn/minimax-chess/internal/search"
	"github.com/lgbarn/minimax-chess/internal/worker"
)

// startPosition builds the position named by fen (or the initial position
// when fen is empty) and plays moves from it.
func startPosition(fen, moves string) (*chess.Position, error) {
	pos := engine.NewInitialPosition()
	if fen != "" {
		var err error
		if pos, err = engine.ParseFEN(fen); err != nil {
			return nil, err
		}
	}
	if moves == "" {
		return pos, nil
	}
	return engine.ApplyMoves(pos, strings.Fields(moves))
}

// runBestMove searches pos once and reports the chosen move.
func runBestMove(ctx context.Context, cfg *config.Config, pos *chess.Position) error {
	var result search.Result
	var err error
	if status := engine.Status(pos); status != engine.Ongoing {
		err = errors.Wrapf(&errors.PositionError{Err: errors.ErrGameOver, FEN: engine.FEN(pos)}, "%v", status)
	} else {
		result, err = search.New(cfg).Search(ctx, pos)
	}
	a := &output.Analysis{Index: 1, FEN: engine.FEN(pos), Position: pos, Result: result, Err: err}

	w := output.NewAnalysisWriter(cfg.OutputFile, cfg.Output.JSONFormat)
	if werr := w.WriteAnalysis(a); werr != nil {
		return werr
	}
	if werr := w.Close(); werr != nil {
		return werr
	}
	return err
}

// runPlay plays pos out with one searcher choosing for both sides.
func runPlay(ctx context.Context, cfg *config.Config, pos *chess.Position) error {
	if cfg.Output.ShowBoard && !cfg.Output.JSONFormat {
		output.RenderBoard(cfg.OutputFile, pos)
	}

	record, err := game.Play(ctx, pos, search.New(cfg), cfg.Game.MaxTurns, nil)
	if err != nil {
		return err
	}

	if cfg.Output.JSONFormat {
		return output.WriteGameJSON(cfg.OutputFile, output.GameToJSON(record, cfg.Output.ShowFEN))
	}
	output.OutputGame(record, cfg)
	if cfg.Output.ShowBoard {
		output.RenderBoard(cfg.OutputFile, record.Final)
	}
	return nil
}

// runPerft prints the leaf count, or the per-move breakdown with divide.
func runPerft(ctx context.Context, cfg *config.Config, pos *chess.Position, depth int, divide bool) error {
	w := cfg.OutputFile
	if !divide {
		fmt.Fprintf(w, "perft(%d) = %d\n", depth, engine.Perft(pos, depth))
		return nil
	}

	counts, err := engine.Divide(ctx, pos, depth, cfg.Workers)
	if err != nil {
		return err
	}
	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, counts[m])
		total += counts[m]
	}
	fmt.Fprintf(w, "\ntotal: %d\n", total)
	return nil
}

// runBatch analyses every FEN read from r across cfg.Workers searchers.
func runBatch(ctx context.Context, cfg *config.Config, r io.Reader) error {
	fens, err := loadFENs(r)
	if err != nil {
		return err
	}

	items := worker.Items(fens)
	var detector *hashing.DuplicateDetector
	duplicateOf := map[int]int{}
	if cfg.Batch.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector()
		items = dropDuplicates(detector, items, duplicateOf)
	}

	results := worker.Analyze(ctx, cfg, items)
	byIndex := make(map[int]*worker.ProcessResult, len(results))
	for i := range results {
		byIndex[results[i].Index] = &results[i]
	}

	w := output.NewAnalysisWriter(cfg.OutputFile, cfg.Output.JSONFormat)
	for i, fen := range fens {
		res, ok := byIndex[i]
		if !ok {
			res = byIndex[duplicateOf[i]]
		}
		a := output.Analysis{
			Index:    i + 1,
			FEN:      fen,
			Position: res.Position,
			Result:   res.Result,
			Err:      res.Err,
		}
		if err := w.WriteAnalysis(&a); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	if detector != nil && cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d position(s) analysed, %d duplicate(s) out of %d.\n",
			detector.UniqueCount(), detector.DuplicateCount(), len(fens))
	}
	return nil
}

// dropDuplicates removes items whose position was seen earlier, recording
// the index of the first occurrence in duplicateOf. Unparseable FENs are
// kept so their error is reported.
func dropDuplicates(detector *hashing.DuplicateDetector, items []worker.WorkItem, duplicateOf map[int]int) []worker.WorkItem {
	kept := items[:0]
	for _, item := range items {
		pos, err := engine.ParseFEN(item.FEN)
		if err == nil {
			if first, dup := detector.CheckAndAdd(pos, item.Index); dup {
				duplicateOf[item.Index] = first
				continue
			}
		}
		kept = append(kept, item)
	}
	return kept
}

// loadFENs reads one FEN per line, skipping blank lines and # comments.
func loadFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}
