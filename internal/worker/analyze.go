package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/search"
)

// Items builds one WorkItem per FEN, indexed by position in fens.
func Items(fens []string) []WorkItem {
	items := make([]WorkItem, len(fens))
	for i, fen := range fens {
		items[i] = WorkItem{Index: i, FEN: fen}
	}
	return items
}

// Analyzer returns a factory whose workers parse each item's FEN and search
// it with their own Searcher. A fixed seed is offset by the worker number so
// workers do not share a random sequence.
func Analyzer(ctx context.Context, cfg *config.Config) ProcessorFactory {
	return func(worker int) ProcessFunc {
		searchCfg := *cfg.Search
		if searchCfg.Seed != 0 {
			searchCfg.Seed += int64(worker)
		}
		workerCfg := *cfg
		workerCfg.Search = &searchCfg
		searcher := search.New(&workerCfg)

		return func(item WorkItem) ProcessResult {
			result := ProcessResult{Index: item.Index, FEN: item.FEN}
			pos, err := engine.ParseFEN(item.FEN)
			if err != nil {
				result.Err = err
				return result
			}
			result.Position = pos
			result.Result, result.Err = searcher.Search(ctx, pos)
			return result
		}
	}
}

// Analyze runs every item through a pool of cfg.Workers workers and returns
// the results sorted by Index. Cancelling ctx cuts each remaining search
// short after its first completed depth.
func Analyze(ctx context.Context, cfg *config.Config, items []WorkItem) []ProcessResult {
	pool := NewPool(cfg.Workers, cfg.Workers*2, Analyzer(ctx, cfg))
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
