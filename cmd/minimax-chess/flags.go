// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/minimax-chess/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	moveList  = flag.String("moves", "", "Space-separated UCI moves to play from the start position")

	// Search options
	maxDepth  = flag.Int("depth", config.DefaultMaxDepth, "Deepest iterative deepening iteration")
	moveTime  = flag.Duration("movetime", 0, "Time limit per search, e.g. 500ms (0 = no limit)")
	nodeLimit = flag.Uint64("nodes", 0, "Node limit per search (0 = no limit)")
	seed      = flag.Int64("seed", 0, "Tie-breaking seed (0 = seed from the clock)")

	// Modes
	playGame   = flag.Bool("play", false, "Play the position out against itself")
	maxTurns   = flag.Int("maxturns", config.DefaultMaxTurns, "Ply limit for -play (0 = no limit)")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divide     = flag.Bool("divide", false, "With -perft, break the count down per root move")
	batchFile  = flag.String("batch", "", "Analyse every FEN in this file (one per line, - for stdin)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Analyse repeated -batch positions only once")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	showBoard  = flag.Bool("board", false, "Print the board before and after -play")
	showFEN    = flag.Bool("showfen", false, "Print the final FEN after -play")

	// Logging
	logFile   = flag.String("l", "", "Write search log to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=moves, 2=search commentary")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Game.MaxTurns = *maxTurns
	cfg.Batch.SuppressDuplicates = *suppressDuplicates
	cfg.Verbosity = *verbosity
	cfg.Workers = resolveWorkers(*workers)
}

// applySearchFlags configures the searcher.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.MaxDepth = *maxDepth
	cfg.Search.MoveTime = *moveTime
	cfg.Search.NodeLimit = *nodeLimit
	cfg.Search.Seed = *seed
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = *showFEN
	cfg.OutputFilename = *outputFile
}

// resolveWorkers maps a non-positive worker count to the number of CPUs.
func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
