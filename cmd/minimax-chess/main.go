// minimax-chess plays and analyses chess positions with a fixed-depth
// minimax search.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/minimax-chess/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("minimax-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches to the mode selected on the command line.
func run(ctx context.Context, cfg *config.Config) error {
	if *batchFile != "" {
		return runBatchFile(ctx, cfg, *batchFile)
	}

	pos, err := startPosition(*fenString, *moveList)
	if err != nil {
		return err
	}

	switch {
	case *perftDepth > 0:
		return runPerft(ctx, cfg, pos, *perftDepth, *divide)
	case *playGame:
		return runPlay(ctx, cfg, pos)
	default:
		return runBestMove(ctx, cfg, pos)
	}
}

// runBatchFile opens the batch input, "-" meaning stdin.
func runBatchFile(ctx context.Context, cfg *config.Config, name string) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return fmt.Errorf("opening batch file %s: %w", name, err)
		}
		defer file.Close()
		r = file
	}
	return runBatch(ctx, cfg, r)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: minimax-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Chooses moves with a minimax search, plays games against itself\n")
	fmt.Fprintf(os.Stderr, "and counts positions for move generator testing.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)   Print the best move for -fen\n")
	fmt.Fprintf(os.Stderr, "  -play       Play the game out\n")
	fmt.Fprintf(os.Stderr, "  -perft N    Count positions N plies deep\n")
	fmt.Fprintf(os.Stderr, "  -batch FILE Analyse one FEN per line\n")
}
