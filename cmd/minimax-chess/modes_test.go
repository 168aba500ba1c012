package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
	"github.com/lgbarn/minimax-chess/internal/output"
)

func testConfig(buf *bytes.Buffer) *config.Config {
	cfg := config.NewConfigBuilder().
		WithSeed(1).
		WithVerbosity(0).
		WithWorkers(2).
		WithOutput(buf).
		Build()
	return cfg
}

func TestStartPosition(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   string
		wantFEN string
		wantErr error
	}{
		{
			name:    "initial",
			wantFEN: engine.InitialFEN,
		},
		{
			name:    "moves from initial",
			moves:   "e2e4 e7e5",
			wantFEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		},
		{
			name:    "bad fen",
			fen:     "8/8 w",
			wantErr: errors.ErrInvalidFEN,
		},
		{
			name:    "illegal move",
			moves:   "e2e5",
			wantErr: errors.ErrIllegalMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := startPosition(tt.fen, tt.moves)
			if tt.wantErr != nil {
				if !stderrors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := engine.FEN(pos); got != tt.wantFEN {
				t.Errorf("FEN = %q; want %q", got, tt.wantFEN)
			}
		})
	}
}

func TestRunBestMove(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)

	pos := engine.MustParseFEN("6k1/5ppp/8/8/8/8/7K/q2R4 w - - 0 1")
	if err := runBestMove(context.Background(), cfg, pos); err != nil {
		t.Fatalf("runBestMove: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "1: d1d8 (score white mates") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRunBestMove_GameOver(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "draw"},
		{"checkmate", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1", "white wins"},
		{"bare kings", "8/8/8/8/8/8/8/K6k w - - 0 1", "draw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := testConfig(&buf)

			err := runBestMove(context.Background(), cfg, engine.MustParseFEN(tt.fen))
			if !stderrors.Is(err, errors.ErrGameOver) {
				t.Fatalf("err = %v; want ErrGameOver", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v; want it to mention %q", err, tt.want)
			}
			if !strings.Contains(buf.String(), "error:") {
				t.Errorf("output = %q; want an error line", buf.String())
			}
		})
	}
}

func TestRunPlay(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Game.MaxTurns = 10

	pos := engine.MustParseFEN("6k1/5ppp/8/8/8/8/7K/q2R4 w - - 0 1")
	if err := runPlay(context.Background(), cfg, pos); err != nil {
		t.Fatalf("runPlay: %v", err)
	}
	want := "1. d1d8 1-0\n{white wins by checkmate}\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestRunPlay_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Output.JSONFormat = true

	pos := engine.MustParseFEN("N2r2k1/8/8/8/8/8/5PPP/6K1 b - - 0 1")
	if err := runPlay(context.Background(), cfg, pos); err != nil {
		t.Fatalf("runPlay: %v", err)
	}

	var jg output.JSONGame
	if err := json.Unmarshal(buf.Bytes(), &jg); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if jg.Result != "0-1" {
		t.Errorf("Result = %q; want 0-1", jg.Result)
	}
	if len(jg.Moves) != 1 || jg.Moves[0].UCI != "d8d1" {
		t.Errorf("Moves = %+v; want [d8d1]", jg.Moves)
	}
}

func TestRunPerft(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := testConfig(&buf)
		if err := runPerft(context.Background(), cfg, engine.NewInitialPosition(), 2, false); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != "perft(2) = 400\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("divide", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := testConfig(&buf)
		if err := runPerft(context.Background(), cfg, engine.NewInitialPosition(), 2, true); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "e2e4: 20\n") {
			t.Errorf("missing e2e4 line in %q", out)
		}
		if !strings.HasSuffix(out, "\ntotal: 400\n") {
			t.Errorf("missing total in %q", out)
		}
		if strings.Count(out, ": 20\n") != 20 {
			t.Errorf("want 20 root moves with 20 replies each, got %q", out)
		}
	})
}

func TestRunBatch(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)

	input := strings.Join([]string{
		"# mates in one",
		"6k1/5ppp/8/8/8/8/7K/q2R4 w - - 0 1",
		"",
		"N2r2k1/8/8/8/8/8/5PPP/6K1 b - - 0 1",
		"garbage",
	}, "\n")

	if err := runBatch(context.Background(), cfg, strings.NewReader(input)); err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "1: d1d8") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2: d8d1") {
		t.Errorf("line 2 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "3: error:") {
		t.Errorf("line 3 = %q", lines[2])
	}
}

func TestLoadFENs(t *testing.T) {
	fens, err := loadFENs(strings.NewReader("# header\n\n  8/8/8/8/8/8/8/K6k w - - 0 1  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(fens) != 1 || fens[0] != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("loadFENs = %q", fens)
	}
}

func TestRunBatch_SuppressDuplicates(t *testing.T) {
	var buf, log bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Batch.SuppressDuplicates = true
	cfg.Verbosity = 1
	cfg.LogFile = &log

	input := strings.Join([]string{
		"6k1/5ppp/8/8/8/8/7K/q2R4 w - - 0 1",
		"6k1/5ppp/8/8/8/8/7K/q2R4 w - - 3 30",
		"garbage",
		"garbage",
	}, "\n")

	if err := runBatch(context.Background(), cfg, strings.NewReader(input)); err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines; want 4:\n%s", len(lines), buf.String())
	}
	for i, prefix := range []string{"1: d1d8", "2: d1d8", "3: error:", "4: error:"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q; want prefix %q", i+1, lines[i], prefix)
		}
	}
	if want := "1 position(s) analysed, 1 duplicate(s) out of 4."; !strings.Contains(log.String(), want) {
		t.Errorf("log = %q; want %q", log.String(), want)
	}
}
