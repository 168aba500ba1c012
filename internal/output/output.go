// Package output provides board diagrams, game move lists and analysis
// results in text and JSON form.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/game"
)

// DefaultLineLength is the wrap column for move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderBoard writes a diagram of pos, rank 8 at the top, followed by the
// side to move, castling rights, en passant target and clocks.
func RenderBoard(w io.Writer, pos *chess.Position) {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%c ", chess.RankBase+rank)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(chess.ColouredLetter(pos.Get(chess.NewSquare(file, rank))))
			if file < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%v to move, castling %v, en passant %v, halfmove %d, move %d\n",
		pos.ToMove, pos.Castling, pos.EnPassant, pos.HalfmoveClock, pos.FullmoveNumber)
	io.WriteString(w, sb.String()) //nolint:errcheck // display only
}

// OutputGame writes the moves of a played game with move numbers, wrapped
// at DefaultLineLength, followed by the result token.
func OutputGame(record *game.Record, cfg *config.Config) {
	w := cfg.OutputFile
	ow := NewOutputWriter(w, DefaultLineLength)

	moveNum := record.Start.FullmoveNumber
	isWhite := record.Start.ToMove == chess.White

	for i, ply := range record.Plies {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(ply.Move.String())

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.Write(record.Status.Result())
	ow.NewLine()

	if reason := terminationText(record); reason != "" {
		fmt.Fprintf(w, "{%s}\n", reason)
	}
	if cfg.Output.ShowFEN {
		fmt.Fprintln(w, engine.FEN(record.Final))
	}
}

// terminationText describes why a game ended.
func terminationText(record *game.Record) string {
	switch {
	case record.Status == engine.Drawn:
		return "draw by " + record.Draw.String()
	case record.Status != engine.Ongoing:
		return record.Status.String() + " by checkmate"
	case record.Stopped:
		return fmt.Sprintf("stopped after %d plies", len(record.Plies))
	default:
		return ""
	}
}
