package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/search"
)

// Analysis is the search result for one input position.
type Analysis struct {
	Index    int
	FEN      string
	Position *chess.Position // nil when FEN did not parse
	Result   search.Result
	Err      error
}

// AnalysisWriter is the interface for writing analyses to output.
// Different implementations handle different output formats (text, JSON).
type AnalysisWriter interface {
	// WriteAnalysis writes a single analysis to the output.
	WriteAnalysis(a *Analysis) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewAnalysisWriter returns a JSON writer when jsonFormat is set and a text
// writer otherwise.
func NewAnalysisWriter(w io.Writer, jsonFormat bool) AnalysisWriter {
	if jsonFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes one line per analysis.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteAnalysis writes "index: move (score, depth, nodes)" or the error.
func (tw *TextWriter) WriteAnalysis(a *Analysis) error {
	if a.Err != nil {
		_, err := fmt.Fprintf(tw.w, "%d: error: %v\n", a.Index, a.Err)
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%d: %v (score %s, depth %d, %d nodes)\n",
		a.Index, a.Result.Move, FormatScore(a.Result.Score), a.Result.Depth, a.Result.Nodes)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes analyses in JSON format.
// It buffers analyses and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w        io.Writer
	analyses []*JSONAnalysis
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:        w,
		analyses: make([]*JSONAnalysis, 0),
	}
}

// WriteAnalysis buffers an analysis for JSON output.
func (jw *JSONWriter) WriteAnalysis(a *Analysis) error {
	jw.analyses = append(jw.analyses, AnalysisToJSON(a))
	return nil
}

// Flush writes all buffered analyses as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.analyses) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Analyses: jw.analyses})

	// Clear buffer after writing
	jw.analyses = jw.analyses[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// AnalysisToJSON converts an analysis to JSON format.
func AnalysisToJSON(a *Analysis) *JSONAnalysis {
	ja := &JSONAnalysis{
		Index: a.Index,
		FEN:   a.FEN,
	}
	if a.Position != nil {
		ja.Status = engine.Status(a.Position).String()
	}
	if a.Err != nil {
		ja.Error = a.Err.Error()
		return ja
	}
	ja.BestMove = a.Result.Move.String()
	ja.Score = a.Result.Score
	ja.Depth = a.Result.Depth
	ja.Nodes = a.Result.Nodes
	ja.Stopped = a.Result.Stopped
	return ja
}

// WriteGameJSON writes a played game as indented JSON.
func WriteGameJSON(w io.Writer, jg *JSONGame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// FormatScore renders a score, naming the mate bounds.
func FormatScore(score int) string {
	switch score {
	case search.MaxScore:
		return "white mates"
	case search.MinScore:
		return "black mates"
	default:
		return fmt.Sprintf("%+d", score)
	}
}
