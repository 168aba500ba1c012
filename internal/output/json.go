package output

import (
	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/game"
)

// JSONGame represents a played game in JSON format.
type JSONGame struct {
	InitialFEN  string     `json:"initialFEN"`
	Moves       []JSONMove `json:"moves"`
	Result      string     `json:"result"`
	Termination string     `json:"termination,omitempty"`
	PlyCount    int        `json:"plyCount"`
	FinalFEN    string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Score      *int   `json:"score,omitempty"`
	Depth      int    `json:"depth"`
	Nodes      uint64 `json:"nodes"`
	FEN        string `json:"fen,omitempty"`
}

// JSONAnalysis represents the search result for one position.
type JSONAnalysis struct {
	Index    int    `json:"index"`
	FEN      string `json:"fen"`
	BestMove string `json:"bestMove,omitempty"`
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    uint64 `json:"nodes"`
	Stopped  bool   `json:"stopped,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// JSONOutput holds multiple analyses for array output.
type JSONOutput struct {
	Analyses []*JSONAnalysis `json:"analyses"`
}

// GameToJSON converts a played game to JSON format. With includeFEN set
// each move carries the position it produced.
func GameToJSON(record *game.Record, includeFEN bool) *JSONGame {
	jg := &JSONGame{
		InitialFEN:  engine.FEN(record.Start),
		Moves:       make([]JSONMove, 0, len(record.Plies)),
		Result:      record.Status.Result(),
		Termination: terminationText(record),
		PlyCount:    len(record.Plies),
		FinalFEN:    engine.FEN(record.Final),
	}

	pos := record.Start
	moveNum := pos.FullmoveNumber
	for _, ply := range record.Plies {
		isWhite := pos.ToMove == chess.White
		jm := convertMove(ply, pos, moveNum, isWhite)
		if includeFEN {
			jm.FEN = engine.FEN(ply.After)
		}
		jg.Moves = append(jg.Moves, jm)

		if !isWhite {
			moveNum++
		}
		pos = ply.After
	}
	return jg
}

// convertMove converts a single ply, played from before, to JSON format.
func convertMove(ply game.Ply, before *chess.Position, moveNum int, isWhite bool) JSONMove {
	m := ply.Move
	jm := JSONMove{
		Color: colorName(isWhite),
		UCI:   m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(chess.ExtractPiece(before.Get(m.From))),
		Depth: ply.Result.Depth,
		Nodes: ply.Result.Nodes,
	}
	if isWhite {
		jm.MoveNumber = moveNum
	}
	jm.Captured = capturedPiece(m, before)
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	if ply.Result.Nodes > 0 {
		score := ply.Result.Score
		jm.Score = &score
	}
	return jm
}

// colorName returns "white" or "black" based on the boolean.
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}

// capturedPiece returns the name of the piece m captures from before, if any.
func capturedPiece(m chess.Move, before *chess.Position) string {
	if !before.IsEmpty(m.To) {
		return pieceTypeName(chess.ExtractPiece(before.Get(m.To)))
	}
	mover := before.Get(m.From)
	if chess.ExtractPiece(mover) == chess.Pawn && m.To == before.EnPassant && m.From.File() != m.To.File() {
		return "pawn"
	}
	return ""
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
