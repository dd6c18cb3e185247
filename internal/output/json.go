package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
	"github.com/lgbarn/negamax-chess-go/internal/worker"
)

// JSONResult is one batch analysis result.
type JSONResult struct {
	Line   int       `json:"line"`
	FEN    string    `json:"fen"`
	Status string    `json:"status,omitempty"`
	Move   *JSONMove `json:"move,omitempty"`
	Score  int       `json:"score"`
	Nodes  int       `json:"nodes"`
	Error  string    `json:"error,omitempty"`
}

// JSONBatch holds the results of a batch run.
type JSONBatch struct {
	Results []JSONResult `json:"results"`
}

// JSONMove describes a move.
type JSONMove struct {
	Ply       int    `json:"ply,omitempty"`
	Colour    string `json:"colour"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
	FEN       string `json:"fen,omitempty"` // position after the move
}

// JSONGame is the record of a played game.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
	PlyCount   int        `json:"plyCount"`
	FinalFEN   string     `json:"finalFEN"`
	Status     string     `json:"status"`
}

// ResultToJSON converts a batch result.
func ResultToJSON(r worker.ProcessResult) JSONResult {
	jr := JSONResult{Line: r.Index + 1, FEN: r.FEN}
	if r.Error != nil {
		jr.Error = r.Error.Error()
		return jr
	}
	jr.Status = r.Status.String()
	if r.Found {
		m := MoveToJSON(r.Move)
		jr.Move = &m
		jr.Score = r.Score
		jr.Nodes = r.Nodes
	}
	return jr
}

// MoveToJSON converts a move without position context.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		Colour:    strings.ToLower(m.PieceMoved.Colour.String()),
		UCI:       m.Start.String() + m.End.String(),
		From:      m.Start.String(),
		To:        m.End.String(),
		Piece:     strings.ToLower(m.PieceMoved.Kind.String()),
		EnPassant: m.IsEnPassant,
		Castle:    m.IsCastle,
	}
	if m.IsPromotion {
		jm.UCI += "q"
		jm.Promotion = "queen"
	}
	if victim, ok := m.PieceCaptured.Piece(); ok {
		jm.Captured = strings.ToLower(victim.Kind.String())
	} else if m.IsEnPassant {
		jm.Captured = "pawn"
	}
	return jm
}

// GameToJSON replays the history of gs from its start to record each
// move with the position it leads to. gs is left unchanged.
func GameToJSON(gs *engine.GameState) *JSONGame {
	history := gs.History()
	for range history {
		_ = gs.UndoMove()
	}

	jg := &JSONGame{
		InitialFEN: gs.FEN(),
		Moves:      make([]JSONMove, 0, len(history)),
		PlyCount:   len(history),
	}
	for _, m := range history {
		gs.MakeMove(m)
		jm := MoveToJSON(m)
		jm.Ply = gs.Ply()
		jm.FEN = gs.FEN()
		jg.Moves = append(jg.Moves, jm)
	}
	jg.FinalFEN = gs.FEN()
	jg.Status = gs.Status().String()
	return jg
}

// WriteGameJSON writes the record of gs as indented JSON.
func WriteGameJSON(w io.Writer, gs *engine.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(gs))
}
