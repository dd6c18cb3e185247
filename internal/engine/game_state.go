// Package engine implements the chess rules: move generation, legality
// filtering, castling and en passant bookkeeping, and the make/undo game
// state machine.
package engine

import (
	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/errors"
	"github.com/lgbarn/negamax-chess-go/internal/hashing"
)

// epTarget is an optional en passant target square.
type epTarget struct {
	sq  chess.Square
	set bool
}

// GameState owns the board and move history of one game. It is mutated only
// through MakeMove and UndoMove; a balanced sequence of the two leaves it
// exactly as it was.
//
// GameState is not safe for concurrent use.
type GameState struct {
	board      chess.Board
	sideToMove chess.Colour
	history    []chess.Move

	whiteKing chess.Square
	blackKing chess.Square

	castling  chess.CastlingRights
	enPassant epTarget

	// Per-ply snapshots. Index 0 holds the starting values, so both stacks
	// are always one longer than history.
	castlingHistory  []chess.CastlingRights
	enPassantHistory []epTarget

	// Move number of the starting position.
	startMove int

	// Reused by attack detection.
	scratch []chess.Move
}

// NewGameState creates a game in the standard starting position.
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset()
	return gs
}

// Reset restores the standard starting position and clears the history.
func (gs *GameState) Reset() {
	gs.board.SetupInitialPosition()
	gs.init(chess.White, chess.AllCastlingRights(), epTarget{})
	gs.startMove = 1
}

// init sets the derived state for the current board and starts a fresh history.
func (gs *GameState) init(toMove chess.Colour, rights chess.CastlingRights, ep epTarget) {
	gs.sideToMove = toMove
	gs.history = gs.history[:0]
	gs.whiteKing, _ = gs.board.FindKing(chess.White)
	gs.blackKing, _ = gs.board.FindKing(chess.Black)
	gs.castling = rights
	gs.enPassant = ep
	gs.castlingHistory = append(gs.castlingHistory[:0], rights)
	gs.enPassantHistory = append(gs.enPassantHistory[:0], ep)
}

// Board returns a copy of the current board.
func (gs *GameState) Board() chess.Board {
	return gs.board
}

// BoardRef returns the live board. Callers must not modify it.
func (gs *GameState) BoardRef() *chess.Board {
	return &gs.board
}

// At returns the cell at sq. It panics if sq is off the board.
func (gs *GameState) At(sq chess.Square) chess.Cell {
	return gs.board.At(sq)
}

// SideToMove returns the colour whose turn it is.
func (gs *GameState) SideToMove() chess.Colour {
	return gs.sideToMove
}

// CastlingRights returns the current castling rights.
func (gs *GameState) CastlingRights() chess.CastlingRights {
	return gs.castling
}

// EnPassantTarget returns the square a pawn passed over on the previous
// ply, if that ply was a two-square pawn advance.
func (gs *GameState) EnPassantTarget() (chess.Square, bool) {
	return gs.enPassant.sq, gs.enPassant.set
}

// KingSquare returns the cached square of the given colour's king.
func (gs *GameState) KingSquare(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return gs.whiteKing
	}
	return gs.blackKing
}

// History returns a copy of the moves played so far.
func (gs *GameState) History() []chess.Move {
	out := make([]chess.Move, len(gs.history))
	copy(out, gs.history)
	return out
}

// Ply returns the number of moves played.
func (gs *GameState) Ply() int {
	return len(gs.history)
}

// LastMove returns the most recent move, if any.
func (gs *GameState) LastMove() (chess.Move, bool) {
	if len(gs.history) == 0 {
		return chess.Move{}, false
	}
	return gs.history[len(gs.history)-1], true
}

// Hash returns the Zobrist hash of the current position.
func (gs *GameState) Hash() uint64 {
	return hashing.ZobristHash(hashing.Position{
		Board:        &gs.board,
		ToMove:       gs.sideToMove,
		Castling:     gs.castling,
		EnPassant:    gs.enPassant.sq,
		HasEnPassant: gs.enPassant.set,
	})
}

// MakeMove applies m, which must come from the current legal or pseudo-legal
// move list, and advances the game by one ply.
func (gs *GameState) MakeMove(m chess.Move) {
	gs.board.Remove(m.Start)

	placed := m.PieceMoved
	if m.IsPromotion {
		placed.Kind = chess.Queen
	}
	gs.board.Put(m.End, placed)

	if m.IsEnPassant {
		gs.board.Remove(m.EnPassantVictim())
	}

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board.Set(rookTo, gs.board.At(rookFrom))
		gs.board.Remove(rookFrom)
	}

	if m.PieceMoved.Kind == chess.King {
		gs.setKingSquare(m.PieceMoved.Colour, m.End)
	}

	gs.enPassant = enPassantAfter(m)
	gs.castling = castlingAfter(gs.castling, m)

	gs.castlingHistory = append(gs.castlingHistory, gs.castling)
	gs.enPassantHistory = append(gs.enPassantHistory, gs.enPassant)
	gs.history = append(gs.history, m)
	gs.sideToMove = gs.sideToMove.Opposite()
}

// UndoMove takes back the last move. With an empty history it returns
// ErrNoMoveToUndo and leaves the state untouched.
func (gs *GameState) UndoMove() error {
	if len(gs.history) == 0 {
		return errors.ErrNoMoveToUndo
	}

	m := gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]

	gs.board.Put(m.Start, m.PieceMoved)
	gs.board.Set(m.End, m.PieceCaptured)

	if m.IsEnPassant {
		gs.board.Put(m.EnPassantVictim(), chess.Piece{
			Colour: m.PieceMoved.Colour.Opposite(),
			Kind:   chess.Pawn,
		})
	}

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board.Set(rookFrom, gs.board.At(rookTo))
		gs.board.Remove(rookTo)
	}

	if m.PieceMoved.Kind == chess.King {
		gs.setKingSquare(m.PieceMoved.Colour, m.Start)
	}

	gs.castlingHistory = gs.castlingHistory[:len(gs.castlingHistory)-1]
	gs.castling = gs.castlingHistory[len(gs.castlingHistory)-1]
	gs.enPassantHistory = gs.enPassantHistory[:len(gs.enPassantHistory)-1]
	gs.enPassant = gs.enPassantHistory[len(gs.enPassantHistory)-1]

	gs.sideToMove = gs.sideToMove.Opposite()
	return nil
}

// setKingSquare updates the king location cache.
func (gs *GameState) setKingSquare(colour chess.Colour, sq chess.Square) {
	if colour == chess.White {
		gs.whiteKing = sq
	} else {
		gs.blackKing = sq
	}
}

// enPassantAfter returns the en passant target created by m: the square
// passed over by a two-square pawn advance, or none.
func enPassantAfter(m chess.Move) epTarget {
	if !m.IsDoublePawnPush() {
		return epTarget{}
	}
	return epTarget{
		sq:  chess.Square{Row: (m.Start.Row + m.End.Row) / 2, Col: m.Start.Col},
		set: true,
	}
}

// Snapshot is a comparable copy of everything MakeMove and UndoMove touch.
type Snapshot struct {
	Board        chess.Board
	SideToMove   chess.Colour
	Castling     chess.CastlingRights
	EnPassant    chess.Square
	HasEnPassant bool
	WhiteKing    chess.Square
	BlackKing    chess.Square
	HistoryLen   int
}

// Snapshot captures the current state.
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Board:        gs.board,
		SideToMove:   gs.sideToMove,
		Castling:     gs.castling,
		EnPassant:    gs.enPassant.sq,
		HasEnPassant: gs.enPassant.set,
		WhiteKing:    gs.whiteKing,
		BlackKing:    gs.blackKing,
		HistoryLen:   len(gs.history),
	}
}
