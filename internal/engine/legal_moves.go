package engine

import "github.com/lgbarn/negamax-chess-go/internal/chess"

// GetValidMoves returns the legal moves of the side to move: every
// pseudo-legal move plus castling, minus those that leave the mover's own
// king attacked. Each candidate is tested by playing it and taking it back,
// so the state is unchanged on return.
func (gs *GameState) GetValidMoves() []chess.Move {
	mover := gs.sideToMove
	candidates := gs.AllPseudoLegalMoves()
	candidates = gs.castleMoves(gs.KingSquare(mover), candidates)

	legal := candidates[:0]
	for _, m := range candidates {
		if gs.isLegal(m, mover) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal plays m and reports whether mover's king survives it.
func (gs *GameState) isLegal(m chess.Move, mover chess.Colour) bool {
	gs.MakeMove(m)
	safe := !gs.SquareUnderAttack(gs.KingSquare(mover), mover.Opposite())
	_ = gs.UndoMove()
	return safe
}

// HasLegalMoves returns true if the side to move has at least one legal move.
// It stops at the first one found.
func (gs *GameState) HasLegalMoves() bool {
	mover := gs.sideToMove
	for _, m := range gs.AllPseudoLegalMoves() {
		if gs.isLegal(m, mover) {
			return true
		}
	}
	// Castling needs a free, unattacked neighbouring square, which is
	// itself a legal king move.
	return false
}

// IsLegal reports whether m is in the current legal move set.
func (gs *GameState) IsLegal(m chess.Move) bool {
	_, ok := gs.FindLegal(m)
	return ok
}

// FindLegal returns the legal move equal to m (same origin and destination),
// carrying the flags the generator set.
func (gs *GameState) FindLegal(m chess.Move) (chess.Move, bool) {
	for _, legal := range gs.GetValidMoves() {
		if legal.Equal(m) {
			return legal, true
		}
	}
	return chess.Move{}, false
}
