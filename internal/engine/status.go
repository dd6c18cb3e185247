package engine

// GameStatus is the state of play for the side to move.
type GameStatus int

const (
	Play GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case name of the status.
func (s GameStatus) String() string {
	switch s {
	case Play:
		return "play"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsOver returns true for checkmate and stalemate.
func (s GameStatus) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// Status returns Checkmate or Stalemate when the side to move has no legal
// moves, depending on whether it is in check; otherwise Check or Play.
func (gs *GameState) Status() GameStatus {
	inCheck := gs.InCheck()
	if !gs.HasLegalMoves() {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return Play
}
