package search

import (
	"sort"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
)

// orderMoves sorts moves best-first for pruning. Captures score the victim's
// value minus the mover's value; other moves score the centre bonus when
// they land on d4, e4, d5 or e5. Ties keep their incoming order.
func (s *Searcher) orderMoves(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return s.orderValue(moves[i]) > s.orderValue(moves[j])
	})
}

// orderValue is the ordering heuristic for a single move. En passant
// captures land on an empty square and are ordered as quiet moves.
func (s *Searcher) orderValue(m chess.Move) int {
	if victim, ok := m.PieceCaptured.Piece(); ok {
		return s.eval.PieceValue(victim.Kind) - s.eval.PieceValue(m.PieceMoved.Kind)
	}
	if isCentre(m.End) {
		return s.cfg.CenterBonus
	}
	return 0
}

// isCentre reports whether sq is one of the four centre squares.
func isCentre(sq chess.Square) bool {
	return (sq.Row == 3 || sq.Row == 4) && (sq.Col == 3 || sq.Col == 4)
}
