package search

import (
	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
)

// FullWidthScore scores the position by plain NegaMax over every move to
// the configured depth: no pruning, no ordering, no transposition table.
// It returns the same score as FindBestMove would with the cache disabled
// and serves as a reference for it.
func (s *Searcher) FullWidthScore(gs *engine.GameState) int {
	return s.fullWidth(gs, gs.GetValidMoves(), s.cfg.Depth, gs.SideToMove().Sign())
}

func (s *Searcher) fullWidth(gs *engine.GameState, moves []chess.Move, depth, sign int) int {
	if len(moves) == 0 {
		return s.terminalScore(gs, depth)
	}
	if depth == 0 {
		return sign * s.eval.Evaluate(gs.BoardRef())
	}

	maxScore := -infinity
	for _, m := range moves {
		gs.MakeMove(m)
		score := -s.fullWidth(gs, gs.GetValidMoves(), depth-1, -sign)
		_ = gs.UndoMove()
		if score > maxScore {
			maxScore = score
		}
	}
	return maxScore
}
