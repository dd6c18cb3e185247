package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/config"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
	"github.com/lgbarn/negamax-chess-go/internal/output"
	"github.com/lgbarn/negamax-chess-go/internal/search"
)

// moveChooser picks the next move for the side to move. ok is false when
// there is nothing to play.
type moveChooser func(gs *engine.GameState) (m chess.Move, score int, ok bool, err error)

// searchChooser picks moves with s.
func searchChooser(s *search.Searcher) moveChooser {
	return func(gs *engine.GameState) (chess.Move, int, bool, error) {
		res, err := s.FindBestMove(gs)
		if err != nil {
			return chess.Move{}, 0, false, err
		}
		return res.Move, res.Score, res.Found, nil
	}
}

// randomChooser picks uniformly among the legal moves.
func randomChooser(rng *rand.Rand) moveChooser {
	return func(gs *engine.GameState) (chess.Move, int, bool, error) {
		m, ok := search.RandomMove(gs.GetValidMoves(), rng)
		return m, 0, ok, nil
	}
}

// selfPlay plays up to plies moves (0 = until the game ends) with choose,
// printing the position before the first move and after every move. With
// -J the boards are skipped and the whole game is written as JSON at the end.
func selfPlay(cfg *config.Config, gs *engine.GameState, plies int, choose moveChooser) error {
	out := cfg.OutputFile
	if *jsonOutput {
		out = io.Discard
	}
	printPosition(out, gs)

	for played := 0; plies == 0 || played < plies; played++ {
		if gs.Status().IsOver() {
			break
		}

		mover := gs.SideToMove()
		m, score, ok, err := choose(gs)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := gs.Play(m); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%d. %s plays %s (score %d)\n", gs.Ply(), mover, m.Notation(), score)
		cfg.Logf(2, "%s\n", gs.FEN())
		printPosition(out, gs)
	}

	if *jsonOutput {
		return output.WriteGameJSON(cfg.OutputFile, gs)
	}
	return nil
}

// printPosition writes the board, side to move and status.
func printPosition(w io.Writer, gs *engine.GameState) {
	board := gs.Board()
	fmt.Fprint(w, board.String())
	fmt.Fprintf(w, "%s to move, %s\n", gs.SideToMove(), gs.Status())
}

// printMoves writes the legal moves of the position, one per line.
func printMoves(w io.Writer, gs *engine.GameState) {
	for _, m := range gs.GetValidMoves() {
		fmt.Fprintln(w, m.Notation())
	}
}
