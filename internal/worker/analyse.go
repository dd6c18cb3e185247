package worker

import (
	"math/rand"

	"github.com/lgbarn/negamax-chess-go/internal/config"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
	"github.com/lgbarn/negamax-chess-go/internal/eval"
	"github.com/lgbarn/negamax-chess-go/internal/hashing"
	"github.com/lgbarn/negamax-chess-go/internal/search"
)

// NewAnalyseFunc returns a ProcessFunc that parses each FEN and searches it
// with cfg. cache may be shared between workers only if it is safe for
// concurrent use, such as a *hashing.LockedTable; nil disables it.
//
// With a non-zero seed, item i shuffles with seed+i, so root move order does
// not depend on scheduling. Entries that other workers store in a shared
// table still can, since bound scores are stored as exact.
func NewAnalyseFunc(cfg *config.Config, cache hashing.Cache) ProcessFunc {
	ev := eval.New(cfg.Eval)

	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN}

		gs, err := engine.NewGameStateFromFEN(item.FEN)
		if err != nil {
			res.Error = err
			return res
		}
		res.Status = gs.Status()
		if res.Status.IsOver() {
			return res
		}

		opts := []search.Option{search.WithLog(cfg.LogFile, cfg.Verbosity-1)}
		if cfg.Search.Shuffle && cfg.Search.Seed != 0 {
			opts = append(opts, search.WithRand(rand.New(rand.NewSource(cfg.Search.Seed+int64(item.Index)))))
		}
		found, err := search.NewSearcher(cfg.Search, ev, cache, opts...).FindBestMove(gs)
		if err != nil {
			res.Error = err
			return res
		}

		res.Move = found.Move
		res.Found = found.Found
		res.Score = found.Score
		res.Nodes = found.Nodes
		return res
	}
}
