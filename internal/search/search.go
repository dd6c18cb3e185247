// Package search implements move selection: NegaMax with alpha-beta
// pruning, capture-first move ordering and a transposition table.
package search

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/config"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
	"github.com/lgbarn/negamax-chess-go/internal/errors"
	"github.com/lgbarn/negamax-chess-go/internal/eval"
	"github.com/lgbarn/negamax-chess-go/internal/hashing"
)

// infinity bounds every reachable score and survives negation.
const infinity = 1 << 30

// Result is the outcome of one search.
type Result struct {
	// Move is the chosen move. It is meaningful only when Found is true.
	Move chess.Move

	// Score is from the point of view of the side that was to move.
	Score int

	// Nodes is the number of positions visited.
	Nodes int

	Found bool
}

// Searcher selects moves. A Searcher may be reused across searches and
// games; its transposition table persists between them. It is not safe for
// concurrent use, but several Searchers may share one hashing.LockedTable.
type Searcher struct {
	cfg   config.SearchConfig
	eval  *eval.Evaluator
	cache hashing.Cache
	rng   *rand.Rand

	log       io.Writer
	verbosity int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithRand sets the source used to shuffle root moves. It overrides the
// seed from the configuration. A nil source disables shuffling.
func WithRand(r *rand.Rand) Option {
	return func(s *Searcher) {
		s.rng = r
	}
}

// WithLog sets the writer for search summaries and the verbosity that
// gates them.
func WithLog(w io.Writer, verbosity int) Option {
	return func(s *Searcher) {
		s.log = w
		s.verbosity = verbosity
	}
}

// NewSearcher creates a Searcher. cache may be nil to disable the
// transposition table. When cfg.Shuffle is set and no WithRand option is
// given, root moves are shuffled with a source seeded from cfg.Seed, or from
// the clock if the seed is zero.
func NewSearcher(cfg config.SearchConfig, ev *eval.Evaluator, cache hashing.Cache, opts ...Option) *Searcher {
	s := &Searcher{
		cfg:   cfg,
		eval:  ev,
		cache: cache,
	}
	if cfg.Shuffle {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New creates a Searcher from a full configuration, logging through its
// log stream.
func New(cfg *config.Config, cache hashing.Cache) *Searcher {
	return NewSearcher(cfg.Search, eval.New(cfg.Eval), cache, WithLog(cfg.LogFile, cfg.Verbosity))
}

// searchContext accumulates per-search state through the recursion.
type searchContext struct {
	rootDepth int
	nodes     int
	best      chess.Move
	found     bool
}

// FindBestMove searches the current position to the configured depth and
// returns the best move for the side to move. The game state is restored
// before returning. With no legal moves it returns ErrNoLegalMoves.
func (s *Searcher) FindBestMove(gs *engine.GameState) (Result, error) {
	moves := gs.GetValidMoves()
	if len(moves) == 0 {
		return Result{}, errors.Wrapf(errors.ErrNoLegalMoves, "%s", gs.Status())
	}
	if s.rng != nil {
		s.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}

	ctx := &searchContext{rootDepth: s.cfg.Depth}
	score := s.negaMax(ctx, gs, moves, s.cfg.Depth, gs.SideToMove().Sign(), -infinity, infinity)

	s.logf(1, "Evaluated %d positions\n", ctx.nodes)
	if ctx.found {
		s.logf(2, "best %s score %d\n", ctx.best.Notation(), score)
	}
	return Result{Move: ctx.best, Score: score, Nodes: ctx.nodes, Found: ctx.found}, nil
}

// negaMax scores the position for the side to move. sign is +1 when White
// is to move and -1 otherwise; moves are the legal moves of the position.
func (s *Searcher) negaMax(ctx *searchContext, gs *engine.GameState, moves []chess.Move, depth, sign, alpha, beta int) int {
	ctx.nodes++

	var hash uint64
	if s.cache != nil {
		hash = gs.Hash()
		// The root is always searched so that a move gets recorded.
		if depth < ctx.rootDepth {
			if e, ok := s.cache.Get(hash, depth); ok {
				return e.Score
			}
		}
	}

	if len(moves) == 0 {
		return s.terminalScore(gs, depth)
	}
	if depth == 0 {
		return sign * s.eval.Evaluate(gs.BoardRef())
	}

	s.orderMoves(moves)

	maxScore := -infinity
	var best chess.Move
	found := false
	for _, m := range moves {
		gs.MakeMove(m)
		score := -s.negaMax(ctx, gs, gs.GetValidMoves(), depth-1, -sign, -beta, -alpha)
		_ = gs.UndoMove()

		if score > maxScore {
			maxScore = score
			best = m
			found = true
			if depth == ctx.rootDepth {
				ctx.best = m
				ctx.found = true
			}
		}
		if maxScore > alpha {
			alpha = maxScore
		}
		if alpha >= beta {
			break
		}
	}

	if found && s.cache != nil {
		s.cache.Store(hash, depth, hashing.Entry{Score: maxScore, Move: best})
	}
	return maxScore
}

// terminalScore scores a position without legal moves for the side to
// move. Mates found with more depth remaining are nearer the root and score
// further from zero.
func (s *Searcher) terminalScore(gs *engine.GameState, depth int) int {
	if gs.InCheck() {
		return -(s.cfg.CheckmateScore + depth)
	}
	return s.cfg.StalemateScore
}

// logf writes to the search log when verbosity is at least level.
func (s *Searcher) logf(level int, format string, args ...interface{}) {
	if s.log == nil || s.verbosity < level {
		return
	}
	fmt.Fprintf(s.log, format, args...)
}

// RandomMove returns a uniformly chosen move, or false if moves is empty.
func RandomMove(moves []chess.Move, rng *rand.Rand) (chess.Move, bool) {
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}
