package search

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/config"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
	"github.com/lgbarn/negamax-chess-go/internal/errors"
	"github.com/lgbarn/negamax-chess-go/internal/eval"
	"github.com/lgbarn/negamax-chess-go/internal/hashing"
	"github.com/lgbarn/negamax-chess-go/internal/testutil"
)

const scholarFEN = "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4"

// searchConfig returns a deterministic configuration at the given depth.
func searchConfig(depth int) config.SearchConfig {
	cfg := config.NewSearchConfig()
	cfg.Depth = depth
	cfg.Shuffle = false
	return cfg
}

func newTestSearcher(depth int, cache hashing.Cache, opts ...Option) *Searcher {
	return NewSearcher(searchConfig(depth), eval.NewDefault(), cache, opts...)
}

func mustFEN(t *testing.T, fen string) *engine.GameState {
	t.Helper()
	gs, err := engine.NewGameStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameStateFromFEN(%q) error: %v", fen, err)
	}
	return gs
}

func TestAlphaBetaMatchesFullWidth(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"initial d1", engine.InitialFEN, 1},
		{"initial d2", engine.InitialFEN, 2},
		{"initial d3", engine.InitialFEN, 3},
		{"scholar d2", scholarFEN, 2},
		{"scholar d3", scholarFEN, 3},
		{"rook endgame d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"black to move d3", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.depth >= 3 && testing.Short() {
				t.Skip("skipping full-width search in short mode")
			}
			gs := mustFEN(t, tt.fen)
			s := newTestSearcher(tt.depth, nil)

			want := s.FullWidthScore(gs)
			res, err := s.FindBestMove(gs)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Score, want, "pruned score")

			shuffled := newTestSearcher(tt.depth, nil, WithRand(rand.New(rand.NewSource(5))))
			res, err = shuffled.FindBestMove(gs)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Score, want, "pruned score after root shuffle")
		})
	}
}

func TestFindBestMoveFindsMate(t *testing.T) {
	const mate = 100000
	tests := []struct {
		name  string
		fen   string
		depth int
		want  string
		score int
	}{
		{"back rank d1", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 1, "a1a8", mate},
		{"back rank d3", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 3, "a1a8", mate + 2},
		{"fool's mate d1", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", 1, "d8h4", mate},
		{"fool's mate d2", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", 2, "d8h4", mate + 1},
		{"scholar's mate d2", scholarFEN, 2, "h5f7", mate + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := mustFEN(t, tt.fen)
			res, err := newTestSearcher(tt.depth, nil).FindBestMove(gs)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, res.Found, "a move is found")
			testutil.AssertEqual(t, res.Move.Notation(), tt.want)
			testutil.AssertEqual(t, res.Score, tt.score)
		})
	}
}

func TestFindBestMoveAvoidsHangingQueen(t *testing.T) {
	// White's queen on d4 is attacked by the e5 pawn.
	gs := mustFEN(t, "4k3/8/8/4p3/3Q4/8/8/4K3 w - - 0 1")
	res, err := newTestSearcher(2, nil).FindBestMove(gs)
	testutil.AssertNoError(t, err)

	gs.MakeMove(res.Move)
	for _, reply := range gs.GetValidMoves() {
		if reply.IsCapture() && reply.End == res.Move.End {
			t.Errorf("best move %s leaves the queen en prise", res.Move.Notation())
		}
	}
}

func TestFindBestMoveRestoresState(t *testing.T) {
	gs := mustFEN(t, scholarFEN)
	before := gs.Snapshot()
	fen := gs.FEN()

	_, err := newTestSearcher(3, hashing.NewTable(1024)).FindBestMove(gs)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gs.Snapshot(), before)
	testutil.AssertEqual(t, gs.FEN(), fen)
}

func TestFindBestMoveNoLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newTestSearcher(2, nil).FindBestMove(mustFEN(t, tt.fen))
			testutil.AssertErrorIs(t, err, errors.ErrNoLegalMoves)
			testutil.AssertFalse(t, res.Found, "no move on error")
		})
	}
}

func TestTerminalScores(t *testing.T) {
	s := newTestSearcher(2, nil)
	stalemate := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	mated := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	testutil.AssertEqual(t, s.FullWidthScore(stalemate), 0)
	testutil.AssertEqual(t, s.FullWidthScore(mated), -(100000 + 2))
}

func TestFindBestMoveDeterministic(t *testing.T) {
	first, err := newTestSearcher(3, nil).FindBestMove(mustFEN(t, scholarFEN))
	testutil.AssertNoError(t, err)
	second, err := newTestSearcher(3, nil).FindBestMove(mustFEN(t, scholarFEN))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, second, first, "unshuffled searches agree")

	cfg := searchConfig(2)
	cfg.Shuffle = true
	cfg.Seed = 99
	a, _ := NewSearcher(cfg, eval.NewDefault(), nil).FindBestMove(engine.NewGameState())
	b, _ := NewSearcher(cfg, eval.NewDefault(), nil).FindBestMove(engine.NewGameState())
	testutil.AssertEqual(t, b, a, "same seed, same result")
}

func TestTranspositionTableReused(t *testing.T) {
	table := hashing.NewTable(0)
	s := newTestSearcher(2, table)
	gs := engine.NewGameState()

	first, err := s.FindBestMove(gs)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, table.Len() > 0, "entries stored")

	second, err := s.FindBestMove(gs)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, table.Stats().Hits > 0, "second search hits the table")
	// Every root child is answered from the table.
	testutil.AssertEqual(t, second.Nodes, 1+20)
	testutil.AssertTrue(t, second.Nodes < first.Nodes, "fewer nodes with a warm table")
	testutil.AssertTrue(t, second.Found, "root is always searched")
}

func TestSharedLockedTable(t *testing.T) {
	table := hashing.NewLockedTable(1 << 12)
	a := newTestSearcher(2, table)
	b := newTestSearcher(2, table)

	_, err := a.FindBestMove(engine.NewGameState())
	testutil.AssertNoError(t, err)
	res, err := b.FindBestMove(engine.NewGameState())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Nodes, 21, "second searcher reuses the first one's entries")
}

func TestOrderMoves(t *testing.T) {
	b := chess.NewBoard()
	b.Put(testutil.Sq("e1"), chess.W(chess.King))
	b.Put(testutil.Sq("e8"), chess.B(chess.King))
	b.Put(testutil.Sq("c4"), chess.W(chess.Pawn))
	b.Put(testutil.Sq("d5"), chess.B(chess.Queen))
	b.Put(testutil.Sq("h1"), chess.W(chess.Queen))
	b.Put(testutil.Sq("h7"), chess.B(chess.Pawn))
	b.Put(testutil.Sq("f2"), chess.W(chess.Knight))
	b.Put(testutil.Sq("a2"), chess.W(chess.Pawn))
	b.Put(testutil.Sq("g2"), chess.W(chess.Rook))
	b.Put(testutil.Sq("g6"), chess.B(chess.Knight))

	move := func(from, to string) chess.Move {
		return chess.NewMove(testutil.Sq(from), testutil.Sq(to), b)
	}
	moves := []chess.Move{
		move("a2", "a3"), // quiet: 0
		move("h1", "h7"), // queen takes pawn: -800
		move("f2", "e4"), // centre: 10
		move("c4", "d5"), // pawn takes queen: 800
		move("g2", "g6"), // rook takes knight: -180
		move("a2", "a4"), // quiet: 0, stays after a2a3
	}

	newTestSearcher(1, nil).orderMoves(moves)
	testutil.AssertEqual(t, notations(moves), []string{"c4d5", "f2e4", "a2a3", "a2a4", "g2g6", "h1h7"})
}

func notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

func TestSearchLogging(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSearcher(1, nil, WithLog(&buf, 1))
	res, err := s.FindBestMove(engine.NewGameState())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, buf.String(), "Evaluated 21 positions\n")
	testutil.AssertEqual(t, res.Nodes, 21)

	buf.Reset()
	quiet := newTestSearcher(1, nil, WithLog(&buf, 0))
	_, _ = quiet.FindBestMove(engine.NewGameState())
	testutil.AssertEqual(t, buf.String(), "")
}

func TestNewFromConfig(t *testing.T) {
	var logBuf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithDepth(1).
		WithShuffle(false).
		WithLog(&logBuf).
		WithVerbosity(2).
		Build()
	testutil.AssertNoError(t, cfg.Validate())

	res, err := New(cfg, nil).FindBestMove(engine.NewGameState())
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Found)
	testutil.AssertTrue(t, bytes.Contains(logBuf.Bytes(), []byte("best "+res.Move.Notation())), "verbose log names the move")
}

func TestRandomMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, ok := RandomMove(nil, rng)
	testutil.AssertFalse(t, ok, "no move from an empty list")

	moves := engine.NewGameState().GetValidMoves()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		m, ok := RandomMove(moves, rng)
		testutil.AssertTrue(t, ok)
		seen[m.Notation()] = true
	}
	testutil.AssertTrue(t, len(seen) > 10, "moves are spread out, saw %d", len(seen))
}
