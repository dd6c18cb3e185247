package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
)

// Sq parses an algebraic square name, panicking on bad input.
func Sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

// Coords returns the coordinate text ("e2e4") of every move, sorted.
// Duplicates are kept so that double generation shows up in diffs.
func Coords(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Start.String() + m.End.String()
	}
	sort.Strings(out)
	return out
}

// AssertMoves fails unless moves covers exactly the coordinate moves in
// want, in any order.
func AssertMoves(t *testing.T, moves []chess.Move, want ...string) {
	t.Helper()
	sorted := append([]string(nil), want...)
	sort.Strings(sorted)
	if diff := cmp.Diff(sorted, Coords(moves), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("move set mismatch (-want +got):\n%s", diff)
	}
}

// FindMove returns the move from start to end, if present.
func FindMove(moves []chess.Move, start, end string) (chess.Move, bool) {
	s, e := Sq(start), Sq(end)
	for _, m := range moves {
		if m.Start == s && m.End == e {
			return m, true
		}
	}
	return chess.Move{}, false
}

// MustFindMove is FindMove that fails the test when the move is missing.
func MustFindMove(t *testing.T, moves []chess.Move, start, end string) chess.Move {
	t.Helper()
	m, ok := FindMove(moves, start, end)
	if !ok {
		t.Fatalf("move %s%s not in %v", start, end, Coords(moves))
	}
	return m
}
