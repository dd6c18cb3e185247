package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
)

// Failure paths cannot be observed without a mock *testing.T, so these cover
// the passing cases and the message formatter.

func TestAssertHelpers_Success(t *testing.T) {
	AssertEqual(t, chess.Sq(6, 4), chess.Sq(6, 4))
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "slice of %d", 3)
	AssertNoError(t, nil)
	AssertTrue(t, true)
	AssertFalse(t, false, "never true")

	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format", []interface{}{"ply %d", 3}, "ply 3"},
		{"non-string", []interface{}{42}, "42"},
		{"non-string with args", []interface{}{42, "x"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestCoordsAndFind(t *testing.T) {
	b := chess.NewInitialBoard()
	moves := []chess.Move{
		chess.NewMove(Sq("g1"), Sq("f3"), b),
		chess.NewMove(Sq("e2"), Sq("e4"), b),
	}

	AssertEqual(t, Coords(moves), []string{"e2e4", "g1f3"})
	AssertMoves(t, moves, "g1f3", "e2e4")

	m := MustFindMove(t, moves, "e2", "e4")
	AssertEqual(t, m.PieceMoved, chess.W(chess.Pawn))

	_, ok := FindMove(moves, "d2", "d4")
	AssertFalse(t, ok, "d2d4 was never generated")
}
