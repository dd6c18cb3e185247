package engine

import (
	"fmt"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/errors"
)

// Play validates m against the legal move set and applies it. Only the
// start and end squares of m are consulted. An illegal move leaves the state
// untouched and returns a *errors.MoveError wrapping ErrIllegalMove.
func (gs *GameState) Play(m chess.Move) error {
	legal, ok := gs.FindLegal(m)
	if !ok {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   len(gs.history) + 1,
			MoveText: m.Start.String() + m.End.String(),
			Side:     gs.sideToMove.String(),
		}
	}
	gs.MakeMove(legal)
	return nil
}

// PlayNotation parses a coordinate move such as "e2e4" or "e7e8q" and plays
// it. Promotion suffixes other than a queen are rejected.
func (gs *GameState) PlayNotation(text string) error {
	m, err := ParseCoordinate(text)
	if err != nil {
		return &errors.MoveError{
			Err:      err,
			PlyNum:   len(gs.history) + 1,
			MoveText: text,
			Side:     gs.sideToMove.String(),
		}
	}
	return gs.Play(m)
}

// PlayAll plays a sequence of coordinate moves, stopping at the first error.
func (gs *GameState) PlayAll(moves ...string) error {
	for _, text := range moves {
		if err := gs.PlayNotation(text); err != nil {
			return err
		}
	}
	return nil
}

// ParseCoordinate parses the squares of a coordinate move. The returned move
// carries no piece or flag information.
func ParseCoordinate(text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("%w: want 4 or 5 characters", errors.ErrIllegalMove)
	}
	if len(text) == 5 && text[4] != 'q' && text[4] != 'Q' {
		return chess.Move{}, fmt.Errorf("%w: only queen promotion is supported", errors.ErrIllegalMove)
	}

	start, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, err
	}
	end, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{Start: start, End: end}, nil
}
