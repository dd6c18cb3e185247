package engine

import "github.com/lgbarn/negamax-chess-go/internal/chess"

// InCheck returns true if the side to move's king is attacked.
func (gs *GameState) InCheck() bool {
	colour := gs.sideToMove
	return gs.SquareUnderAttack(gs.KingSquare(colour), colour.Opposite())
}

// SquareUnderAttack returns true if any piece of colour by could move to
// sq. Pieces other than pawns attack the destinations of their pseudo-legal
// moves; pawns attack both forward diagonals whether or not they are
// occupied. Castling and the attacker's own check status play no part.
func (gs *GameState) SquareUnderAttack(sq chess.Square, by chess.Colour) bool {
	dir := pawnDirection(by)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			cell := gs.board.Squares[row][col]
			if !cell.Holds(by) {
				continue
			}
			from := chess.Sq(row, col)
			if cell.Kind() == chess.Pawn {
				if sq.Row == row+dir && (sq.Col == col-1 || sq.Col == col+1) {
					return true
				}
				continue
			}
			gs.scratch = gs.appendPieceMoves(gs.scratch[:0], from)
			for _, m := range gs.scratch {
				if m.End == sq {
					return true
				}
			}
		}
	}
	return false
}
