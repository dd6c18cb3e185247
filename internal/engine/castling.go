package engine

import "github.com/lgbarn/negamax-chess-go/internal/chess"

// Castling geometry, as grid columns.
const (
	kingHomeCol      = 4
	kingSideRookCol  = chess.BoardSize - 1
	queenSideRookCol = 0
)

// castleRookSquares returns where the rook starts and lands for castle move m.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	row := m.Start.Row
	if m.IsKingSideCastle() {
		return chess.Sq(row, kingSideRookCol), chess.Sq(row, m.End.Col-1)
	}
	return chess.Sq(row, queenSideRookCol), chess.Sq(row, m.End.Col+1)
}

// castlingAfter returns the castling rights once m has been played. A king
// move revokes both of its side's flags; a rook leaving its home corner, or
// any piece capturing a rook on its home corner, revokes that wing.
func castlingAfter(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	mover := m.PieceMoved.Colour
	switch m.PieceMoved.Kind {
	case chess.King:
		rights.RevokeAll(mover)
	case chess.Rook:
		rights.RevokeRookSquare(mover, m.Start)
	}
	if captured, ok := m.PieceCaptured.Piece(); ok && captured.Kind == chess.Rook {
		rights.RevokeRookSquare(captured.Colour, m.End)
	}
	return rights
}

// castleMoves appends the castle moves available to the king on kingSq.
// Nothing is added while the king is in check. Each wing needs its flag,
// its rook at home, empty squares between king and rook, and the squares
// the king crosses and lands on free of attack.
func (gs *GameState) castleMoves(kingSq chess.Square, moves []chess.Move) []chess.Move {
	colour := gs.sideToMove
	enemy := colour.Opposite()
	row := colour.HomeRow()
	if kingSq != chess.Sq(row, kingHomeCol) {
		return moves
	}
	if gs.SquareUnderAttack(kingSq, enemy) {
		return moves
	}

	rook := chess.Occupied(chess.Piece{Colour: colour, Kind: chess.Rook})

	if gs.castling.KingSide(colour) && gs.board.At(chess.Sq(row, kingSideRookCol)) == rook {
		f, g := chess.Sq(row, 5), chess.Sq(row, 6)
		if gs.board.At(f).IsEmpty() && gs.board.At(g).IsEmpty() &&
			!gs.SquareUnderAttack(f, enemy) && !gs.SquareUnderAttack(g, enemy) {
			moves = append(moves, chess.NewMove(kingSq, g, &gs.board))
		}
	}

	if gs.castling.QueenSide(colour) && gs.board.At(chess.Sq(row, queenSideRookCol)) == rook {
		b, c, d := chess.Sq(row, 1), chess.Sq(row, 2), chess.Sq(row, 3)
		if gs.board.At(b).IsEmpty() && gs.board.At(c).IsEmpty() && gs.board.At(d).IsEmpty() &&
			!gs.SquareUnderAttack(d, enemy) && !gs.SquareUnderAttack(c, enemy) {
			moves = append(moves, chess.NewMove(kingSq, c, &gs.board))
		}
	}

	return moves
}
