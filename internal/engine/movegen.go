package engine

import "github.com/lgbarn/negamax-chess-go/internal/chess"

// Direction tables as (row, col) deltas.
var (
	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs     = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// PseudoLegalMoves returns the moves of the piece on sq that obey its
// movement rules, ignoring whether they leave its own king in check.
// Castling is not included. An empty square yields no moves.
func (gs *GameState) PseudoLegalMoves(sq chess.Square) []chess.Move {
	return gs.appendPieceMoves(nil, sq)
}

// AllPseudoLegalMoves returns the pseudo-legal moves of every piece of the
// side to move, scanning the board row by row from row 0.
func (gs *GameState) AllPseudoLegalMoves() []chess.Move {
	return gs.pseudoLegalMovesFor(gs.sideToMove)
}

// pseudoLegalMovesFor collects the pseudo-legal moves of colour's pieces.
func (gs *GameState) pseudoLegalMovesFor(colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if gs.board.Squares[row][col].Holds(colour) {
				moves = gs.appendPieceMoves(moves, chess.Sq(row, col))
			}
		}
	}
	return moves
}

// appendPieceMoves dispatches on the kind of the piece on sq.
func (gs *GameState) appendPieceMoves(moves []chess.Move, sq chess.Square) []chess.Move {
	p, ok := gs.board.At(sq).Piece()
	if !ok {
		return moves
	}
	switch p.Kind {
	case chess.Pawn:
		return gs.pawnMoves(moves, sq, p.Colour)
	case chess.Knight:
		return gs.stepMoves(moves, sq, p.Colour, knightOffsets)
	case chess.Bishop:
		return gs.slideMoves(moves, sq, p.Colour, diagonalDirs)
	case chess.Rook:
		return gs.slideMoves(moves, sq, p.Colour, straightDirs)
	case chess.Queen:
		return gs.slideMoves(moves, sq, p.Colour, queenDirs)
	case chess.King:
		return gs.stepMoves(moves, sq, p.Colour, kingOffsets)
	}
	return moves
}

// pawnDirection returns the row delta of a pawn advance.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// pawnHomeRow returns the row pawns of colour start on.
func pawnHomeRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// enPassantRow returns the row a pawn of colour must stand on to capture
// en passant: rank 5 for White, rank 4 for Black.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}

// pawnMoves generates pushes, captures and en passant captures.
func (gs *GameState) pawnMoves(moves []chess.Move, sq chess.Square, colour chess.Colour) []chess.Move {
	dir := pawnDirection(colour)

	one := sq.Offset(dir, 0)
	if one.Valid() && gs.board.At(one).IsEmpty() {
		moves = append(moves, chess.NewMove(sq, one, &gs.board))
		two := sq.Offset(2*dir, 0)
		if sq.Row == pawnHomeRow(colour) && gs.board.At(two).IsEmpty() {
			moves = append(moves, chess.NewMove(sq, two, &gs.board))
		}
	}

	for _, dc := range []int{-1, 1} {
		target := sq.Offset(dir, dc)
		if !target.Valid() {
			continue
		}
		cell := gs.board.At(target)
		if cell.Holds(colour.Opposite()) {
			moves = append(moves, chess.NewMove(sq, target, &gs.board))
			continue
		}
		if gs.enPassant.set && target == gs.enPassant.sq && sq.Row == enPassantRow(colour) && cell.IsEmpty() {
			moves = append(moves, chess.NewMove(sq, target, &gs.board))
		}
	}
	return moves
}

// stepMoves generates single-step moves from an offset table.
func (gs *GameState) stepMoves(moves []chess.Move, sq chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		target := sq.Offset(off[0], off[1])
		if !target.Valid() || gs.board.At(target).Holds(colour) {
			continue
		}
		moves = append(moves, chess.NewMove(sq, target, &gs.board))
	}
	return moves
}

// slideMoves ray-casts along each direction until the edge, a friendly
// piece (excluded) or an enemy piece (included).
func (gs *GameState) slideMoves(moves []chess.Move, sq chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		for target := sq.Offset(dir[0], dir[1]); target.Valid(); target = target.Offset(dir[0], dir[1]) {
			cell := gs.board.At(target)
			if cell.Holds(colour) {
				break
			}
			moves = append(moves, chess.NewMove(sq, target, &gs.board))
			if !cell.IsEmpty() {
				break
			}
		}
	}
	return moves
}
