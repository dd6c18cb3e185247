package chess

// Move describes one ply. Moves are values; two moves are the same move when
// their origin and destination squares match (see Equal).
type Move struct {
	// Source and destination squares.
	Start Square
	End   Square

	// The piece being moved.
	PieceMoved Piece

	// What stood on End before the move. Empty for quiet moves and for
	// en passant, where the captured pawn sits beside End.
	PieceCaptured Cell

	// A pawn reaching the far rank. The pawn always becomes a queen.
	IsPromotion bool

	// A pawn capturing onto the en passant target square.
	IsEnPassant bool

	// A king moving two files; the rook is relocated in the same step.
	IsCastle bool
}

// NewMove builds the move from start to end on board b, deriving the moved
// and captured pieces and the promotion, en passant and castle flags from the
// board contents and geometry. It panics if either square is off the board.
//
// The result is not checked for legality; compare it against the legal move
// list with Equal before applying it.
func NewMove(start, end Square, b *Board) Move {
	m := Move{
		Start:         start,
		End:           end,
		PieceCaptured: b.At(end),
	}
	moved, ok := b.At(start).Piece()
	if !ok {
		return m
	}
	m.PieceMoved = moved

	switch moved.Kind {
	case Pawn:
		if end.Row == 0 || end.Row == BoardSize-1 {
			m.IsPromotion = true
		}
		if start.Col != end.Col && m.PieceCaptured.IsEmpty() {
			m.IsEnPassant = true
		}
	case King:
		if abs(end.Col-start.Col) == 2 && start.Row == end.Row {
			m.IsCastle = true
		}
	}
	return m
}

// ID returns the numeric identity of the move: start row, start column,
// end row and end column as decimal digits.
func (m Move) ID() int {
	return m.Start.Row*1000 + m.Start.Col*100 + m.End.Row*10 + m.End.Col
}

// Equal reports whether m and other share origin and destination.
// The promotion piece is not part of a move's identity.
func (m Move) Equal(other Move) bool {
	return m.Start == other.Start && m.End == other.End
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return !m.PieceCaptured.IsEmpty() || m.IsEnPassant
}

// IsDoublePawnPush reports a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	return m.PieceMoved.Kind == Pawn && abs(m.End.Row-m.Start.Row) == 2
}

// IsKingSideCastle reports a castle towards the h-file.
func (m Move) IsKingSideCastle() bool {
	return m.IsCastle && m.End.Col > m.Start.Col
}

// EnPassantVictim returns the square of the pawn removed by an en passant
// capture: the origin's row on the destination's file.
func (m Move) EnPassantVictim() Square {
	return Square{Row: m.Start.Row, Col: m.End.Col}
}

// Notation returns the move in long algebraic form, e.g. "e2e4",
// with an " e.p." suffix for en passant captures.
func (m Move) Notation() string {
	s := m.Start.String() + m.End.String()
	if m.IsEnPassant {
		s += " e.p."
	}
	return s
}

// String returns the move notation.
func (m Move) String() string {
	return m.Notation()
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
