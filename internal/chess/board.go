package chess

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid of cells, indexed [row][col].
type Board struct {
	Squares [BoardSize][BoardSize]Cell
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = Occupied(B(backRank[col]))
		b.Squares[1][col] = Occupied(B(Pawn))
		b.Squares[6][col] = Occupied(W(Pawn))
		b.Squares[7][col] = Occupied(W(backRank[col]))
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Cell{}
}

// At returns the cell at sq. It panics if sq is off the board.
func (b *Board) At(sq Square) Cell {
	mustBeValid(sq)
	return b.Squares[sq.Row][sq.Col]
}

// Set places a cell at sq. It panics if sq is off the board.
func (b *Board) Set(sq Square, cell Cell) {
	mustBeValid(sq)
	b.Squares[sq.Row][sq.Col] = cell
}

// Put places piece p at sq.
func (b *Board) Put(sq Square, p Piece) {
	b.Set(sq, Occupied(p))
}

// Remove empties sq.
func (b *Board) Remove(sq Square) {
	b.Set(sq, Empty)
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := Occupied(Piece{Colour: colour, Kind: King})
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many copies of p are on the board.
func (b *Board) Count(p Piece) int {
	target := Occupied(p)
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == target {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of FEN letters, rank 8 first,
// with file and rank labels.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%c ", Square{Row: row}.Rank())
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(b.Squares[row][col].String())
			if col < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// mustBeValid panics when sq is off the board. Square indices are a
// precondition of every board access and are never clamped.
func mustBeValid(sq Square) {
	if !sq.Valid() {
		panic(fmt.Sprintf("chess: square %v out of range", sq))
	}
}

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingSide:  true,
		WhiteQueenSide: true,
		BlackKingSide:  true,
		BlackQueenSide: true,
	}
}

// KingSide reports the king-side flag for colour.
func (c CastlingRights) KingSide(colour Colour) bool {
	if colour == White {
		return c.WhiteKingSide
	}
	return c.BlackKingSide
}

// QueenSide reports the queen-side flag for colour.
func (c CastlingRights) QueenSide(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenSide
	}
	return c.BlackQueenSide
}

// RevokeAll clears both flags for colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	if colour == White {
		c.WhiteKingSide = false
		c.WhiteQueenSide = false
	} else {
		c.BlackKingSide = false
		c.BlackQueenSide = false
	}
}

// RevokeRookSquare clears the flag of the wing whose rook starts on sq,
// if sq is one of colour's rook home squares.
func (c *CastlingRights) RevokeRookSquare(colour Colour, sq Square) {
	if sq.Row != colour.HomeRow() {
		return
	}
	switch {
	case sq.Col == BoardSize-1 && colour == White:
		c.WhiteKingSide = false
	case sq.Col == 0 && colour == White:
		c.WhiteQueenSide = false
	case sq.Col == BoardSize-1:
		c.BlackKingSide = false
	case sq.Col == 0:
		c.BlackQueenSide = false
	}
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.WhiteKingSide {
		sb.WriteByte('K')
	}
	if c.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if c.BlackKingSide {
		sb.WriteByte('k')
	}
	if c.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
