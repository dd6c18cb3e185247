// Package chess provides the core chess types: colours, pieces, squares,
// the board grid and moves.
package chess

import (
	"fmt"

	"github.com/lgbarn/negamax-chess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White and -1 for Black.
func (c Colour) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the grid row of the colour's back rank.
func (c Colour) HomeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// Kind represents a chess piece type.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Cell is the content of one board square: either Empty or a single piece.
// The zero value is Empty.
type Cell uint8

// Empty is the unoccupied cell.
const Empty Cell = 0

// Occupied returns the cell holding p.
func Occupied(p Piece) Cell {
	return Cell(uint8(p.Kind)<<1 | uint8(p.Colour))
}

// Cell returns the cell holding p.
func (p Piece) Cell() Cell {
	return Occupied(p)
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Piece returns the piece in the cell, or false if the cell is empty.
func (c Cell) Piece() (Piece, bool) {
	if c == Empty {
		return Piece{}, false
	}
	return Piece{Colour: Colour(c & 0x01), Kind: Kind(c >> 1)}, true
}

// Kind returns the kind of the piece in the cell, NoKind if empty.
func (c Cell) Kind() Kind {
	return Kind(c >> 1)
}

// Holds reports whether the cell contains a piece of the given colour.
func (c Cell) Holds(colour Colour) bool {
	return c != Empty && Colour(c&0x01) == colour
}

// String returns the FEN letter of the piece or "." for an empty cell.
func (c Cell) String() string {
	p, ok := c.Piece()
	if !ok {
		return "."
	}
	return string(p.Letter())
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate. Row 0 is rank 8 (Black's back rank) and
// row 7 is rank 1; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file letter ('a'-'h').
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + (BoardSize - 1 - s.Row))
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// Offset returns the square displaced by (dr, dc). The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// ParseSquare converts an algebraic square name ("e4") to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: BoardSize - 1 - int(rank-RankBase), Col: int(file - FileBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on a malformed name.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
