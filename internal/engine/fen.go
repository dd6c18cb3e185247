package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenKinds maps lower-case FEN letters to piece kinds.
var fenKinds = map[byte]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// NewGameStateFromFEN creates a game from a FEN string. The halfmove clock
// is accepted but not tracked. Positions without exactly one king per colour,
// or with pawns on the back ranks, are rejected with ErrInvalidFEN.
func NewGameStateFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "fields",
			Expected: "4 to 6 fields",
			Got:      strconv.Itoa(len(parts)),
		}
	}

	gs := &GameState{}
	if err := parsePlacement(&gs.board, parts[0]); err != nil {
		return nil, fenError(fen, "placement", err)
	}

	toMove, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, fenError(fen, "side to move", err)
	}

	rights, err := parseCastling(parts[2])
	if err != nil {
		return nil, fenError(fen, "castling", err)
	}

	ep, err := parseEnPassant(parts[3], toMove)
	if err != nil {
		return nil, fenError(fen, "en passant", err)
	}

	fullMove := 1
	if len(parts) == 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, fenError(fen, "fullmove number", fmt.Errorf("bad number %q", parts[5]))
		}
		fullMove = n
	}
	if len(parts) >= 5 {
		if n, err := strconv.Atoi(parts[4]); err != nil || n < 0 {
			return nil, fenError(fen, "halfmove clock", fmt.Errorf("bad number %q", parts[4]))
		}
	}

	gs.init(toMove, rights, ep)
	gs.startMove = fullMove

	if gs.opponentInCheck() {
		return nil, fenError(fen, "side to move", fmt.Errorf("%s king can be captured", toMove.Opposite()))
	}
	return gs, nil
}

// opponentInCheck reports whether the side that just moved is in check.
func (gs *GameState) opponentInCheck() bool {
	gs.sideToMove = gs.sideToMove.Opposite()
	defer func() { gs.sideToMove = gs.sideToMove.Opposite() }()
	return gs.InCheck()
}

// fenError wraps a field-level failure as a ParseError on ErrInvalidFEN.
func fenError(fen, field string, cause error) error {
	return &errors.ParseError{
		Err:   errors.Wrap(errors.ErrInvalidFEN, cause.Error()),
		Input: fen,
		Field: field,
	}
}

// parsePlacement fills b from the piece placement field.
func parsePlacement(b *chess.Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks", len(ranks))
	}

	var kings [2]int
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			lower, colour := c, chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			} else {
				lower = c + 'a' - 'A'
			}
			kind, ok := fenKinds[lower]
			if !ok {
				return fmt.Errorf("bad piece %q", c)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %c overflows", chess.Sq(row, 0).Rank())
			}
			if kind == chess.Pawn && (row == 0 || row == chess.BoardSize-1) {
				return fmt.Errorf("pawn on %s", chess.Sq(row, col))
			}
			if kind == chess.King {
				kings[colour]++
			}
			b.Put(chess.Sq(row, col), chess.Piece{Colour: colour, Kind: kind})
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %c has %d files", chess.Sq(row, 0).Rank(), col)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need one king per side, have %d white and %d black",
			kings[chess.White], kings[chess.Black])
	}
	return nil
}

func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("bad side %q", field)
}

func parseCastling(field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights.WhiteKingSide = true
		case 'Q':
			rights.WhiteQueenSide = true
		case 'k':
			rights.BlackKingSide = true
		case 'q':
			rights.BlackQueenSide = true
		default:
			return rights, fmt.Errorf("bad flag %q", field[i])
		}
	}
	return rights, nil
}

// parseEnPassant accepts "-" or a target on the rank a double push by the
// side not to move would have crossed.
func parseEnPassant(field string, toMove chess.Colour) (epTarget, error) {
	if field == "-" {
		return epTarget{}, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return epTarget{}, err
	}
	want := 2
	if toMove == chess.Black {
		want = 5
	}
	if sq.Row != want {
		return epTarget{}, fmt.Errorf("target %s on wrong rank", sq)
	}
	return epTarget{sq: sq, set: true}, nil
}

// FEN returns the position in Forsyth-Edwards Notation. The halfmove clock
// is always written as 0.
func (gs *GameState) FEN() string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := gs.board.Squares[row][col].Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	if gs.sideToMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(gs.castling.String())
	sb.WriteByte(' ')
	if gs.enPassant.set {
		sb.WriteString(gs.enPassant.sq.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " 0 %d", gs.FullMoveNumber())

	return sb.String()
}

// FullMoveNumber returns the current move number, starting at the number the
// game was created with and incremented after each Black move.
func (gs *GameState) FullMoveNumber() int {
	plies := len(gs.history)
	if gs.startSide() == chess.Black {
		plies++
	}
	return gs.startMove + plies/2
}

// startSide returns the side that was to move before any recorded move.
func (gs *GameState) startSide() chess.Colour {
	if len(gs.history)%2 == 0 {
		return gs.sideToMove
	}
	return gs.sideToMove.Opposite()
}
