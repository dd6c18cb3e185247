// Package hashing provides position hashing and the transposition table
// used by the search.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
)

// zobristSeed fixes the key set so hashes are stable across runs.
const zobristSeed = 0x5eed_c0de

var (
	pieceKeys     [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for kind := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// Position is the hashed view of a game state.
type Position struct {
	Board        *chess.Board
	ToMove       chess.Colour
	Castling     chess.CastlingRights
	EnPassant    chess.Square
	HasEnPassant bool
}

// ZobristHash returns the Zobrist hash of the position. Distinct positions
// may collide; callers using it as a cache key accept that risk.
func ZobristHash(p Position) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := p.Board.Squares[row][col].Piece()
			if !ok {
				continue
			}
			h ^= pieceKeys[piece.Colour][piece.Kind][row*chess.BoardSize+col]
		}
	}
	if p.ToMove == chess.Black {
		h ^= blackToMove
	}
	if p.Castling.WhiteKingSide {
		h ^= castlingKeys[0]
	}
	if p.Castling.WhiteQueenSide {
		h ^= castlingKeys[1]
	}
	if p.Castling.BlackKingSide {
		h ^= castlingKeys[2]
	}
	if p.Castling.BlackQueenSide {
		h ^= castlingKeys[3]
	}
	if p.HasEnPassant {
		h ^= enPassantKeys[p.EnPassant.Col]
	}
	return h
}
