// Package eval provides static position scoring.
package eval

import "github.com/lgbarn/negamax-chess-go/internal/chess"

// Weights holds every tunable of the evaluation.
type Weights struct {
	// Material value per piece kind, indexed by chess.Kind.
	Material [chess.NumKinds]int

	// Piece-square tables per piece kind, from White's point of view.
	PieceSquare [chess.NumKinds]Table

	// Penalty for a king that has left its home rank.
	KingSafetyPenalty int

	// Penalty per extra pawn on a file.
	DoubledPawnPenalty int

	// Multiplier of the knight centralisation bonus. Zero disables it.
	KnightCentrality int
}

// Evaluator scores positions. It is stateless apart from its weights and
// safe for concurrent use.
type Evaluator struct {
	w Weights
}

// New creates an evaluator with the given weights.
func New(w Weights) *Evaluator {
	return &Evaluator{w: w}
}

// NewDefault creates an evaluator with DefaultWeights.
func NewDefault() *Evaluator {
	return New(DefaultWeights())
}

// PieceValue returns the material value of a piece kind.
func (e *Evaluator) PieceValue(k chess.Kind) int {
	return e.w.Material[k]
}

// Evaluate returns the static score of the board. Positive values favour White.
// The score is the sum of material, piece-square, king-safety, pawn-structure
// and mobility terms. The board is not modified.
func (e *Evaluator) Evaluate(b *chess.Board) int {
	return e.Material(b) + e.KingSafety(b) + e.PawnStructure(b) + e.Mobility(b)
}

// Material returns material plus piece-square values.
func (e *Evaluator) Material(b *chess.Board) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := b.Squares[row][col].Piece()
			if !ok {
				continue
			}
			if p.Colour == chess.White {
				score += e.w.Material[p.Kind] + e.w.PieceSquare[p.Kind][row][col]
			} else {
				score -= e.w.Material[p.Kind] + e.w.PieceSquare[p.Kind][chess.BoardSize-1-row][col]
			}
		}
	}
	return score
}

// KingSafety penalises a king that has left its back rank. It ignores
// attackers entirely.
func (e *Evaluator) KingSafety(b *chess.Board) int {
	score := 0
	if sq, ok := b.FindKing(chess.White); ok && sq.Row != chess.White.HomeRow() {
		score -= e.w.KingSafetyPenalty
	}
	if sq, ok := b.FindKing(chess.Black); ok && sq.Row != chess.Black.HomeRow() {
		score += e.w.KingSafetyPenalty
	}
	return score
}

// PawnStructure penalises doubled pawns.
func (e *Evaluator) PawnStructure(b *chess.Board) int {
	var white, black [chess.BoardSize]int
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := b.Squares[row][col].Piece()
			if !ok || p.Kind != chess.Pawn {
				continue
			}
			if p.Colour == chess.White {
				white[col]++
			} else {
				black[col]++
			}
		}
	}

	score := 0
	for file := 0; file < chess.BoardSize; file++ {
		if white[file] > 1 {
			score -= e.w.DoubledPawnPenalty * (white[file] - 1)
		}
		if black[file] > 1 {
			score += e.w.DoubledPawnPenalty * (black[file] - 1)
		}
	}
	return score
}

// Mobility rewards knights near the centre of the board. Only knights are
// scored.
func (e *Evaluator) Mobility(b *chess.Board) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := b.Squares[row][col].Piece()
			if !ok || p.Kind != chess.Knight {
				continue
			}
			bonus := knightCentrality(row, col) * e.w.KnightCentrality
			if p.Colour == chess.White {
				score += bonus
			} else {
				score -= bonus
			}
		}
	}
	return score
}

// knightCentrality returns 2*max(0, 7-d) where d is the Manhattan distance
// from the square's centre to the board's centre (3.5, 3.5). Distances are
// doubled so the result stays integral.
func knightCentrality(row, col int) int {
	d2 := abs(2*row-7) + abs(2*col-7)
	if d2 >= 14 {
		return 0
	}
	return 14 - d2
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
