package board

import "fmt"

// Move is an ordered pair of squares. It carries no capture or promotion
// payload: captures are read off the board and promotion is always to a queen.
type Move struct {
	From Square
	To   Square
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the coordinate form of the move (e.g., "E2E4").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove parses a coordinate move string such as "E2E4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid move string %q: %w", s, ErrMalformedSquare)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	return NewMove(from, to), nil
}

// IsCapture returns true if the move captures a piece, including en passant.
func (m Move) IsCapture(pos *Position) bool {
	if pos.isEnPassantCapture(m) {
		return true
	}
	return !pos.IsEmpty(m.To)
}

// IsCastling returns true if the move is a king's two-square castling step.
func (m Move) IsCastling(pos *Position) bool {
	_, ok := pos.castleFor(m)
	return ok
}

// IsPromotion returns true if a pawn reaches the last rank with this move.
func (m Move) IsPromotion(pos *Position) bool {
	piece := pos.PieceAt(m.From)
	return piece.Type() == Pawn && m.To.RelativeRow(piece.Color()) == 7
}
