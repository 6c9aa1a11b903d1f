// Package board implements the rules of chess on a bitboard representation:
// move generation, legality checking, move application and game-end detection.
package board

import "fmt"

// Square is a (row, column) coordinate on the board.
// Row 0 is the first rank, column 0 is the A file: A1 = {0, 0}, H8 = {7, 7}.
// Coordinates outside [0,7] are representable but never members of a Bitboard.
type Square struct {
	Row int
	Col int
}

// NoSquare marks the absence of a square (e.g. no en passant target).
var NoSquare = Square{Row: -1, Col: -1}

// Named squares used by the castling rules.
var (
	A1 = Square{0, 0}
	B1 = Square{0, 1}
	C1 = Square{0, 2}
	D1 = Square{0, 3}
	E1 = Square{0, 4}
	F1 = Square{0, 5}
	G1 = Square{0, 6}
	H1 = Square{0, 7}
	A8 = Square{7, 0}
	B8 = Square{7, 1}
	C8 = Square{7, 2}
	D8 = Square{7, 3}
	E8 = Square{7, 4}
	F8 = Square{7, 5}
	G8 = Square{7, 6}
	H8 = Square{7, 7}
)

const files = "ABCDEFGH"

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

// SquareFromIndex converts a linear index (row*8+col) into a square.
func SquareFromIndex(i int) Square {
	return Square{Row: i / 8, Col: i % 8}
}

// IsValid returns true if both row and column are on the board.
func (sq Square) IsValid() bool {
	return sq.Row >= 0 && sq.Row <= 7 && sq.Col >= 0 && sq.Col <= 7
}

// Index returns the linear index row*8+col.
func (sq Square) Index() int {
	return sq.Row*8 + sq.Col
}

// Offset returns the square dRow rows and dCol columns away.
// The result may be invalid; callers check IsValid.
func (sq Square) Offset(dRow, dCol int) Square {
	return Square{Row: sq.Row + dRow, Col: sq.Col + dCol}
}

// RelativeRow returns the row from a given color's perspective.
// For White, row 0 is the 1st rank; for Black, row 0 is the 8th rank.
func (sq Square) RelativeRow(c Color) int {
	if c == White {
		return sq.Row
	}
	return 7 - sq.Row
}

// String returns the notation for the square (e.g., "E4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", files[sq.Col], '1'+sq.Row)
}

// ParseSquare parses notation (e.g., "E4") into a Square.
// Only an uppercase file letter A-H followed by a rank digit 1-8 is accepted.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedSquare, s)
	}

	col := int(s[0]) - 'A'
	row := int(s[1]) - '1'

	if col < 0 || col > 7 || row < 0 || row > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedSquare, s)
	}

	return NewSquare(row, col), nil
}
