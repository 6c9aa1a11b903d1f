package board

import (
	"fmt"
	"math/bits"
)

// Bitboard is a set of squares packed into 64 bits.
// Bit i corresponds to Square{Row: i/8, Col: i%8}: bit 0 = A1, bit 7 = H1, bit 63 = H8.
type Bitboard uint64

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank8 Bitboard = 0xFF00000000000000
)

// Empty is the set with no squares.
const Empty Bitboard = 0

// SquareBB returns a bitboard with only the given square set.
// An invalid square yields the empty set.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	return 1 << uint(sq.Index())
}

// Has returns true if the square is a member. Invalid squares are never members.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// Set adds the square to the set.
func (b *Bitboard) Set(sq Square) {
	*b |= SquareBB(sq)
}

// Clear removes the square from the set.
func (b *Bitboard) Clear(sq Square) {
	*b &^= SquareBB(sq)
}

// PopCount returns the number of squares in the set.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the member with the lowest index, or NoSquare for the empty set.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return SquareFromIndex(bits.TrailingZeros64(uint64(b)))
}

// Squares returns the members in ascending index order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, SquareFromIndex(bits.TrailingZeros64(uint64(b))))
		b &= b - 1
	}
	return squares
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	s := ""
	for row := 7; row >= 0; row-- {
		s += fmt.Sprintf("%d ", row+1)
		for col := 0; col < 8; col++ {
			if b.Has(NewSquare(row, col)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  A B C D E F G H\n"
	return s
}
