package board

// Step offsets as (row, col) deltas.
var (
	knightOffsets = [8][2]int{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {-2, 1}, {-2, -1}}
	kingOffsets   = [8][2]int{{1, -1}, {1, 0}, {1, 1}, {0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {-1, 1}}

	rookDirections   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([][2]int{}, rookDirections...), bishopDirections...)
)

// pawnDirection returns the row step of a pawn push for the color.
func pawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// stepTargets returns the valid squares at the given offsets from sq
// that do not hold a piece of color c.
func (p *Position) stepTargets(sq Square, c Color, offsets [8][2]int) Bitboard {
	own := p.Occupied(c)
	var targets Bitboard
	for _, off := range offsets {
		to := sq.Offset(off[0], off[1])
		if to.IsValid() && !own.Has(to) {
			targets.Set(to)
		}
	}
	return targets
}

// rayTargets casts rays from sq along each direction. A ray stops before a
// piece of color c and stops on (and includes) a piece of the other color.
func (p *Position) rayTargets(sq Square, c Color, directions [][2]int) Bitboard {
	own := p.Occupied(c)
	occupied := p.AllOccupied()
	var targets Bitboard
	for _, dir := range directions {
		for to := sq.Offset(dir[0], dir[1]); to.IsValid(); to = to.Offset(dir[0], dir[1]) {
			if own.Has(to) {
				break
			}
			targets.Set(to)
			if occupied.Has(to) {
				break
			}
		}
	}
	return targets
}

// pieceTargets returns the destination squares of a non-pawn piece of type
// pt and color c standing on sq, castling excluded.
func (p *Position) pieceTargets(sq Square, pt PieceType, c Color) Bitboard {
	switch pt {
	case Knight:
		return p.stepTargets(sq, c, knightOffsets)
	case King:
		return p.stepTargets(sq, c, kingOffsets)
	case Bishop:
		return p.rayTargets(sq, c, bishopDirections)
	case Rook:
		return p.rayTargets(sq, c, rookDirections)
	case Queen:
		return p.rayTargets(sq, c, queenDirections)
	}
	return Empty
}

// PawnThreats returns every square diagonally ahead of a pawn of color c,
// whether or not it is occupied.
func (p *Position) PawnThreats(c Color) Bitboard {
	dir := pawnDirection(c)
	var threats Bitboard
	for _, from := range p.Pieces[c][Pawn].Squares() {
		threats.Set(from.Offset(dir, -1))
		threats.Set(from.Offset(dir, 1))
	}
	return threats
}

// AttackMap returns the squares threatened by color c: the destinations of
// its knight, bishop, rook and queen moves, its pawn threats, and the squares
// adjacent to its king.
func (p *Position) AttackMap(c Color) Bitboard {
	attacks := p.PawnThreats(c)
	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen, King} {
		for _, from := range p.Pieces[c][pt].Squares() {
			attacks |= p.pieceTargets(from, pt, c)
		}
	}
	return attacks
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackMap(byColor).Has(sq)
}

// InCheck returns true if the king of color c is attacked.
// A side without a king is never in check.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}
