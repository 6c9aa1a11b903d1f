package board

// castle describes one of the four castling moves.
type castle struct {
	right    CastlingRights
	color    Color
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	transit  Square   // the square the king crosses
	between  Bitboard // squares strictly between king and rook, must be empty
}

var castles = [4]castle{
	{WhiteKingSideCastle, White, E1, G1, H1, F1, F1, SquareBB(F1) | SquareBB(G1)},
	{WhiteQueenSideCastle, White, E1, C1, A1, D1, D1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1)},
	{BlackKingSideCastle, Black, E8, G8, H8, F8, F8, SquareBB(F8) | SquareBB(G8)},
	{BlackQueenSideCastle, Black, E8, C8, A8, D8, D8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8)},
}

// castleFor returns the castling move m performs, if any: the king of some
// color moving from its home square to one of its two castling squares.
func (p *Position) castleFor(m Move) (castle, bool) {
	for _, cs := range castles {
		if m.From == cs.kingFrom && m.To == cs.kingTo && p.Pieces[cs.color][King].Has(m.From) {
			return cs, true
		}
	}
	return castle{}, false
}

// castlingAvailable reports whether the castle is pseudo-legal: the right is
// held, king and rook are on their home squares and nothing stands between them.
// Attacks are not considered here.
func (p *Position) castlingAvailable(cs castle) bool {
	return p.CastlingRights&cs.right != 0 &&
		p.Pieces[cs.color][King].Has(cs.kingFrom) &&
		p.Pieces[cs.color][Rook].Has(cs.rookFrom) &&
		p.AllOccupied()&cs.between == 0
}

// updateCastlingRights drops rights lost by a move from one square to another:
// any king move, and any move from or onto a rook home square.
func (p *Position) updateCastlingRights(mover Piece, from, to Square) {
	for _, cs := range castles {
		if from == cs.rookFrom || to == cs.rookFrom {
			p.CastlingRights &^= cs.right
		}
	}
	if mover.Type() == King {
		if mover.Color() == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
}
