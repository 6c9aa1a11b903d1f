package board

// PawnMoves generates the pseudo-legal pawn moves of color c.
func (p *Position) PawnMoves(c Color) []Move {
	var moves []Move
	for _, from := range p.Pieces[c][Pawn].Squares() {
		moves = p.appendPawnMoves(moves, from, c)
	}
	return moves
}

// KnightMoves generates the pseudo-legal knight moves of color c.
func (p *Position) KnightMoves(c Color) []Move {
	return p.pieceMoves(Knight, c)
}

// BishopMoves generates the pseudo-legal bishop moves of color c.
func (p *Position) BishopMoves(c Color) []Move {
	return p.pieceMoves(Bishop, c)
}

// RookMoves generates the pseudo-legal rook moves of color c.
func (p *Position) RookMoves(c Color) []Move {
	return p.pieceMoves(Rook, c)
}

// QueenMoves generates the pseudo-legal queen moves of color c.
func (p *Position) QueenMoves(c Color) []Move {
	return p.pieceMoves(Queen, c)
}

// KingMoves generates the pseudo-legal king moves of color c, castling included.
// Castling is offered without regard to attacked squares; IsLegal checks those.
func (p *Position) KingMoves(c Color) []Move {
	moves := p.pieceMoves(King, c)
	for _, cs := range castles {
		if cs.color == c && p.castlingAvailable(cs) {
			moves = append(moves, NewMove(cs.kingFrom, cs.kingTo))
		}
	}
	return moves
}

// PseudoLegalMoves generates the pseudo-legal moves of one piece type and color.
func (p *Position) PseudoLegalMoves(pt PieceType, c Color) []Move {
	switch pt {
	case Pawn:
		return p.PawnMoves(c)
	case Knight:
		return p.KnightMoves(c)
	case Bishop:
		return p.BishopMoves(c)
	case Rook:
		return p.RookMoves(c)
	case Queen:
		return p.QueenMoves(c)
	case King:
		return p.KingMoves(c)
	}
	return nil
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves (may leave king in check).
func (p *Position) GeneratePseudoLegalMoves() []Move {
	us := p.SideToMove
	var moves []Move
	for pt := Pawn; pt <= King; pt++ {
		moves = append(moves, p.PseudoLegalMoves(pt, us)...)
	}
	return moves
}

// pieceMoves turns the target sets of every piece of type pt into moves.
func (p *Position) pieceMoves(pt PieceType, c Color) []Move {
	var moves []Move
	for _, from := range p.Pieces[c][pt].Squares() {
		for _, to := range p.pieceTargets(from, pt, c).Squares() {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

// appendPawnMoves adds the pushes, captures and en passant captures of the pawn on from.
// Moves onto the last rank are ordinary moves; the pawn is promoted when applied.
func (p *Position) appendPawnMoves(moves []Move, from Square, c Color) []Move {
	dir := pawnDirection(c)
	enemies := p.Occupied(c.Other())

	// Pushes
	one := from.Offset(dir, 0)
	if one.IsValid() && p.IsEmpty(one) {
		moves = append(moves, NewMove(from, one))
		two := from.Offset(2*dir, 0)
		if from.RelativeRow(c) == 1 && p.IsEmpty(two) {
			moves = append(moves, NewMove(from, two))
		}
	}

	// Captures
	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.IsValid() {
			continue
		}
		if enemies.Has(to) || (to == p.EnPassant && from.RelativeRow(c) == 4) {
			moves = append(moves, NewMove(from, to))
		}
	}

	return moves
}

// movesFrom generates the pseudo-legal moves of the piece on sq.
func (p *Position) movesFrom(sq Square) []Move {
	piece := p.PieceAt(sq)
	c, pt := piece.Color(), piece.Type()
	switch pt {
	case NoPieceType:
		return nil
	case Pawn:
		return p.appendPawnMoves(nil, sq, c)
	}

	var moves []Move
	for _, to := range p.pieceTargets(sq, pt, c).Squares() {
		moves = append(moves, NewMove(sq, to))
	}
	if pt == King {
		for _, cs := range castles {
			if cs.color == c && cs.kingFrom == sq && p.castlingAvailable(cs) {
				moves = append(moves, NewMove(cs.kingFrom, cs.kingTo))
			}
		}
	}
	return moves
}

// isEnPassantCapture returns true if m is a pawn moving diagonally onto the
// en passant target square.
func (p *Position) isEnPassantCapture(m Move) bool {
	return p.EnPassant != NoSquare &&
		m.To == p.EnPassant &&
		m.From.Col != m.To.Col &&
		p.PieceAt(m.From).Type() == Pawn
}
