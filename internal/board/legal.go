package board

// GenerateLegalMoves generates all legal moves for the side to move.
func (p *Position) GenerateLegalMoves() []Move {
	var legal []Move
	for _, m := range p.GeneratePseudoLegalMoves() {
		if p.isLegalPseudo(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on sq.
// Pieces of the side not to move have none.
func (p *Position) LegalMovesFrom(sq Square) []Move {
	if p.ColorAt(sq) != p.SideToMove {
		return nil
	}
	var legal []Move
	for _, m := range p.movesFrom(sq) {
		if p.isLegalPseudo(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal returns true if m is a pseudo-legal move of the side to move that
// does not leave the mover's king attacked.
func (p *Position) IsLegal(m Move) bool {
	if p.ColorAt(m.From) != p.SideToMove {
		return false
	}
	for _, candidate := range p.movesFrom(m.From) {
		if candidate == m {
			return p.isLegalPseudo(m)
		}
	}
	return false
}

// isLegalPseudo checks a pseudo-legal move by simulating it on a copy.
// Castling is rejected when the king starts in check or crosses an attacked
// square; the destination is covered by the simulation.
func (p *Position) isLegalPseudo(m Move) bool {
	us := p.SideToMove
	them := us.Other()

	if cs, ok := p.castleFor(m); ok {
		attacked := p.AttackMap(them)
		if attacked.Has(cs.kingFrom) || attacked.Has(cs.transit) {
			return false
		}
	}

	clone := p.Copy()
	clone.apply(m)
	return !clone.InCheck(us)
}

// HasLegalMoves returns true if the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.GeneratePseudoLegalMoves() {
		if p.isLegalPseudo(m) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if c is to move, in check, and has no legal moves.
func (p *Position) IsCheckmate(c Color) bool {
	return p.SideToMove == c && p.InCheck(c) && !p.HasLegalMoves()
}

// IsStalemate returns true if c is to move, not in check, and has no legal moves.
func (p *Position) IsStalemate(c Color) bool {
	return p.SideToMove == c && !p.InCheck(c) && !p.HasLegalMoves()
}
