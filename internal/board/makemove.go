package board

import "fmt"

// MakeMove applies a legal move for the side to move. An illegal move
// returns a *MoveError wrapping ErrIllegalMove and leaves the position unchanged.
func (p *Position) MakeMove(m Move) error {
	if !p.IsLegal(m) {
		return &MoveError{Move: m, Side: p.SideToMove, Err: ErrIllegalMove}
	}

	p.apply(m)

	if DebugMoveValidation {
		p.logInvariants(m)
	}
	return nil
}

// MakeMoveString parses two squares in notation (e.g. "E2", "E4") and applies the move.
func (p *Position) MakeMoveString(from, to string) error {
	fromSq, err := ParseSquare(from)
	if err != nil {
		return fmt.Errorf("from square: %w", err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return fmt.Errorf("to square: %w", err)
	}
	return p.MakeMove(NewMove(fromSq, toSq))
}

// apply performs a move without any legality check.
func (p *Position) apply(m Move) {
	from, to := m.From, m.To
	piece := p.PieceAt(from)

	// No piece at from square, leave the position unmodified
	if piece == NoPiece {
		return
	}

	us := piece.Color()
	pt := piece.Type()
	enPassant := p.isEnPassantCapture(m)
	cs, castling := p.castleFor(m)

	// Handle captures
	captured := p.removePiece(to)
	if enPassant {
		// The captured pawn stands beside the mover, on the target's file
		captured = p.removePiece(NewSquare(from.Row, to.Col))
	}

	// Move the piece, promoting pawns that reach the last rank
	p.removePiece(from)
	if pt == Pawn && to.RelativeRow(us) == 7 {
		p.setPiece(NewPiece(Queen, us), to)
	} else {
		p.setPiece(piece, to)
	}

	// Handle castling
	if castling {
		p.removePiece(cs.rookFrom)
		p.setPiece(NewPiece(Rook, us), cs.rookTo)
	}

	p.updateCastlingRights(piece, from, to)

	// Set en passant square for double pawn push
	p.EnPassant = NoSquare
	if pt == Pawn && abs(to.Row-from.Row) == 2 {
		p.EnPassant = NewSquare((from.Row+to.Row)/2, from.Col)
	}

	// Update half-move clock
	if pt == Pawn || captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	// Update full-move number
	if p.SideToMove == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = p.SideToMove.Other()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
