package board

import "fmt"

// Setup is a full game-position record: what an importer decodes from an
// external format (FEN, a database row, a UI editor) before building a Position.
type Setup struct {
	Placement  map[Square]Piece
	SideToMove Color

	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool

	// EnPassant is the square skipped by the last double pawn push, or NoSquare.
	EnPassant Square

	HalfMoveClock  int
	FullMoveNumber int // 0 is read as 1
}

// NewPositionFromSetup builds a Position from a record. Records that do not
// describe a playable position fail with an error wrapping ErrInvalidSetup.
func NewPositionFromSetup(s Setup) (*Position, error) {
	p := &Position{
		SideToMove:     s.SideToMove,
		EnPassant:      s.EnPassant,
		HalfMoveClock:  s.HalfMoveClock,
		FullMoveNumber: s.FullMoveNumber,
	}

	if s.SideToMove != White && s.SideToMove != Black {
		return nil, fmt.Errorf("%w: side to move %s", ErrInvalidSetup, s.SideToMove)
	}

	for sq, piece := range s.Placement {
		if !sq.IsValid() {
			return nil, fmt.Errorf("%w: square %+v off the board", ErrInvalidSetup, sq)
		}
		if piece >= NoPiece {
			return nil, fmt.Errorf("%w: no piece given for %s", ErrInvalidSetup, sq)
		}
		p.setPiece(piece, sq)
	}

	rights := []struct {
		set   bool
		right CastlingRights
	}{
		{s.WhiteKingSide, WhiteKingSideCastle},
		{s.WhiteQueenSide, WhiteQueenSideCastle},
		{s.BlackKingSide, BlackKingSideCastle},
		{s.BlackQueenSide, BlackQueenSideCastle},
	}
	for _, r := range rights {
		if r.set {
			p.CastlingRights |= r.right
		}
	}

	if err := p.validateCastlingRights(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	if err := p.validateEnPassant(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}

	if s.HalfMoveClock < 0 || s.FullMoveNumber < 0 {
		return nil, fmt.Errorf("%w: negative move counter", ErrInvalidSetup)
	}
	if p.FullMoveNumber == 0 {
		p.FullMoveNumber = 1
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}

	return p, nil
}

// Setup exports the position as a record.
func (p *Position) Setup() Setup {
	s := Setup{
		Placement:      make(map[Square]Piece),
		SideToMove:     p.SideToMove,
		WhiteKingSide:  p.CastlingRights&WhiteKingSideCastle != 0,
		WhiteQueenSide: p.CastlingRights&WhiteQueenSideCastle != 0,
		BlackKingSide:  p.CastlingRights&BlackKingSideCastle != 0,
		BlackQueenSide: p.CastlingRights&BlackQueenSideCastle != 0,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
	}
	for _, sq := range p.AllOccupied().Squares() {
		s.Placement[sq] = p.PieceAt(sq)
	}
	return s
}

// validateCastlingRights requires king and rook on their home squares for every right held.
func (p *Position) validateCastlingRights() error {
	for _, cs := range castles {
		if p.CastlingRights&cs.right == 0 {
			continue
		}
		if !p.Pieces[cs.color][King].Has(cs.kingFrom) || !p.Pieces[cs.color][Rook].Has(cs.rookFrom) {
			return fmt.Errorf("castling right %s without king on %s and rook on %s",
				cs.right, cs.kingFrom, cs.rookFrom)
		}
	}
	return nil
}

// validateEnPassant requires the target to be an empty square just behind a
// pawn of the side not to move that could have double-stepped.
func (p *Position) validateEnPassant() error {
	if p.EnPassant == NoSquare {
		return nil
	}
	ep := p.EnPassant
	them := p.SideToMove.Other()
	if !ep.IsValid() || ep.RelativeRow(them) != 2 {
		return fmt.Errorf("en passant square %s on the wrong rank", ep)
	}
	if !p.IsEmpty(ep) || !p.IsEmpty(ep.Offset(-pawnDirection(them), 0)) {
		return fmt.Errorf("en passant square %s is not empty", ep)
	}
	if !p.Pieces[them][Pawn].Has(ep.Offset(pawnDirection(them), 0)) {
		return fmt.Errorf("no %s pawn in front of en passant square %s", them, ep)
	}
	return nil
}
