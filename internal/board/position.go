package board

import (
	"fmt"
	"log"
)

// DebugMoveValidation enables invariant checks (and logging of violations)
// after every applied move.
var DebugMoveValidation = false

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position.
// All state is flat values, so a plain assignment is a full clone.
type Position struct {
	// Piece sets: [Color][PieceType]. A square is in at most one of them.
	Pieces [2][6]Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // Square skipped by the last double pawn push, NoSquare if none
	HalfMoveClock  int    // Moves since last pawn move or capture (for 50-move rule)
	FullMoveNumber int    // Full move counter, starts at 1
}

// Key identifies the rule-relevant part of a position (everything but the
// move counters). It is comparable and used to verify cache hits.
type Key struct {
	Pieces         [2][6]Bitboard
	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition creates the starting position.
func NewPosition() *Position {
	p := &Position{
		SideToMove:     White,
		CastlingRights: AllCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	for col := 0; col < 8; col++ {
		p.Pieces[White][backRank[col]].Set(NewSquare(0, col))
		p.Pieces[White][Pawn].Set(NewSquare(1, col))
		p.Pieces[Black][Pawn].Set(NewSquare(6, col))
		p.Pieces[Black][backRank[col]].Set(NewSquare(7, col))
	}
	return p
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// Key returns the comparable rule state of the position.
func (p *Position) Key() Key {
	return Key{
		Pieces:         p.Pieces,
		SideToMove:     p.SideToMove,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
	}
}

// Occupied returns all squares holding a piece of the given color.
func (p *Position) Occupied(c Color) Bitboard {
	var bb Bitboard
	for pt := Pawn; pt <= King; pt++ {
		bb |= p.Pieces[c][pt]
	}
	return bb
}

// AllOccupied returns all squares holding a piece.
func (p *Position) AllOccupied() Bitboard {
	return p.Occupied(White) | p.Occupied(Black)
}

// EmptySquares returns all squares holding no piece.
func (p *Position) EmptySquares() Bitboard {
	return ^p.AllOccupied()
}

// PieceAt returns the piece at the given square, or NoPiece if empty or off the board.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if bb == 0 {
		return NoPiece
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt]&bb != 0 {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// PieceTypeAt returns the kind of piece at the square, or NoPieceType.
func (p *Position) PieceTypeAt(sq Square) PieceType {
	return p.PieceAt(sq).Type()
}

// ColorAt returns the color of the piece at the square, or NoColor.
func (p *Position) ColorAt(sq Square) Color {
	bb := SquareBB(sq)
	switch {
	case p.Occupied(White)&bb != 0:
		return White
	case p.Occupied(Black)&bb != 0:
		return Black
	default:
		return NoColor
	}
}

// IsEmpty returns true if no piece stands on the square.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.AllOccupied().Has(sq)
}

// KingSquare returns the square of the given color's king, or NoSquare.
func (p *Position) KingSquare(c Color) Square {
	return p.Pieces[c][King].LSB()
}

// setPiece places a piece on a square. The square must be empty.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	p.Pieces[piece.Color()][piece.Type()].Set(sq)
}

// removePiece clears the square from all twelve sets and returns what stood there.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	bb := SquareBB(sq)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p.Pieces[c][pt] &^= bb
		}
	}
	return piece
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for row := 7; row >= 0; row-- {
		s += fmt.Sprintf("%d  ", row+1)
		for col := 0; col < 8; col++ {
			piece := p.PieceAt(NewSquare(row, col))
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   A B C D E F G H\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	return s
}

// checkInvariants verifies piece-set exclusivity and king counts.
func (p *Position) checkInvariants() error {
	var union Bitboard
	total := 0
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			union |= p.Pieces[c][pt]
			total += p.Pieces[c][pt].PopCount()
		}
	}
	if total != union.PopCount() {
		return fmt.Errorf("%d pieces on %d squares: piece sets overlap", total, union.PopCount())
	}
	if total > 32 {
		return fmt.Errorf("%d pieces on the board", total)
	}
	if p.Pieces[White][King].PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.Pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	return nil
}

// Validate checks if the position is valid.
func (p *Position) Validate() error {
	if err := p.checkInvariants(); err != nil {
		return err
	}

	if (p.Pieces[White][Pawn]|p.Pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}

	// The side that just moved cannot be in check
	if p.InCheck(p.SideToMove.Other()) {
		return fmt.Errorf("%s is in check but not to move", p.SideToMove.Other())
	}

	return nil
}

func (p *Position) logInvariants(m Move) {
	if err := p.checkInvariants(); err != nil {
		log.Printf("MAKEMOVE INVARIANT: %v after move=%v hash=%x", err, m, p.Hash())
	}
}

// IsInsufficientMaterial returns true if neither side can checkmate.
func (p *Position) IsInsufficientMaterial() bool {
	// If there are any pawns, rooks, or queens, sufficient material
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 ||
		p.Pieces[White][Rook]|p.Pieces[Black][Rook] != 0 ||
		p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	wMinors := p.Pieces[White][Knight].PopCount() + p.Pieces[White][Bishop].PopCount()
	bMinors := p.Pieces[Black][Knight].PopCount() + p.Pieces[Black][Bishop].PopCount()

	// K vs K, K+minor vs K
	return wMinors+bMinors <= 1
}

// IsFiftyMoveDraw returns true once 100 half-moves passed without a pawn move or capture.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.HalfMoveClock >= 100
}
