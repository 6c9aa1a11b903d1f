package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeMoveIllegal(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{"wrong side", mv("E7", "E5")},
		{"empty square", mv("E4", "E5")},
		{"not a pawn move", mv("E2", "E5")},
		{"onto own piece", mv("D1", "D2")},
		{"off board", NewMove(sq("E2"), NewSquare(8, 4))},
		{"castle through pieces", mv("E1", "G1")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := NewPosition()
			before := *pos

			err := pos.MakeMove(tc.move)
			if !errors.Is(err, ErrIllegalMove) {
				t.Fatalf("MakeMove(%v) error = %v, want ErrIllegalMove", tc.move, err)
			}
			var moveErr *MoveError
			if !errors.As(err, &moveErr) || moveErr.Move != tc.move || moveErr.Side != White {
				t.Errorf("MakeMove(%v) error = %#v, want *MoveError for this move", tc.move, err)
			}
			if diff := cmp.Diff(before, *pos); diff != "" {
				t.Errorf("rejected move changed the position (-before +after):\n%s", diff)
			}
		})
	}
}

func TestMakeMoveIntoCheckRejected(t *testing.T) {
	pos := positionFromFEN(t, "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1")

	if err := pos.MakeMove(mv("E1", "E2")); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("king stepping into the rook's rank: error = %v, want ErrIllegalMove", err)
	}
	if err := pos.MakeMove(mv("E1", "D2")); err != nil {
		t.Errorf("king capturing the undefended rook: %v", err)
	}
}

func TestMakeMoveString(t *testing.T) {
	pos := NewPosition()

	if err := pos.MakeMoveString("E2", "E4"); err != nil {
		t.Fatalf("MakeMoveString(E2, E4): %v", err)
	}
	if pos.PieceAt(sq("E4")) != WhitePawn || pos.SideToMove != Black {
		t.Errorf("E2E4 not applied:\n%s", pos)
	}

	if err := pos.MakeMoveString("Z7", "E5"); !errors.Is(err, ErrMalformedSquare) {
		t.Errorf("MakeMoveString(Z7, E5) error = %v, want ErrMalformedSquare", err)
	}
	if err := pos.MakeMoveString("E7", "E9"); !errors.Is(err, ErrMalformedSquare) {
		t.Errorf("MakeMoveString(E7, E9) error = %v, want ErrMalformedSquare", err)
	}
	if err := pos.MakeMoveString("E7", "E4"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("MakeMoveString(E7, E4) error = %v, want ErrIllegalMove", err)
	}
}

func TestMakeMoveCapture(t *testing.T) {
	pos := NewPosition()
	play(t, pos, "E2E4", "D7D5", "E4D5")

	if pos.PieceAt(sq("D5")) != WhitePawn {
		t.Errorf("D5 = %v, want white pawn", pos.PieceAt(sq("D5")))
	}
	if pos.Pieces[Black][Pawn].PopCount() != 7 {
		t.Errorf("black pawns = %d, want 7", pos.Pieces[Black][Pawn].PopCount())
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 2 {
		t.Errorf("counters = %d/%d, want 0/2", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}

func TestEnPassant(t *testing.T) {
	pos := NewPosition()
	play(t, pos, "E2E4", "A7A6", "E4E5", "D7D5")

	if pos.EnPassant != sq("D6") {
		t.Fatalf("EnPassant = %v after D7D5, want D6", pos.EnPassant)
	}

	capture := mv("E5", "D6")
	if !containsMove(pos.LegalMovesFrom(sq("E5")), capture) {
		t.Fatalf("en passant capture missing: %v", moveStrings(pos.LegalMovesFrom(sq("E5"))))
	}
	if !capture.IsCapture(pos) {
		t.Error("en passant should count as a capture")
	}

	play(t, pos, "E5D6")

	if pos.PieceAt(sq("D6")) != WhitePawn {
		t.Errorf("D6 = %v, want white pawn", pos.PieceAt(sq("D6")))
	}
	if pos.PieceAt(sq("D5")) != NoPiece {
		t.Errorf("D5 = %v, the double-stepped pawn should be gone", pos.PieceAt(sq("D5")))
	}
	if pos.Pieces[Black][Pawn].PopCount() != 7 {
		t.Errorf("black pawns = %d, want 7", pos.Pieces[Black][Pawn].PopCount())
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("EnPassant = %v after the capture, want none", pos.EnPassant)
	}
}

func TestEnPassantExpires(t *testing.T) {
	pos := NewPosition()
	play(t, pos, "E2E4", "A7A6", "E4E5", "D7D5", "B1C3", "A6A5")

	if pos.EnPassant != NoSquare {
		t.Fatalf("EnPassant = %v, want none one turn later", pos.EnPassant)
	}
	if containsMove(pos.GenerateLegalMoves(), mv("E5", "D6")) {
		t.Error("en passant offered after the opportunity passed")
	}
}

func TestEnPassantBlack(t *testing.T) {
	pos := positionFromFEN(t, "4k3/8/8/8/5p2/8/4P3/4K3 w - - 0 1")
	play(t, pos, "E2E4")

	if pos.EnPassant != sq("E3") {
		t.Fatalf("EnPassant = %v, want E3", pos.EnPassant)
	}
	play(t, pos, "F4E3")

	if pos.PieceAt(sq("E4")) != NoPiece || pos.PieceAt(sq("E3")) != BlackPawn {
		t.Errorf("black en passant not applied:\n%s", pos)
	}
}

func TestPromotion(t *testing.T) {
	pos := positionFromFEN(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	for _, m := range []Move{mv("A7", "A8"), mv("A7", "B8")} {
		t.Run(m.String(), func(t *testing.T) {
			p := pos.Copy()
			if !m.IsPromotion(p) {
				t.Errorf("%v should be a promotion", m)
			}
			play(t, p, m.String())

			if p.PieceAt(m.To) != WhiteQueen {
				t.Errorf("%v = %v, want white queen", m.To, p.PieceAt(m.To))
			}
			if p.Pieces[White][Pawn] != Empty {
				t.Errorf("pawn set still holds %v", p.Pieces[White][Pawn].Squares())
			}
			if p.Pieces[White][Queen].PopCount() != 1 {
				t.Errorf("white queens = %d, want 1", p.Pieces[White][Queen].PopCount())
			}
		})
	}
}

func TestCastlingMovesRook(t *testing.T) {
	tests := []struct {
		fen      string
		move     Move
		king     string
		rook     string
		emptied  string
		rightsOK CastlingRights
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mv("E1", "G1"), "G1", "F1", "H1", BlackKingSideCastle | BlackQueenSideCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mv("E1", "C1"), "C1", "D1", "A1", BlackKingSideCastle | BlackQueenSideCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mv("E8", "G8"), "G8", "F8", "H8", WhiteKingSideCastle | WhiteQueenSideCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mv("E8", "C8"), "C8", "D8", "A8", WhiteKingSideCastle | WhiteQueenSideCastle},
	}

	for _, tc := range tests {
		t.Run(tc.move.String(), func(t *testing.T) {
			pos := positionFromFEN(t, tc.fen)
			us := pos.SideToMove
			if !tc.move.IsCastling(pos) {
				t.Errorf("%v should be castling", tc.move)
			}
			play(t, pos, tc.move.String())

			if pos.PieceAt(sq(tc.king)) != NewPiece(King, us) {
				t.Errorf("king not on %s:\n%s", tc.king, pos)
			}
			if pos.PieceAt(sq(tc.rook)) != NewPiece(Rook, us) {
				t.Errorf("rook not on %s:\n%s", tc.rook, pos)
			}
			if pos.PieceAt(sq(tc.emptied)) != NoPiece {
				t.Errorf("%s not emptied:\n%s", tc.emptied, pos)
			}
			if pos.CastlingRights != tc.rightsOK {
				t.Errorf("castling rights = %s, want %s", pos.CastlingRights, tc.rightsOK)
			}
		})
	}
}

func TestRookCaptureRemovesCastlingRight(t *testing.T) {
	pos := positionFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, pos, "A1A8")

	if pos.CastlingRights != WhiteKingSideCastle|BlackKingSideCastle {
		t.Errorf("castling rights = %s, want Kk", pos.CastlingRights)
	}
	if containsMove(pos.KingMoves(Black), mv("E8", "C8")) {
		t.Error("black queenside castle offered after its rook was captured")
	}
}

func TestMoveCounters(t *testing.T) {
	pos := NewPosition()
	play(t, pos, "G1F3", "G8F6", "F3G1")

	if pos.HalfMoveClock != 3 || pos.FullMoveNumber != 2 {
		t.Errorf("counters = %d/%d, want 3/2", pos.HalfMoveClock, pos.FullMoveNumber)
	}
	play(t, pos, "E7E5")
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 3 {
		t.Errorf("counters = %d/%d, want 0/3", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}

func TestPieceSetsStayExclusive(t *testing.T) {
	DebugMoveValidation = true
	defer func() { DebugMoveValidation = false }()

	pos := NewPosition()
	for ply := 0; ply < 120; ply++ {
		moves := pos.GenerateLegalMoves()
		if len(moves) == 0 {
			break
		}
		// Deterministic walk that prefers captures so the board thins out
		m := moves[(ply*7)%len(moves)]
		for _, candidate := range moves {
			if candidate.IsCapture(pos) {
				m = candidate
				break
			}
		}
		if err := pos.MakeMove(m); err != nil {
			t.Fatalf("ply %d: MakeMove(%v): %v", ply, m, err)
		}
		if err := pos.checkInvariants(); err != nil {
			t.Fatalf("ply %d after %v: %v\n%s", ply, m, err, pos)
		}
	}
}
