package board

import (
	"sort"
	"strconv"
	"strings"
	"testing"
)

// sq parses a square in notation, panicking on malformed input. Test use only.
func sq(s string) Square {
	square, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return square
}

// mv builds a move from two squares in notation.
func mv(from, to string) Move {
	return NewMove(sq(from), sq(to))
}

var fenPieces = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

// positionFromFEN decodes a FEN string into a Setup and builds the Position,
// the way an external importer drives the core.
func positionFromFEN(t testing.TB, fen string) *Position {
	t.Helper()

	parts := strings.Fields(fen)
	if len(parts) < 4 {
		t.Fatalf("invalid FEN %q: need at least 4 fields", fen)
	}

	s := Setup{Placement: make(map[Square]Piece), EnPassant: NoSquare}

	for i, rankStr := range strings.Split(parts[0], "/") {
		row, col := 7-i, 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, ok := fenPieces[c]
			if !ok {
				t.Fatalf("invalid piece character %c in %q", c, fen)
			}
			s.Placement[NewSquare(row, col)] = piece
			col++
		}
	}

	if parts[1] == "b" {
		s.SideToMove = Black
	}

	s.WhiteKingSide = strings.Contains(parts[2], "K")
	s.WhiteQueenSide = strings.Contains(parts[2], "Q")
	s.BlackKingSide = strings.Contains(parts[2], "k")
	s.BlackQueenSide = strings.Contains(parts[2], "q")

	if parts[3] != "-" {
		s.EnPassant = sq(strings.ToUpper(parts[3]))
	}

	if len(parts) > 5 {
		s.HalfMoveClock, _ = strconv.Atoi(parts[4])
		s.FullMoveNumber, _ = strconv.Atoi(parts[5])
	}

	pos, err := NewPositionFromSetup(s)
	if err != nil {
		t.Fatalf("NewPositionFromSetup(%q): %v", fen, err)
	}
	return pos
}

// moveStrings returns the moves as sorted strings.
func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

// play applies coordinate moves such as "E2E4" in order, failing the test on the first error.
func play(t testing.TB, p *Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if err := p.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%s): %v\n%s", s, err, p)
		}
	}
}
