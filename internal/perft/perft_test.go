package perft

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/movecache"
)

func TestPerftStartingPosition(t *testing.T) {
	pos := board.NewPosition()

	tests := []struct {
		depth    int
		expected uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := Perft(pos, tc.depth); got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

func TestPerftWithCache(t *testing.T) {
	cache, err := movecache.New(movecache.DefaultConfig())
	if err != nil {
		t.Fatalf("movecache.New: %v", err)
	}
	defer cache.Close()

	counter := &Counter{Cache: cache}
	pos := board.NewPosition()

	// Run twice so the second pass reads cached lists
	for pass := 0; pass < 2; pass++ {
		if got := counter.Perft(pos, 3); got != 8902 {
			t.Errorf("pass %d: Perft(3) = %d, want 8902", pass, got)
		}
		cache.Wait()
	}
}

func TestDivide(t *testing.T) {
	pos := board.NewPosition()
	div := Divide(pos, 2)

	if len(div) != 20 {
		t.Fatalf("divide length: got %d want %d", len(div), 20)
	}
	entries, total := Sorted(div)
	if total != 400 {
		t.Errorf("divide total = %d, want 400", total)
	}
	for _, e := range entries {
		if e.Nodes != 20 {
			t.Errorf("%v: %d nodes, want 20", e.Move, e.Nodes)
		}
	}

	var order []string
	for _, e := range entries[:3] {
		order = append(order, e.Move.String())
	}
	if diff := cmp.Diff([]string{"A2A3", "A2A4", "B1A3"}, order); diff != "" {
		t.Errorf("sort order (-want +got):\n%s", diff)
	}
}

func TestDivideDepthZero(t *testing.T) {
	if div := Divide(board.NewPosition(), 0); len(div) != 0 {
		t.Errorf("Divide(0) = %v, want empty", div)
	}
}

func TestPerftLeavesRootUntouched(t *testing.T) {
	pos := board.NewPosition()
	before := pos.ToFEN()
	Perft(pos, 3)
	if after := pos.ToFEN(); after != before {
		t.Errorf("root changed: %s -> %s", before, after)
	}
}
