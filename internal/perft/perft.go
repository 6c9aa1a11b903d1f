// Package perft counts the leaf nodes of the legal move tree, the standard
// check of move generation against published node counts.
package perft

import (
	"sort"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/movecache"
)

// Counter walks move trees. A nil Cache generates every move list afresh.
type Counter struct {
	Cache *movecache.Cache
}

func (c *Counter) legalMoves(p *board.Position) []board.Move {
	if c.Cache != nil {
		return c.Cache.LegalMoves(p)
	}
	return p.GenerateLegalMoves()
}

// Perft returns the number of leaf nodes depth plies below p.
// p is not modified.
func (c *Counter) Perft(p *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := c.legalMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := p.Copy()
		if err := child.MakeMove(m); err != nil {
			continue
		}
		nodes += c.Perft(child, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move.
func (c *Counter) Divide(p *board.Position, depth int) map[board.Move]uint64 {
	div := make(map[board.Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range c.legalMoves(p) {
		child := p.Copy()
		if err := child.MakeMove(m); err != nil {
			continue
		}
		div[m] = c.Perft(child, depth-1)
	}
	return div
}

// Perft counts leaf nodes without a cache.
func Perft(p *board.Position, depth int) uint64 {
	return (&Counter{}).Perft(p, depth)
}

// Divide splits the perft count by root move without a cache.
func Divide(p *board.Position, depth int) map[board.Move]uint64 {
	return (&Counter{}).Divide(p, depth)
}

// Entry is one line of a divide listing.
type Entry struct {
	Move  board.Move
	Nodes uint64
}

// Sorted orders a divide map by move notation for stable output and returns the total.
func Sorted(div map[board.Move]uint64) ([]Entry, uint64) {
	entries := make([]Entry, 0, len(div))
	var total uint64
	for m, n := range div {
		entries = append(entries, Entry{Move: m, Nodes: n})
		total += n
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, total
}
