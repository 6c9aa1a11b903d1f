// Package movecache memoizes legal move lists per position.
//
// Entries are keyed by Zobrist hash and checked against the full board key on
// every hit, so a hash collision costs a regeneration and never a wrong answer.
// A Cache is safe for concurrent use.
package movecache

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/hailam/chessrules/internal/board"
)

// Config sizes the cache.
type Config struct {
	// MaxEntries bounds the number of cached positions.
	MaxEntries int64
	// Metrics enables hit and miss counters.
	Metrics bool
}

// DefaultConfig returns a cache sized for interactive use.
func DefaultConfig() Config {
	return Config{MaxEntries: 1 << 16}
}

// ConfigForMB sizes a cache to roughly mb megabytes of move lists.
func ConfigForMB(mb int) Config {
	// A cached position averages about 35 moves of 32 bytes plus overhead
	const bytesPerEntry = 1280
	return Config{MaxEntries: int64(mb) << 20 / bytesPerEntry}
}

type entry struct {
	key   board.Key
	moves []board.Move
}

// Cache holds legal move lists keyed by position.
type Cache struct {
	cache *ristretto.Cache[uint64, *entry]
}

// New creates a cache.
func New(cfg Config) (*Cache, error) {
	if cfg.MaxEntries <= 0 {
		return nil, fmt.Errorf("movecache: MaxEntries must be positive, got %d", cfg.MaxEntries)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[uint64, *entry]{
		NumCounters:        cfg.MaxEntries * 10,
		MaxCost:            cfg.MaxEntries,
		BufferItems:        64,
		Metrics:            cfg.Metrics,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("movecache: %w", err)
	}
	return &Cache{cache: cache}, nil
}

// LegalMoves returns the legal moves of the side to move in p, generating
// and caching them on a miss. The returned slice is shared; do not modify it.
func (c *Cache) LegalMoves(p *board.Position) []board.Move {
	hash := p.Hash()
	key := p.Key()

	if e, ok := c.cache.Get(hash); ok && e.key == key {
		return e.moves
	}

	moves := p.GenerateLegalMoves()
	c.cache.Set(hash, &entry{key: key, moves: moves}, 1)
	return moves
}

// Hits returns the number of lookups served from the cache.
// It is zero unless Config.Metrics was set.
func (c *Cache) Hits() uint64 {
	return c.cache.Metrics.Hits()
}

// Misses returns the number of lookups that found no entry.
func (c *Cache) Misses() uint64 {
	return c.cache.Metrics.Misses()
}

// Wait blocks until pending writes are visible to lookups.
func (c *Cache) Wait() {
	c.cache.Wait()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.cache.Clear()
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.cache.Close()
}
