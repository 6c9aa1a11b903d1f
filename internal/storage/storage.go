// Package storage persists perft results so later runs can be checked
// against earlier ones.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyStats       = "stats"
	keyPerftPrefix = "perft/"
)

// PerftResult is one recorded node count.
type PerftResult struct {
	FEN        string            `json:"fen"`
	Depth      int               `json:"depth"`
	Nodes      uint64            `json:"nodes"`
	Divide     map[string]uint64 `json:"divide,omitempty"`
	Elapsed    time.Duration     `json:"elapsed"`
	RecordedAt time.Time         `json:"recorded_at"`
}

// RunStats aggregates every recorded run.
type RunStats struct {
	Runs       int           `json:"runs"`
	Mismatches int           `json:"mismatches"`
	TotalNodes uint64        `json:"total_nodes"`
	TotalTime  time.Duration `json:"total_time"`
}

// NodesPerSecond returns the average search speed over all runs.
func (s *RunStats) NodesPerSecond() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return float64(s.TotalNodes) / s.TotalTime.Seconds()
}

// Options configures where the database lives.
type Options struct {
	// Dir is the database directory. Empty means GetDatabaseDir.
	Dir string
	// InMemory keeps everything in memory and ignores Dir.
	InMemory bool
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the default data directory.
func NewStorage() (*Storage, error) {
	return Open(Options{})
}

// Open opens (or creates) the database described by opts.
func Open(opts Options) (*Storage, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		dir := opts.Dir
		if dir == "" {
			var err error
			if dir, err = GetDatabaseDir(); err != nil {
				return nil, err
			}
		}
		bopts = badger.DefaultOptions(dir)
	}
	bopts.Logger = nil // Disable logging

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open perft store: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func perftPrefix(fen string) string {
	return keyPerftPrefix + fen + "/"
}

// perftKey orders results of one position by depth under a shared prefix.
func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s%03d", perftPrefix(fen), depth))
}

// SavePerft stores a result, replacing any earlier one for the same position and depth.
func (s *Storage) SavePerft(r *PerftResult) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(r.FEN, r.Depth), data)
	})
}

// LoadPerft returns the stored result for a position and depth, or nil if there is none.
func (s *Storage) LoadPerft(fen string, depth int) (*PerftResult, error) {
	var result *PerftResult

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			result = &PerftResult{}
			return json.Unmarshal(val, result)
		})
	})

	return result, err
}

// ListPerft returns every stored result for a position in ascending depth order.
func (s *Storage) ListPerft(fen string) ([]*PerftResult, error) {
	var results []*PerftResult

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(perftPrefix(fen))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			// A longer FEN sharing this prefix would carry more slashes
			if strings.Contains(string(it.Item().Key()[len(prefix):]), "/") {
				continue
			}
			err := it.Item().Value(func(val []byte) error {
				r := &PerftResult{}
				if err := json.Unmarshal(val, r); err != nil {
					return err
				}
				results = append(results, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return results, err
}

// SaveStats saves run statistics
func (s *Storage) SaveStats(stats *RunStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads run statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordPerft stores a result and updates the run statistics. It returns the
// result previously stored for the same position and depth, if any, so the
// caller can compare node counts.
func (s *Storage) RecordPerft(r *PerftResult) (*PerftResult, error) {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}

	previous, err := s.LoadPerft(r.FEN, r.Depth)
	if err != nil {
		return nil, err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return nil, err
	}
	stats.Runs++
	stats.TotalNodes += r.Nodes
	stats.TotalTime += r.Elapsed
	if previous != nil && previous.Nodes != r.Nodes {
		stats.Mismatches++
	}

	if err := s.SavePerft(r); err != nil {
		return nil, err
	}
	if err := s.SaveStats(stats); err != nil {
		return nil, err
	}
	return previous, nil
}
