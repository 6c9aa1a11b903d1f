// Command chessrules-perft counts legal move tree leaves from the initial
// position (optionally after a line of moves) and records the result so
// regressions in move generation show up as count mismatches between runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/movecache"
	"github.com/hailam/chessrules/internal/perft"
	"github.com/hailam/chessrules/internal/storage"
)

var (
	moves      = flag.String("moves", "", "comma-separated coordinate moves from the initial position, e.g. E2E4,E7E5")
	depth      = flag.Int("depth", 4, "perft depth")
	divide     = flag.Bool("divide", false, "print per-move node counts at the root")
	dbDir      = flag.String("db", "", "perft result database directory (default under the data dir, \"off\" disables)")
	cacheMB    = flag.Int("cache", 0, "legal move cache size in MB (0 disables)")
	debug      = flag.Bool("debug", false, "check position invariants after every move")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *depth <= 0 {
		return fmt.Errorf("-depth must be > 0")
	}
	board.DebugMoveValidation = *debug

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	pos, err := replay(*moves)
	if err != nil {
		return err
	}

	counter := &perft.Counter{}
	if *cacheMB > 0 {
		cache, err := movecache.New(movecache.ConfigForMB(*cacheMB))
		if err != nil {
			return err
		}
		defer cache.Close()
		counter.Cache = cache
	}

	start := time.Now()
	result := &storage.PerftResult{FEN: pos.ToFEN(), Depth: *depth}
	if *divide {
		entries, total := perft.Sorted(counter.Divide(pos, *depth))
		result.Divide = make(map[string]uint64, len(entries))
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
			result.Divide[e.Move.String()] = e.Nodes
		}
		result.Nodes = total
	} else {
		result.Nodes = counter.Perft(pos, *depth)
	}
	result.Elapsed = time.Since(start)

	fmt.Printf("Nodes: %d\n", result.Nodes)
	fmt.Printf("Time: %v\n", result.Elapsed)
	if result.Elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(result.Nodes)/result.Elapsed.Seconds())
	}

	if *dbDir == "off" {
		return nil
	}
	return record(result)
}

// replay applies a comma-separated move list to the initial position.
func replay(list string) (*board.Position, error) {
	pos := board.NewPosition()
	if list == "" {
		return pos, nil
	}
	for _, s := range strings.Split(list, ",") {
		m, err := board.ParseMove(strings.ToUpper(strings.TrimSpace(s)))
		if err != nil {
			return nil, err
		}
		if err := pos.MakeMove(m); err != nil {
			return nil, err
		}
	}
	return pos, nil
}

// record stores the result and reports a mismatch with the previous run.
func record(result *storage.PerftResult) error {
	store, err := storage.Open(storage.Options{Dir: *dbDir})
	if err != nil {
		return err
	}
	defer store.Close()

	previous, err := store.RecordPerft(result)
	if err != nil {
		return fmt.Errorf("record perft result: %w", err)
	}
	if previous != nil && previous.Nodes != result.Nodes {
		log.Printf("MISMATCH: depth %d of %s gave %d nodes, %d on %s",
			result.Depth, result.FEN, result.Nodes, previous.Nodes,
			previous.RecordedAt.Format(time.RFC3339))
	}

	stats, err := store.LoadStats()
	if err != nil {
		return err
	}
	log.Printf("%d runs recorded, %d mismatches, %.0f NPS overall",
		stats.Runs, stats.Mismatches, stats.NodesPerSecond())
	return nil
}
