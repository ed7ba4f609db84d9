// Command perft runs the move-tree enumeration used to validate the move
// generator and apply/undo stack against known oracle values. It is kept
// deliberately thin: flag parsing, one FEN load, one call into
// internal/perft, and a printed breakdown.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/chesscore/rules/internal/board"
	"github.com/chesscore/rules/internal/config"
	"github.com/chesscore/rules/internal/perft"
	"github.com/chesscore/rules/internal/perftcache"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to enumerate")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move subtree counts instead of a full breakdown")
	fast := flag.Bool("fast", false, "print only the leaf count")
	configPath := flag.String("config", "", "path to an engine TOML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("perft: %v", err)
		}
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("perft: invalid FEN %q: %v", *fen, err)
	}

	var cache *perftcache.Cache
	if cfg.PerftCache.Enabled {
		cache, err = perftcache.Open(cfg.PerftCache.Dir)
		if err != nil {
			log.Fatalf("perft: %v", err)
		}
		defer cache.Close()
	}

	switch {
	case *divide:
		runDivide(pos, *depth)
	case *fast:
		fmt.Println(perft.FastPerftCached(pos, *depth, cache))
	default:
		runFull(pos, *depth)
	}
}

func runDivide(pos *board.Position, depth int) {
	counts := perft.Divide(pos, depth)

	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, counts[m])
		total += counts[m]
	}
	fmt.Printf("\nmoves: %d\ntotal: %d\n", len(moves), total)
}

func runFull(pos *board.Position, depth int) {
	r := perft.Perft(pos, depth)

	fmt.Printf("nodes:             %d\n", r.Nodes)
	fmt.Printf("captures:          %d\n", r.Captures)
	fmt.Printf("en passant:        %d\n", r.EnPassant)
	fmt.Printf("castles:           %d\n", r.Castles)
	fmt.Printf("promotions:        %d\n", r.Promotions)
	fmt.Printf("checks:            %d\n", r.Checks)
	fmt.Printf("discovered checks: %d\n", r.DiscoveredChecks)
	fmt.Printf("double checks:     %d\n", r.DoubleChecks)
	fmt.Printf("checkmates:        %d\n", r.Checkmates)
}
