package perft

import (
	"github.com/chesscore/rules/internal/board"
	"github.com/chesscore/rules/internal/perftcache"
)

// FastPerftCached behaves like FastPerft but consults cache before
// recursing into a subtree and populates it on the way back up, keyed by
// the position's Zobrist hash and remaining depth. Passing a nil cache
// makes this identical to FastPerft.
func FastPerftCached(pos *board.Position, depth int, cache *perftcache.Cache) uint64 {
	if depth == 0 {
		return 1
	}
	if cache != nil {
		if nodes, ok := cache.Get(pos.Hash, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	forEachLegalMove(pos, func(m board.Move) {
		undo := pos.MakeMove(m)
		if depth == 1 {
			nodes++
		} else {
			nodes += FastPerftCached(pos, depth-1, cache)
		}
		pos.UnmakeMove(m, undo)
	})

	if cache != nil {
		_ = cache.Put(pos.Hash, depth, nodes)
	}

	return nodes
}
