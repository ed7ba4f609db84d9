package rules

import "github.com/chesscore/rules/internal/board"

// moveCache is spec component F: per from-square memoisation of the legal
// destination bitboard, plus a bitboard recording which squares currently
// hold a valid entry. It is a performance aid, not a correctness
// requirement — Game works identically (just slower) if every lookup
// missed the cache. enabled comes from config.EngineConfig.MoveCacheEnabled;
// when false, get always misses and put is a no-op.
type moveCache struct {
	legalMoves [64]board.Bitboard
	validSet   board.Bitboard
	enabled    bool
}

func newMoveCache(enabled bool) moveCache {
	return moveCache{enabled: enabled}
}

// get returns the cached legal-destination bitboard for sq if valid, and
// whether the cache held it.
func (c *moveCache) get(sq board.Square) (board.Bitboard, bool) {
	if c.enabled && c.validSet.IsSet(sq) {
		return c.legalMoves[sq], true
	}
	return board.Empty, false
}

// put stores the legal-destination bitboard for sq and marks the entry
// valid. The square's own bit in validSet marks the entry as present; it is
// unrelated to the destination bits stored in legalMoves[sq].
func (c *moveCache) put(sq board.Square, legal board.Bitboard) {
	if !c.enabled {
		return
	}
	c.legalMoves[sq] = legal
	c.validSet = c.validSet.Set(sq)
}

// invalidate clears every cached entry. Called unconditionally after every
// apply, undo, redo, and FEN load — there is no dirty-bit discipline subtle
// enough to be worth the risk of getting it wrong.
func (c *moveCache) invalidate() {
	c.validSet = board.Empty
}
