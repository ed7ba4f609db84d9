package perft

import "github.com/chesscore/rules/internal/board"

// Divide returns, for every legal move at the root, the leaf-node count of
// the subtree rooted after that move at depth-1. It is the standard perft
// debugging aid for finding exactly which root move a discrepancy against an
// oracle value hides under.
func Divide(pos *board.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth < 1 {
		return result
	}

	forEachLegalMove(pos, func(m board.Move) {
		undo := pos.MakeMove(m)
		var nodes uint64
		if depth == 1 {
			nodes = 1
		} else {
			nodes = FastPerft(pos, depth-1)
		}
		pos.UnmakeMove(m, undo)
		result[m.String()] = nodes
	})

	return result
}
