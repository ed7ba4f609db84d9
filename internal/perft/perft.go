// Package perft implements spec component H: the recursive move-tree
// enumeration used as a correctness oracle for the move generator and the
// apply/undo stack. It operates directly on a board.Position rather than
// through rules.Game, since perft has no use for history or the UI-facing
// move cache — it wants raw, repeated make/unmake over the full tree.
package perft

import "github.com/chesscore/rules/internal/board"

var promotionPieces = [4]board.PieceType{board.Knight, board.Bishop, board.Rook, board.Queen}

// Result is the bucketed leaf-node breakdown spec.md §4.H and §8 describe:
// total nodes plus sub-counts of captures, en-passant captures, castles,
// promotions, checks, discovered checks, double checks, and checkmates
// observed at the leaves.
type Result struct {
	Nodes            uint64
	Captures         uint64
	EnPassant        uint64
	Castles          uint64
	Promotions       uint64
	Checks           uint64
	DiscoveredChecks uint64
	DoubleChecks     uint64
	Checkmates       uint64
}

// Add sums two results bucket-wise.
func (r Result) Add(o Result) Result {
	return Result{
		Nodes:            r.Nodes + o.Nodes,
		Captures:         r.Captures + o.Captures,
		EnPassant:        r.EnPassant + o.EnPassant,
		Castles:          r.Castles + o.Castles,
		Promotions:       r.Promotions + o.Promotions,
		Checks:           r.Checks + o.Checks,
		DiscoveredChecks: r.DiscoveredChecks + o.DiscoveredChecks,
		DoubleChecks:     r.DoubleChecks + o.DoubleChecks,
		Checkmates:       r.Checkmates + o.Checkmates,
	}
}

// Perft walks the legal-move tree rooted at pos to the given depth,
// returning the full bucketed breakdown. depth 0 is a single counted leaf
// (the root itself).
func Perft(pos *board.Position, depth int) Result {
	if depth == 0 {
		return Result{Nodes: 1}
	}

	var total Result
	forEachLegalMove(pos, func(m board.Move) {
		undo := pos.MakeMove(m)
		var sub Result
		if depth == 1 {
			sub = leafCounters(pos, m, undo)
		} else {
			sub = Perft(pos, depth-1)
		}
		pos.UnmakeMove(m, undo)
		total = total.Add(sub)
	})

	return total
}

// FastPerft returns only the leaf count, for high-depth correctness runs
// where the bucketed breakdown isn't needed.
func FastPerft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	forEachLegalMove(pos, func(m board.Move) {
		undo := pos.MakeMove(m)
		if depth == 1 {
			nodes++
		} else {
			nodes += FastPerft(pos, depth-1)
		}
		pos.UnmakeMove(m, undo)
	})

	return nodes
}

// forEachLegalMove iterates every legal move for the side to move, taking
// the least-significant set bit of each source square's legal-destination
// bitboard in turn (spec.md §4.H, §9's canonical ffs iteration pattern).
// Promotion destinations are expanded into all four promotion-piece moves.
func forEachLegalMove(pos *board.Position, visit func(board.Move)) {
	us := pos.SideToMove

	for pt := board.Pawn; pt <= board.King; pt++ {
		pieces := pos.Pieces[us][pt]
		for pieces != 0 {
			from := pieces.PopLSB()
			dests := pos.LegalMoves(from)
			for dests != 0 {
				to := dests.PopLSB()
				if pt == board.Pawn && (to.Rank() == 0 || to.Rank() == 7) {
					for _, promo := range promotionPieces {
						visit(board.NewPromotion(from, to, promo))
					}
					continue
				}
				visit(pos.ClassifyMove(from, to, board.NewPiece(pt, us)))
			}
		}
	}
}

// leafCounters classifies a single applied move at a leaf node. pos has
// already had m applied (and not yet unapplied), so pos.SideToMove and
// pos.Checkers describe the opponent's position after the move.
func leafCounters(pos *board.Position, m board.Move, undo board.UndoInfo) Result {
	r := Result{Nodes: 1}

	if undo.CapturedPiece != board.NoPiece {
		r.Captures++
	}
	if m.IsEnPassant() {
		r.EnPassant++
	}
	if m.IsCastling() {
		r.Castles++
	}
	if m.IsPromotion() {
		r.Promotions++
	}

	if pos.InCheck() {
		r.Checks++

		// Counted as discovered when no checker stands on the move's
		// destination square, i.e. the piece that landed on m.To() gives no
		// check. A double check in which that piece is one of the checkers
		// is therefore not counted here; for castling m.To() is the king's
		// square, so a check from the castled rook is counted here.
		if pos.Checkers&board.SquareBB(m.To()) == 0 {
			r.DiscoveredChecks++
		}
		if pos.Checkers.PopCount() == 2 {
			r.DoubleChecks++
		}
		if pos.IsCheckmate() {
			r.Checkmates++
		}
	}

	return r
}
