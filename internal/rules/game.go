// Package rules implements the public chess game API: a single mutable
// Game that owns a board.Position, a reversible move-history stack, and a
// per-square legal-move cache. This is the surface a UI consumes. The perft
// packages (internal/perft, cmd/perft) do not go through it: they work on
// board.Position directly.
package rules

import (
	"fmt"

	"github.com/chesscore/rules/internal/board"
	"github.com/chesscore/rules/internal/config"
)

// Game is the engine's external interface: construct, query, mutate,
// undo/redo, and FEN load. Perft is not part of it; see internal/perft.
type Game struct {
	pos     *board.Position
	history *history
	cache   moveCache
}

// New constructs a Game in the standard initial position, White to move,
// using the default engine configuration.
func New() *Game {
	return NewWithConfig(config.Default())
}

// NewWithConfig constructs a Game in the standard initial position using
// the move-cache and history-capacity settings in cfg.
func NewWithConfig(cfg config.EngineConfig) *Game {
	return &Game{
		pos:     board.NewPosition(),
		history: newHistory(cfg.HistoryInitialCapacity),
		cache:   newMoveCache(cfg.MoveCacheEnabled),
	}
}

// GetPiece returns the piece occupying sq, or board.NoPiece if empty.
func (g *Game) GetPiece(sq board.Square) board.Piece {
	return g.pos.PieceAt(sq)
}

// GetMoves returns the legal destination bitboard for the piece on sq,
// consulting the move cache first. Empty if sq is empty or holds a piece of
// the wrong color.
func (g *Game) GetMoves(sq board.Square) board.Bitboard {
	if legal, ok := g.cache.get(sq); ok {
		return legal
	}
	legal := g.pos.LegalMoves(sq)
	g.cache.put(sq, legal)
	return legal
}

// Move applies the move from -> to for the side to move. Returns false,
// mutating nothing, if the move is not in GetMoves(from) or if it requires
// a promotion choice (use MoveAndPromote for those).
func (g *Game) Move(from, to board.Square) bool {
	if g.GetMoves(from)&board.SquareBB(to) == 0 {
		return false
	}

	piece := g.pos.PieceAt(from)
	if piece.Type() == board.Pawn && (to.Rank() == 0 || to.Rank() == 7) {
		return false // ambiguous promotion piece: caller must use MoveAndPromote
	}

	return g.apply(g.pos.ClassifyMove(from, to, piece))
}

// MoveAndPromote applies a pawn move to the back rank, promoting to promo.
// promo must be one of Knight, Bishop, Rook, Queen. Returns false, mutating
// nothing, on any other input.
func (g *Game) MoveAndPromote(from, to board.Square, promo board.PieceType) bool {
	if promo != board.Knight && promo != board.Bishop && promo != board.Rook && promo != board.Queen {
		return false
	}
	if g.GetMoves(from)&board.SquareBB(to) == 0 {
		return false
	}
	piece := g.pos.PieceAt(from)
	if piece.Type() != board.Pawn || (to.Rank() != 0 && to.Rank() != 7) {
		return false
	}

	return g.apply(board.NewPromotion(from, to, promo))
}

// apply runs the move through Position.MakeMove, and on success pushes a
// history entry and invalidates the cache.
func (g *Game) apply(m board.Move) bool {
	undo := g.pos.MakeMove(m)
	if !undo.Valid {
		return false
	}
	g.history.push(m, undo)
	g.cache.invalidate()
	return true
}

// Undo reverts the most recently applied move. Returns false, leaving state
// unchanged, if there is nothing to undo.
func (g *Game) Undo() bool {
	entry, ok := g.history.popForUndo()
	if !ok {
		return false
	}
	g.pos.UnmakeMove(entry.move, entry.undo)
	g.cache.invalidate()
	return true
}

// Redo re-applies the move at the history cursor and advances the cursor.
// Returns false, leaving state unchanged, if there is nothing to redo.
func (g *Game) Redo() bool {
	entry, ok := g.history.peekForRedo()
	if !ok {
		return false
	}
	undo := g.pos.MakeMove(entry.move)
	if !undo.Valid {
		return false
	}
	g.history.advanceRedo(undo)
	g.cache.invalidate()
	return true
}

// CanUndo reports whether Undo would succeed.
func (g *Game) CanUndo() bool {
	return g.history.canUndo()
}

// CanRedo reports whether Redo would succeed.
func (g *Game) CanRedo() bool {
	return g.history.canRedo()
}

// GetCellsMovedFrom returns the origin square(s) of the most recently
// applied move, for UI highlighting. Castling collapses to the king's and
// rook's origin squares together.
func (g *Game) GetCellsMovedFrom() board.Bitboard {
	entry, ok := g.history.last()
	if !ok {
		return board.Empty
	}
	return g.cellsMoved(entry.move, true)
}

// GetCellsMovedTo returns the destination square(s) of the most recently
// applied move. Castling collapses to the king's and rook's destination
// squares together.
func (g *Game) GetCellsMovedTo() board.Bitboard {
	entry, ok := g.history.last()
	if !ok {
		return board.Empty
	}
	return g.cellsMoved(entry.move, false)
}

func (g *Game) cellsMoved(m board.Move, origin bool) board.Bitboard {
	from, to := m.From(), m.To()

	if !m.IsCastling() {
		if origin {
			return board.SquareBB(from)
		}
		return board.SquareBB(to)
	}

	var rookFrom, rookTo board.Square
	if to > from {
		rookFrom = board.NewSquare(7, from.Rank())
		rookTo = board.NewSquare(5, from.Rank())
	} else {
		rookFrom = board.NewSquare(0, from.Rank())
		rookTo = board.NewSquare(3, from.Rank())
	}

	if origin {
		return board.SquareBB(from) | board.SquareBB(rookFrom)
	}
	return board.SquareBB(to) | board.SquareBB(rookTo)
}

// LoadFEN replaces the position with the one the FEN string describes,
// resetting history and cache. Returns false, leaving the current game
// untouched, on malformed input.
func (g *Game) LoadFEN(fen string) bool {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return false
	}
	g.pos = pos
	g.history.reset()
	g.cache.invalidate()
	return true
}

// Position exposes the underlying board state read-only for callers (the
// perft driver, diagnostics) that need more than the UI-facing surface
// above. Mutating the returned pointer is the caller's problem, not this
// package's contract.
func (g *Game) Position() *board.Position {
	return g.pos
}

// FEN returns the current position's FEN representation.
func (g *Game) FEN() string {
	return g.pos.ToFEN()
}

// String renders the position for debugging.
func (g *Game) String() string {
	return fmt.Sprintf("%s\nfen: %s", g.pos, g.pos.ToFEN())
}
