package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chesscore/rules/internal/board"
	"github.com/chesscore/rules/internal/config"
)

func TestNewGameStartingPosition(t *testing.T) {
	g := New()
	require.Equal(t, board.StartFEN, g.FEN())
	require.Equal(t, board.WhitePawn, g.GetPiece(board.E2))
	require.Equal(t, board.NoPiece, g.GetPiece(board.E4))
}

func TestGetMovesFromStart(t *testing.T) {
	g := New()
	moves := g.GetMoves(board.E2)
	require.True(t, moves&board.SquareBB(board.E3) != 0)
	require.True(t, moves&board.SquareBB(board.E4) != 0)
	require.Equal(t, board.Empty, g.GetMoves(board.E4))
}

func TestMoveAppliesAndSwitchesSide(t *testing.T) {
	g := New()
	ok := g.Move(board.E2, board.E4)
	require.True(t, ok)
	require.Equal(t, board.NoPiece, g.GetPiece(board.E2))
	require.Equal(t, board.WhitePawn, g.GetPiece(board.E4))
	require.Equal(t, board.Black, g.Position().SideToMove)
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	g := New()
	require.False(t, g.Move(board.E2, board.E5))
	require.Equal(t, board.WhitePawn, g.GetPiece(board.E2))
}

func TestMoveRejectsAmbiguousPromotion(t *testing.T) {
	g := New()
	require.True(t, g.LoadFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	require.False(t, g.Move(board.A7, board.A8))
}

func TestMoveAndPromoteAppliesChosenPiece(t *testing.T) {
	g := New()
	require.True(t, g.LoadFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	require.True(t, g.MoveAndPromote(board.A7, board.A8, board.Queen))
	require.Equal(t, board.WhiteQueen, g.GetPiece(board.A8))
}

func TestMoveAndPromoteRejectsBadPieceOrSquare(t *testing.T) {
	g := New()
	require.True(t, g.LoadFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	require.False(t, g.MoveAndPromote(board.A7, board.A8, board.King))
	require.False(t, g.MoveAndPromote(board.A7, board.A8, board.Pawn))
	require.True(t, g.LoadFEN(board.StartFEN))
	require.False(t, g.MoveAndPromote(board.E2, board.E4, board.Queen))
}

func TestUndoRedoRoundTrip(t *testing.T) {
	g := New()
	require.False(t, g.CanUndo())
	require.False(t, g.CanRedo())

	require.True(t, g.Move(board.E2, board.E4))
	require.True(t, g.CanUndo())
	require.False(t, g.CanRedo())

	require.True(t, g.Undo())
	require.Equal(t, board.StartFEN, g.FEN())
	require.False(t, g.CanUndo())
	require.True(t, g.CanRedo())

	require.True(t, g.Redo())
	require.False(t, g.CanRedo())
	require.Equal(t, board.WhitePawn, g.GetPiece(board.E4))
}

func TestUndoFailsWithEmptyHistory(t *testing.T) {
	g := New()
	require.False(t, g.Undo())
	require.False(t, g.Redo())
}

func TestNewMoveTruncatesRedoTail(t *testing.T) {
	g := New()
	require.True(t, g.Move(board.E2, board.E4))
	require.True(t, g.Move(board.E7, board.E5))
	require.True(t, g.Undo())
	require.True(t, g.CanRedo())

	require.True(t, g.Move(board.D7, board.D5))
	require.False(t, g.CanRedo())
}

func TestGetCellsMovedForCastling(t *testing.T) {
	g := New()
	require.True(t, g.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))
	require.True(t, g.Move(board.E1, board.G1))

	from := g.GetCellsMovedFrom()
	to := g.GetCellsMovedTo()

	require.Equal(t, board.SquareBB(board.E1)|board.SquareBB(board.H1), from)
	require.Equal(t, board.SquareBB(board.G1)|board.SquareBB(board.F1), to)
}

func TestGetCellsMovedEmptyBeforeAnyMove(t *testing.T) {
	g := New()
	require.Equal(t, board.Empty, g.GetCellsMovedFrom())
	require.Equal(t, board.Empty, g.GetCellsMovedTo())
}

func TestLoadFENInvalidLeavesGameUntouched(t *testing.T) {
	g := New()
	require.True(t, g.Move(board.E2, board.E4))
	fenBefore := g.FEN()

	require.False(t, g.LoadFEN("not a fen"))
	require.Equal(t, fenBefore, g.FEN())
}

func TestLoadFENResetsHistoryAndCache(t *testing.T) {
	g := New()
	require.True(t, g.Move(board.E2, board.E4))
	require.True(t, g.CanUndo())
	_ = g.GetMoves(board.E7)
	_, cached := g.cache.get(board.E7)
	require.True(t, cached)

	require.True(t, g.LoadFEN(board.StartFEN))
	require.False(t, g.CanUndo())
	require.False(t, g.CanRedo())
	_, stillCached := g.cache.get(board.E7)
	require.False(t, stillCached)
}

func TestMoveCacheInvalidatedAfterMove(t *testing.T) {
	g := New()
	_ = g.GetMoves(board.E2)
	_, cached := g.cache.get(board.E2)
	require.True(t, cached)

	require.True(t, g.Move(board.D2, board.D4))

	_, stillCached := g.cache.get(board.E2)
	require.False(t, stillCached)
}

// TestNewWithConfigMoveCacheDisabled exercises config.EngineConfig.MoveCacheEnabled:
// with it off, GetMoves never populates the cache.
func TestNewWithConfigMoveCacheDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.MoveCacheEnabled = false
	g := NewWithConfig(cfg)

	_ = g.GetMoves(board.E2)
	_, cached := g.cache.get(board.E2)
	require.False(t, cached)

	require.Equal(t, board.SquareBB(board.E3)|board.SquareBB(board.E4), g.GetMoves(board.E2))
}

// TestNewWithConfigHistoryCapacity exercises config.EngineConfig.HistoryInitialCapacity:
// the game still functions with a tiny preallocated history that must grow.
func TestNewWithConfigHistoryCapacity(t *testing.T) {
	cfg := config.Default()
	cfg.HistoryInitialCapacity = 1
	g := NewWithConfig(cfg)

	require.True(t, g.Move(board.E2, board.E4))
	require.True(t, g.Move(board.E7, board.E5))
	require.True(t, g.Move(board.G1, board.F3))
	require.True(t, g.CanUndo())

	require.True(t, g.Undo())
	require.True(t, g.Undo())
	require.True(t, g.Undo())
	require.False(t, g.CanUndo())
}
