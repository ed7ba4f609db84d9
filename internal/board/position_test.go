package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestMakeUnmakeRestoresState exercises testable property 5: move, undo
// restores every bit of state move touched.
func TestMakeUnmakeRestoresState(t *testing.T) {
	pos := NewPosition()
	before := pos.Copy()

	moves := pos.GenerateLegalMoves()
	require.Greater(t, moves.Len(), 0, "starting position must have legal moves")

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		require.True(t, undo.Valid, "legal move %v must apply", m)
		pos.UnmakeMove(m, undo)

		if diff := cmp.Diff(before, pos); diff != "" {
			t.Fatalf("move %v: undo did not restore state (-want +got):\n%s", m, diff)
		}
	}
}

// TestMakeUndoRedoReplaysOriginal exercises testable property 6: move,
// undo, redo (here: re-make) reaches the same state as the original move.
func TestMakeUndoRedoReplaysOriginal(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()
	require.Greater(t, moves.Len(), 0)

	m := moves.Get(0)
	undo := pos.MakeMove(m)
	require.True(t, undo.Valid)
	afterMove := pos.Copy()

	pos.UnmakeMove(m, undo)
	redo := pos.MakeMove(m)
	require.True(t, redo.Valid)

	if diff := cmp.Diff(afterMove, pos); diff != "" {
		t.Fatalf("redo did not reach the post-move state (-want +got):\n%s", diff)
	}
}

// TestCastlingRightsPermanentlyLost exercises scenario 3 of spec.md §8: once
// a king castles, both of its side's rights are gone and stay gone.
func TestCastlingRightsPermanentlyLost(t *testing.T) {
	pos := NewPosition()
	moveStrings := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"}

	for _, ms := range moveStrings {
		m, err := ParseMove(ms, pos)
		require.NoError(t, err)
		undo := pos.MakeMove(m)
		require.True(t, undo.Valid, "move %s should apply", ms)
	}

	castle, err := ParseMove("e1g1", pos)
	require.NoError(t, err)
	require.True(t, castle.IsCastling())

	undo := pos.MakeMove(castle)
	require.True(t, undo.Valid)

	require.Equal(t, G1, pos.KingSquare[White])
	require.Equal(t, WhiteRook, pos.PieceAt(F1))
	require.False(t, pos.CastlingRights.CanCastle(White, true))
	require.False(t, pos.CastlingRights.CanCastle(White, false))
}

// TestEnPassantCapture exercises scenario 2 of spec.md §8.
func TestEnPassantCapture(t *testing.T) {
	pos := NewPosition()
	for _, ms := range []string{"e2e4", "d7d5", "e4d5", "c7c5"} {
		m, err := ParseMove(ms, pos)
		require.NoError(t, err)
		undo := pos.MakeMove(m)
		require.True(t, undo.Valid)
	}

	require.Equal(t, C6, pos.EnPassant)

	ep, err := ParseMove("d5c6", pos)
	require.NoError(t, err)
	require.True(t, ep.IsEnPassant())

	undo := pos.MakeMove(ep)
	require.True(t, undo.Valid)

	require.True(t, pos.IsEmpty(D5))
	require.Equal(t, WhitePawn, pos.PieceAt(C6))
	require.True(t, pos.IsEmpty(C5))
}

func TestValidateRejectsMissingKing(t *testing.T) {
	pos := &Position{}
	pos.Clear()
	pos.setPiece(WhiteKing, E1)
	require.Error(t, pos.Validate())
}
