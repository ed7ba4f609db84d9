package rules

import "github.com/chesscore/rules/internal/board"

// historyEntry is one applied move, together with the information needed to
// reverse it. Unlike a full-position snapshot, this is exactly
// board.UndoInfo plus the move itself — spec.md §9's "history as undo log,
// not state".
type historyEntry struct {
	move board.Move
	undo board.UndoInfo
}

// history is the move-history stack: an applied-move log with a logical
// cursor. Undo moves the cursor back without discarding entries; redo
// re-applies the entry at the cursor and advances it. A fresh move made
// while the cursor sits below the top truncates everything past it.
type history struct {
	entries []historyEntry
	cursor  int
}

// newHistory allocates a history pre-sized to capacity, per
// config.EngineConfig.HistoryInitialCapacity. Beyond that capacity the slice
// grows by Go's append policy.
func newHistory(capacity int) *history {
	return &history{entries: make([]historyEntry, 0, capacity)}
}

// push appends a new entry, truncating any redo tail first.
func (h *history) push(m board.Move, undo board.UndoInfo) {
	h.entries = append(h.entries[:h.cursor], historyEntry{move: m, undo: undo})
	h.cursor = len(h.entries)
}

func (h *history) canUndo() bool {
	return h.cursor > 0
}

func (h *history) canRedo() bool {
	return h.cursor < len(h.entries)
}

// last returns the entry the cursor currently sits after, i.e. the most
// recently applied move, and whether one exists.
func (h *history) last() (historyEntry, bool) {
	if h.cursor == 0 {
		return historyEntry{}, false
	}
	return h.entries[h.cursor-1], true
}

// popForUndo returns the entry to undo and moves the cursor back over it.
func (h *history) popForUndo() (historyEntry, bool) {
	if !h.canUndo() {
		return historyEntry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// peekForRedo returns the entry at the cursor without moving it; the caller
// advances the cursor only after successfully re-applying the move (see
// the redo-cursor discussion in DESIGN.md).
func (h *history) peekForRedo() (historyEntry, bool) {
	if !h.canRedo() {
		return historyEntry{}, false
	}
	return h.entries[h.cursor], true
}

// advanceRedo moves the cursor forward and updates the entry's undo info to
// what the fresh re-application produced.
func (h *history) advanceRedo(undo board.UndoInfo) {
	h.entries[h.cursor].undo = undo
	h.cursor++
}

func (h *history) reset() {
	h.entries = h.entries[:0]
	h.cursor = 0
}
