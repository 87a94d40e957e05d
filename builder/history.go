package builder

// DefaultHistoryLimit is the default maximum number of history entries.
const DefaultHistoryLimit = 100

// History is a linear undo history of snapshots. Entry 0 is the oldest one;
// a cursor marks the current entry. There is no redo tree: pushing a
// snapshot after undoing discards the undone entries.
//
// A limit > 0 caps the number of entries, dropping the oldest ones. A limit
// of 0 means unbounded.
type History[T any] struct {
	entries []T
	cursor  int
	limit   int
}

// NewHistory creates a history with a single, initial entry.
func NewHistory[T any](initial T, limit int) *History[T] {
	if limit < 0 {
		limit = 0
	}
	return &History[T]{entries: []T{initial}, limit: limit}
}

// Current returns the snapshot at the cursor.
func (h *History[T]) Current() T {
	return h.entries[h.cursor]
}

// Push truncates the redo tail, appends s and makes it current.
func (h *History[T]) Push(s T) {
	h.entries = append(h.entries[:h.cursor+1], s)
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		var zero T
		for i := 0; i < drop; i++ {
			h.entries[i] = zero
		}
		h.entries = h.entries[drop:]
	}
	h.cursor = len(h.entries) - 1
	assertThat(h.cursor >= 0, "history cursor underflow")
}

// Undo moves the cursor one step back and returns the snapshot there.
// If there is nothing to undo, it returns the current snapshot and false.
func (h *History[T]) Undo() (T, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Redo moves the cursor one step forward and returns the snapshot there.
// If there is nothing to redo, it returns the current snapshot and false.
func (h *History[T]) Redo() (T, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

// CanUndo is true if there are entries before the cursor.
func (h *History[T]) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo is true if there are entries after the cursor.
func (h *History[T]) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of entries.
func (h *History[T]) Len() int {
	return len(h.entries)
}

// Reset discards all entries and starts over with initial.
func (h *History[T]) Reset(initial T) {
	h.entries = []T{initial}
	h.cursor = 0
}
