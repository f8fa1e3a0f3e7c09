package session

import "github.com/vovakirdan/tilemerge/internal/board"

// Snapshot is the session state before one successful move.
type Snapshot struct {
	Grid  board.Grid
	Score int
	Moves int
}

// UndoStack holds one snapshot per successful move, newest last.
// A positive limit caps its depth by discarding the oldest snapshot.
type UndoStack struct {
	entries []Snapshot
	limit   int
}

// NewUndoStack creates a stack. limit 0 means unbounded.
func NewUndoStack(limit int) *UndoStack {
	return &UndoStack{limit: limit}
}

// Push stores s on top of the stack.
func (u *UndoStack) Push(s Snapshot) {
	s.Grid = s.Grid.Clone()
	u.entries = append(u.entries, s)
	if u.limit > 0 && len(u.entries) > u.limit {
		u.entries = append(u.entries[:0], u.entries[len(u.entries)-u.limit:]...)
	}
}

// Pop removes and returns the newest snapshot.
func (u *UndoStack) Pop() (Snapshot, bool) {
	if len(u.entries) == 0 {
		return Snapshot{}, false
	}
	s := u.entries[len(u.entries)-1]
	u.entries = u.entries[:len(u.entries)-1]
	return s, true
}

// Len returns the number of stored snapshots.
func (u *UndoStack) Len() int {
	return len(u.entries)
}

// Clear drops every snapshot.
func (u *UndoStack) Clear() {
	u.entries = nil
}
