// Package history keeps a bounded, cursor-addressed log of canvas states
// for undo and redo.
package history

import "github.com/Drawing-master/Drawing-Master/internal/logging"

// DefaultCapacity is the number of states kept when no capacity is given.
const DefaultCapacity = 50

// Log is an ordered sequence of states with a cursor pointing at the state
// currently on screen. Entries after the cursor form the redo branch.
//
// Invalid transitions (undo at the oldest entry, redo at the newest) are
// silent no-ops. A Log is not safe for concurrent use.
type Log[S any] struct {
	entries  []S
	cursor   int
	capacity int
}

// New creates an empty Log holding at most capacity entries. A capacity
// below 1 selects DefaultCapacity.
func New[S any](capacity int) *Log[S] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log[S]{
		entries:  make([]S, 0, capacity+1),
		cursor:   -1,
		capacity: capacity,
	}
}

// Push drops the redo branch, appends s and moves the cursor to it. When the
// log grows past its capacity the oldest entries are evicted.
func (l *Log[S]) Push(s S) {
	l.entries = l.entries[:l.cursor+1]
	l.entries = append(l.entries, s)
	l.cursor = len(l.entries) - 1

	for len(l.entries) > l.capacity {
		var zero S
		l.entries[0] = zero
		l.entries = l.entries[1:]
		l.cursor--
	}

	logging.Logger().Debug("history push", "len", len(l.entries), "cursor", l.cursor)
}

// Undo moves the cursor one entry back and returns the entry now under it.
// It reports false, and does nothing, at the oldest entry.
func (l *Log[S]) Undo() (S, bool) {
	if l.cursor <= 0 {
		var zero S
		return zero, false
	}
	l.cursor--
	logging.Logger().Debug("history undo", "cursor", l.cursor)
	return l.entries[l.cursor], true
}

// Redo moves the cursor one entry forward and returns the entry now under
// it. It reports false, and does nothing, at the newest entry.
func (l *Log[S]) Redo() (S, bool) {
	if l.cursor >= len(l.entries)-1 {
		var zero S
		return zero, false
	}
	l.cursor++
	logging.Logger().Debug("history redo", "cursor", l.cursor)
	return l.entries[l.cursor], true
}

// Current returns the entry under the cursor. It reports false when the log
// is empty.
func (l *Log[S]) Current() (S, bool) {
	if l.cursor < 0 {
		var zero S
		return zero, false
	}
	return l.entries[l.cursor], true
}

// Reset discards every entry and seeds the log with s.
func (l *Log[S]) Reset(s S) {
	clear(l.entries)
	l.entries = l.entries[:0]
	l.cursor = -1
	l.Push(s)
}

// Len returns the number of entries.
func (l *Log[S]) Len() int { return len(l.entries) }

// Cursor returns the index of the current entry, or -1 when empty.
func (l *Log[S]) Cursor() int { return l.cursor }

// Cap returns the maximum number of entries.
func (l *Log[S]) Cap() int { return l.capacity }

// CanUndo reports whether Undo would move the cursor.
func (l *Log[S]) CanUndo() bool { return l.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (l *Log[S]) CanRedo() bool { return l.cursor < len(l.entries)-1 }
