package history

import "testing"

type state struct{ id int }

func pushN(l *Log[*state], from, n int) []*state {
	var out []*state
	for i := from; i < from+n; i++ {
		s := &state{id: i}
		l.Push(s)
		out = append(out, s)
	}
	return out
}

func TestEmptyLog(t *testing.T) {
	l := New[*state](5)
	if _, ok := l.Current(); ok {
		t.Error("Current on an empty log should report false")
	}
	if _, ok := l.Undo(); ok {
		t.Error("Undo on an empty log should report false")
	}
	if _, ok := l.Redo(); ok {
		t.Error("Redo on an empty log should report false")
	}
	if l.Cursor() != -1 {
		t.Errorf("Cursor() = %d, want -1", l.Cursor())
	}
}

func TestDefaultCapacity(t *testing.T) {
	if got := New[int](0).Cap(); got != DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", got, DefaultCapacity)
	}
}

func TestPushMovesCursorToEnd(t *testing.T) {
	l := New[*state](10)
	states := pushN(l, 0, 4)

	if l.Len() != 4 || l.Cursor() != 3 {
		t.Errorf("Len/Cursor = %d/%d, want 4/3", l.Len(), l.Cursor())
	}
	if cur, _ := l.Current(); cur != states[3] {
		t.Errorf("Current() = %v, want %v", cur, states[3])
	}
}

func TestCapacityEviction(t *testing.T) {
	const capacity = 50
	l := New[*state](capacity)
	states := pushN(l, 0, capacity+5)

	if l.Len() != capacity {
		t.Errorf("Len() = %d, want %d", l.Len(), capacity)
	}
	if l.Cursor() != capacity-1 {
		t.Errorf("Cursor() = %d, want %d", l.Cursor(), capacity-1)
	}

	// Walk back to the oldest surviving entry: it must be the sixth push.
	var oldest *state
	for {
		s, ok := l.Undo()
		if !ok {
			break
		}
		oldest = s
	}
	if oldest != states[5] {
		t.Errorf("oldest entry = %v, want %v", oldest, states[5])
	}
}

func TestUndoRedoInverse(t *testing.T) {
	l := New[*state](10)
	pushN(l, 0, 6)
	l.Undo()
	l.Undo()

	before := l.Cursor()
	beforeState, _ := l.Current()

	if _, ok := l.Undo(); !ok {
		t.Fatal("Undo failed")
	}
	s, ok := l.Redo()
	if !ok {
		t.Fatal("Redo failed")
	}
	if l.Cursor() != before {
		t.Errorf("Cursor() = %d, want %d", l.Cursor(), before)
	}
	if s != beforeState {
		t.Errorf("Redo returned %v, want the same reference %v", s, beforeState)
	}
}

func TestUndoAtStartIsNoop(t *testing.T) {
	l := New[*state](10)
	first := pushN(l, 0, 1)[0]

	if _, ok := l.Undo(); ok {
		t.Error("Undo at the oldest entry should report false")
	}
	if cur, _ := l.Current(); cur != first || l.Cursor() != 0 {
		t.Error("Undo at the oldest entry moved the cursor")
	}
}

func TestRedoAtEndIsNoop(t *testing.T) {
	l := New[*state](10)
	pushN(l, 0, 3)
	if _, ok := l.Redo(); ok {
		t.Error("Redo at the newest entry should report false")
	}
	if l.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", l.Cursor())
	}
}

func TestPushPrunesRedoBranch(t *testing.T) {
	l := New[*state](10)
	states := pushN(l, 0, 5)
	l.Undo()
	l.Undo()

	fresh := &state{id: 99}
	l.Push(fresh)

	if _, ok := l.Redo(); ok {
		t.Error("Redo after a push should be a no-op")
	}
	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
	if cur, _ := l.Current(); cur != fresh {
		t.Errorf("Current() = %v, want %v", cur, fresh)
	}
	if prev, _ := l.Undo(); prev != states[2] {
		t.Errorf("Undo() = %v, want %v", prev, states[2])
	}
}

func TestEvictionAfterUndo(t *testing.T) {
	l := New[*state](3)
	pushN(l, 0, 3)
	l.Undo()
	l.Undo()
	// Cursor is at the oldest entry; pushing prunes two and stays in bounds.
	pushN(l, 10, 1)

	if l.Len() != 2 || l.Cursor() != 1 {
		t.Errorf("Len/Cursor = %d/%d, want 2/1", l.Len(), l.Cursor())
	}
}

func TestReset(t *testing.T) {
	l := New[*state](10)
	pushN(l, 0, 7)
	seed := &state{id: 42}
	l.Reset(seed)

	if l.Len() != 1 || l.Cursor() != 0 {
		t.Errorf("Len/Cursor = %d/%d, want 1/0", l.Len(), l.Cursor())
	}
	if l.CanUndo() || l.CanRedo() {
		t.Error("a freshly reset log has nothing to undo or redo")
	}
	if cur, _ := l.Current(); cur != seed {
		t.Errorf("Current() = %v, want %v", cur, seed)
	}
}
