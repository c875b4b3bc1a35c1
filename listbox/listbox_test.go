package listbox

import (
	"slices"
	"testing"
)

func labels(l *List) []string {
	var out []string
	for _, o := range l.Options() {
		out = append(out, o.Label)
	}
	return out
}

func abc() *List {
	return New(Options{}, NewOption("A"), NewOption("B"), NewOption("C"))
}

func TestList_AddAppendsUnselected(t *testing.T) {
	l := New(Options{})
	v := l.Version()

	l.Add(NewOption("reactjs.png"))
	if got, want := l.Len(), 1; got != want {
		t.Fatalf("len: got %d, want %d", got, want)
	}
	opt, ok := l.At(0)
	if !ok || opt != (Option{Label: "reactjs.png", Value: "reactjs.png"}) {
		t.Fatalf("at(0): got %v (%v)", opt, ok)
	}
	if l.IsSelected(0) {
		t.Fatalf("appended option must be unselected")
	}
	if got := l.Version(); got != v+1 {
		t.Fatalf("version: got %d, want %d", got, v+1)
	}

	l.Add(NewOption("vue.gif"))
	if got, want := labels(l), []string{"reactjs.png", "vue.gif"}; !slices.Equal(got, want) {
		t.Fatalf("labels: got %v, want %v", got, want)
	}
}

func TestList_RemoveSelected_MiddleOption(t *testing.T) {
	l := abc()
	l.SetSelected(1, true)

	removed := l.RemoveSelected()
	if got, want := labels(l), []string{"A", "C"}; !slices.Equal(got, want) {
		t.Fatalf("labels: got %v, want %v", got, want)
	}
	if len(removed) != 1 || removed[0].Label != "B" {
		t.Fatalf("removed: got %v, want [B]", removed)
	}
}

func TestList_RemoveSelected_AllSubsets(t *testing.T) {
	all := []string{"A", "B", "C", "D", "E"}
	for mask := 0; mask < 1<<len(all); mask++ {
		l := New(Options{})
		for _, s := range all {
			l.Add(NewOption(s))
		}
		var want, wantRemoved []string
		for i, s := range all {
			if mask&(1<<i) != 0 {
				l.SetSelected(i, true)
				wantRemoved = append(wantRemoved, s)
			} else {
				want = append(want, s)
			}
		}

		removed := l.RemoveSelected()
		if got := labels(l); !slices.Equal(got, want) {
			t.Fatalf("mask %05b: labels got %v, want %v", mask, got, want)
		}
		var gotRemoved []string
		for _, o := range removed {
			gotRemoved = append(gotRemoved, o.Label)
		}
		if !slices.Equal(gotRemoved, wantRemoved) {
			t.Fatalf("mask %05b: removed got %v, want %v", mask, gotRemoved, wantRemoved)
		}
		if sel := l.Selected(); len(sel) != 0 {
			t.Fatalf("mask %05b: selection after remove: got %v, want none", mask, sel)
		}
	}
}

func TestList_RemoveSelected_SecondCallIsNoOp(t *testing.T) {
	l := abc()
	l.SetSelected(0, true)
	l.SetSelected(2, true)

	_ = l.RemoveSelected()
	v := l.Version()
	before := labels(l)

	if removed := l.RemoveSelected(); removed != nil {
		t.Fatalf("second remove: got %v, want nil", removed)
	}
	if got := labels(l); !slices.Equal(got, before) {
		t.Fatalf("labels after second remove: got %v, want %v", got, before)
	}
	if got := l.Version(); got != v {
		t.Fatalf("version after no-op: got %d, want %d", got, v)
	}
}

func TestList_RemoveSelected_EmptyAndNoneSelected(t *testing.T) {
	empty := New(Options{})
	if removed := empty.RemoveSelected(); removed != nil {
		t.Fatalf("remove on empty list: got %v, want nil", removed)
	}
	if empty.Len() != 0 {
		t.Fatalf("empty list len: got %d, want 0", empty.Len())
	}

	l := abc()
	if removed := l.RemoveSelected(); removed != nil {
		t.Fatalf("remove with nothing selected: got %v, want nil", removed)
	}
	if got, want := labels(l), []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Fatalf("labels: got %v, want %v", got, want)
	}
	if _, ok := l.LastChange(); ok {
		t.Fatalf("no-op remove must not record a change")
	}
}

func TestList_Remove_OutOfRange(t *testing.T) {
	l := abc()
	if l.Remove(3) || l.Remove(-1) {
		t.Fatalf("out-of-range remove must report false")
	}
	if !l.Remove(0) {
		t.Fatalf("remove(0) must report true")
	}
	if got, want := labels(l), []string{"B", "C"}; !slices.Equal(got, want) {
		t.Fatalf("labels: got %v, want %v", got, want)
	}
}

func TestList_CursorClampsAfterRemoval(t *testing.T) {
	l := abc()
	l.SetCursor(10)
	if got, want := l.Cursor(), 2; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}

	l.SetSelected(1, true)
	l.SetSelected(2, true)
	_ = l.RemoveSelected()
	if got, want := l.Cursor(), 0; got != want {
		t.Fatalf("cursor after remove: got %d, want %d", got, want)
	}

	l.MoveCursor(-5)
	if got := l.Cursor(); got != 0 {
		t.Fatalf("cursor after move up: got %d, want 0", got)
	}

	_ = l.Remove(0)
	if got := l.Cursor(); got != 0 {
		t.Fatalf("cursor on empty list: got %d, want 0", got)
	}
}

func TestList_SelectionOps(t *testing.T) {
	l := abc()
	if !l.Toggle(1) {
		t.Fatalf("toggle must report change")
	}
	if l.SetSelected(1, true) {
		t.Fatalf("setting same flag must not report change")
	}
	l.SelectAll()
	if got, want := l.Selected(), []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Fatalf("selected: got %v, want %v", got, want)
	}
	v := l.Version()
	l.SelectAll()
	if l.Version() != v {
		t.Fatalf("select all twice must not bump version")
	}
	l.ClearSelection()
	if got := l.Selected(); len(got) != 0 {
		t.Fatalf("selected after clear: got %v, want none", got)
	}
	if got, want := l.SelectionSnapshot(), []bool{false, false, false}; !slices.Equal(got, want) {
		t.Fatalf("snapshot: got %v, want %v", got, want)
	}
}

func TestList_OnChange_FiresOncePerEffectiveChange(t *testing.T) {
	var changes []Change
	l := abc()
	l.OnChange(func(c Change) { changes = append(changes, c) })

	l.Add(NewOption("D"))
	l.SetSelected(1, true)
	l.SetSelected(3, true)
	_ = l.RemoveSelected()
	_ = l.RemoveSelected()

	if got, want := len(changes), 4; got != want {
		t.Fatalf("changes: got %d, want %d", got, want)
	}
	last := changes[3]
	if last.Kind != ChangeRemove {
		t.Fatalf("last kind: got %v, want %v", last.Kind, ChangeRemove)
	}
	if got, want := last.Indexes, []int{1, 3}; !slices.Equal(got, want) {
		t.Fatalf("removed indexes: got %v, want %v", got, want)
	}
	if last.VersionAfter != last.VersionBefore+1 {
		t.Fatalf("version delta: got %d -> %d", last.VersionBefore, last.VersionAfter)
	}
	if changes[1].Kind.Structural() {
		t.Fatalf("selection change must not be structural")
	}
}

func TestList_OnChange_CancelStopsNotifications(t *testing.T) {
	var first, second int
	l := abc()
	cancel := l.OnChange(func(Change) { first++ })
	l.OnChange(func(Change) { second++ })

	l.Add(NewOption("D"))
	cancel()
	cancel()
	l.Add(NewOption("E"))

	if first != 1 {
		t.Fatalf("cancelled observer calls: got %d, want 1", first)
	}
	if second != 2 {
		t.Fatalf("remaining observer calls: got %d, want 2", second)
	}
}
