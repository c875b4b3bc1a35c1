package listbox

import "slices"

// List is the list box state: options in display order, their selection
// flags and the highlighted position.
type List struct {
	items   []item
	cursor  int
	version uint64

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
	observers     []observer
	nextObserver  uint64
}

func New(opt Options, opts ...Option) *List {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 100
	}
	l := &List{opt: opt}
	if len(opts) > 0 {
		l.items = make([]item, 0, len(opts))
		for _, o := range opts {
			l.items = append(l.items, item{opt: o})
		}
	}
	return l
}

func (l *List) Len() int { return len(l.items) }

func (l *List) Version() uint64 { return l.version }

// At returns the option at position i.
func (l *List) At(i int) (Option, bool) {
	if i < 0 || i >= len(l.items) {
		return Option{}, false
	}
	return l.items[i].opt, true
}

// Options returns a copy of the options in display order.
func (l *List) Options() []Option {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]Option, len(l.items))
	for i, it := range l.items {
		out[i] = it.opt
	}
	return out
}

// Values returns the option values in display order.
func (l *List) Values() []string {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]string, len(l.items))
	for i, it := range l.items {
		out[i] = it.opt.Value
	}
	return out
}

// Add appends opt at the end of the list, unselected.
func (l *List) Add(opt Option) {
	prev := l.snapshot()
	change := l.beginChange(ChangeAdd)

	l.items = append(l.items, item{opt: opt})
	l.version++

	change.add(len(l.items)-1, opt)
	l.recordUndo(prev)
	l.commitChange(change)
}

// Remove deletes the option at position i. It reports false when i is out of
// range.
func (l *List) Remove(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	prev := l.snapshot()
	change := l.beginChange(ChangeRemove)

	opt := l.items[i].opt
	l.items = slices.Delete(l.items, i, i+1)
	l.cursor = l.clampCursor(l.cursor)
	l.version++

	change.add(i, opt)
	l.recordUndo(prev)
	l.commitChange(change)
	return true
}

// SelectionSnapshot returns one selection flag per position.
func (l *List) SelectionSnapshot() []bool {
	out := make([]bool, len(l.items))
	for i, it := range l.items {
		out[i] = it.selected
	}
	return out
}

// RemoveSelected removes every selected option and returns them in their
// original order.
//
// Selection is captured first, then positions are deleted from last to
// first so earlier indexes stay valid while the list shrinks.
func (l *List) RemoveSelected() []Option {
	selected := l.SelectionSnapshot()
	if !slices.Contains(selected, true) {
		return nil
	}

	prev := l.snapshot()
	change := l.beginChange(ChangeRemove)

	var removed []Option
	var indexes []int
	index := len(selected)
	for index > 0 {
		index--
		if !selected[index] {
			continue
		}
		removed = append(removed, l.items[index].opt)
		indexes = append(indexes, index)
		l.items = slices.Delete(l.items, index, index+1)
	}
	slices.Reverse(removed)
	slices.Reverse(indexes)

	l.cursor = l.clampCursor(l.cursor)
	l.version++

	for i := range removed {
		change.add(indexes[i], removed[i])
	}
	l.recordUndo(prev)
	l.commitChange(change)
	return removed
}

// Selected returns the selected positions in ascending order.
func (l *List) Selected() []int {
	var out []int
	for i, it := range l.items {
		if it.selected {
			out = append(out, i)
		}
	}
	return out
}

func (l *List) IsSelected(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	return l.items[i].selected
}

// SetSelected sets the selection flag at position i. It reports whether the
// flag changed.
func (l *List) SetSelected(i int, selected bool) bool {
	if i < 0 || i >= len(l.items) || l.items[i].selected == selected {
		return false
	}
	change := l.beginChange(ChangeSelection)
	l.items[i].selected = selected
	l.version++
	change.add(i, l.items[i].opt)
	l.commitChange(change)
	return true
}

func (l *List) Toggle(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	return l.SetSelected(i, !l.items[i].selected)
}

func (l *List) SelectAll() { l.setAll(true) }

func (l *List) ClearSelection() { l.setAll(false) }

func (l *List) setAll(selected bool) {
	change := l.beginChange(ChangeSelection)
	for i := range l.items {
		if l.items[i].selected == selected {
			continue
		}
		l.items[i].selected = selected
		change.add(i, l.items[i].opt)
	}
	if len(change.indexes) == 0 {
		return
	}
	l.version++
	l.commitChange(change)
}

// Cursor returns the highlighted position. It is 0 for an empty list.
func (l *List) Cursor() int { return l.cursor }

func (l *List) SetCursor(i int) {
	l.cursor = l.clampCursor(i)
}

func (l *List) MoveCursor(delta int) {
	l.SetCursor(l.cursor + delta)
}

func (l *List) clampCursor(i int) int {
	return clampInt(i, 0, len(l.items)-1)
}
