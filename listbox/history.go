package listbox

type listSnapshot struct {
	items  []item
	cursor int
}

type historyState struct {
	undo []listSnapshot
	redo []listSnapshot
}

func (l *List) snapshot() listSnapshot {
	return listSnapshot{
		items:  append([]item(nil), l.items...),
		cursor: l.cursor,
	}
}

func (l *List) restore(s listSnapshot) {
	l.items = append([]item(nil), s.items...)
	l.cursor = l.clampCursor(s.cursor)
}

func (l *List) recordUndo(prev listSnapshot) {
	limit := l.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	l.hist.undo = append(l.hist.undo, prev)
	if len(l.hist.undo) > limit {
		l.hist.undo = l.hist.undo[len(l.hist.undo)-limit:]
	}
	l.hist.redo = nil
}

func (l *List) CanUndo() bool { return len(l.hist.undo) > 0 }

func (l *List) CanRedo() bool { return len(l.hist.redo) > 0 }

// Undo reverts the most recent add or remove. Selection-only changes are not
// recorded.
func (l *List) Undo() bool {
	if len(l.hist.undo) == 0 {
		return false
	}

	cur := l.snapshot()
	change := l.beginChange(ChangeUndo)

	i := len(l.hist.undo) - 1
	prev := l.hist.undo[i]
	l.hist.undo = l.hist.undo[:i]
	l.hist.redo = append(l.hist.redo, cur)

	l.restore(prev)
	l.version++
	l.commitChange(change)
	return true
}

func (l *List) Redo() bool {
	if len(l.hist.redo) == 0 {
		return false
	}

	cur := l.snapshot()
	change := l.beginChange(ChangeRedo)

	i := len(l.hist.redo) - 1
	next := l.hist.redo[i]
	l.hist.redo = l.hist.redo[:i]
	l.hist.undo = append(l.hist.undo, cur)

	l.restore(next)
	l.version++
	l.commitChange(change)
	return true
}
