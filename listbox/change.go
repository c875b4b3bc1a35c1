package listbox

import "slices"

// ChangeKind identifies the mutation a Change describes.
type ChangeKind uint8

const (
	ChangeAdd ChangeKind = iota
	ChangeRemove
	ChangeSelection
	ChangeUndo
	ChangeRedo
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeSelection:
		return "selection"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Structural reports whether the change altered the options themselves rather
// than only their selection.
func (k ChangeKind) Structural() bool {
	return k != ChangeSelection
}

// Change is a versioned record of one effective mutation.
//
// For adds, Indexes are positions after the mutation. For removes and
// selection changes they are positions before it. Undo and redo carry no
// indexes.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	Indexes       []int
	Options       []Option
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	indexes       []int
	options       []Option
}

func (cb *changeBuilder) add(i int, opt Option) {
	cb.indexes = append(cb.indexes, i)
	cb.options = append(cb.options, opt)
}

// LastChange returns the most recent effective change.
func (l *List) LastChange() (Change, bool) {
	if !l.hasLastChange {
		return Change{}, false
	}
	return cloneChange(l.lastChange), true
}

// OnChange registers fn to be called after every effective change. The
// returned func unregisters fn and may be called more than once.
func (l *List) OnChange(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	l.nextObserver++
	id := l.nextObserver
	l.observers = append(l.observers, observer{id: id, fn: fn})
	return func() {
		l.observers = slices.DeleteFunc(l.observers, func(o observer) bool { return o.id == id })
	}
}

type observer struct {
	id uint64
	fn func(Change)
}

func cloneChange(in Change) Change {
	out := in
	out.Indexes = append([]int(nil), in.Indexes...)
	out.Options = append([]Option(nil), in.Options...)
	return out
}

func (l *List) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{kind: kind, versionBefore: l.version}
}

func (l *List) commitChange(cb changeBuilder) {
	if l.version == cb.versionBefore {
		return
	}
	l.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  l.version,
		Indexes:       append([]int(nil), cb.indexes...),
		Options:       append([]Option(nil), cb.options...),
	}
	l.hasLastChange = true
	for _, o := range slices.Clone(l.observers) {
		o.fn(cloneChange(l.lastChange))
	}
}
