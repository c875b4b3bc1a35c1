package widget

import "github.com/iw2rmb/listedit/listbox"

// ChangeEvent reports the list contents after an add, remove, undo or redo.
type ChangeEvent struct {
	Version uint64
	Values  []string
	Change  listbox.Change
}

func buildChangeEvent(l *listbox.List, c listbox.Change) ChangeEvent {
	return ChangeEvent{
		Version: l.Version(),
		Values:  l.Values(),
		Change:  c,
	}
}

// UploadsChangedMsg tells widgets the upload directory changed. Widgets
// re-list their Source when they receive it.
type UploadsChangedMsg struct{}

// listingMsg carries the result of the directory read started by add.
type listingMsg struct {
	id    int
	input string
	names []string
	err   error
}

// refreshMsg carries a directory read that only refreshes suggestions.
type refreshMsg struct {
	id    int
	names []string
	err   error
}
