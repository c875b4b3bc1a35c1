package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the widget key bindings.
//
// Activate, Submit, Up, Down, Toggle, SelectAll and Delete only apply to the
// focused control. The rest are global while no alert is shown.
type KeyMap struct {
	NextFocus, PrevFocus key.Binding

	Submit   key.Binding
	Activate key.Binding

	Add, Remove key.Binding
	Undo, Redo  key.Binding

	Up, Down  key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Delete    key.Binding

	Dismiss key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),

		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Activate: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "press")),

		Add:    key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "add")),
		Remove: key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "remove selected")),
		Undo:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Delete:    key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "remove selected")),

		Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	}
}

// withDefaults fills every binding without keys from DefaultKeyMap. Use
// key.WithDisabled to turn a binding off.
func (km KeyMap) withDefaults() KeyMap {
	def := DefaultKeyMap()
	fill := func(b *key.Binding, d key.Binding) {
		if len(b.Keys()) == 0 {
			*b = d
		}
	}
	fill(&km.NextFocus, def.NextFocus)
	fill(&km.PrevFocus, def.PrevFocus)
	fill(&km.Submit, def.Submit)
	fill(&km.Activate, def.Activate)
	fill(&km.Add, def.Add)
	fill(&km.Remove, def.Remove)
	fill(&km.Undo, def.Undo)
	fill(&km.Redo, def.Redo)
	fill(&km.Up, def.Up)
	fill(&km.Down, def.Down)
	fill(&km.Toggle, def.Toggle)
	fill(&km.SelectAll, def.SelectAll)
	fill(&km.Delete, def.Delete)
	fill(&km.Dismiss, def.Dismiss)
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.NextFocus, km.Add, km.Remove, km.Toggle, km.Undo}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.NextFocus, km.PrevFocus, km.Submit, km.Activate},
		{km.Add, km.Remove, km.Undo, km.Redo},
		{km.Up, km.Down, km.Toggle, km.SelectAll, km.Delete},
	}
}
