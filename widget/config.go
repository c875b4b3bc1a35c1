package widget

import (
	"log/slog"

	"github.com/iw2rmb/listedit/listbox"
	"github.com/iw2rmb/listedit/uploads"
)

// Config configures the widget Model.
type Config struct {
	// Source is the directory read used by add. A nil Source makes every add
	// fail with an alert.
	Source uploads.Lister

	// List is the list box state. When nil, New creates an empty list with
	// HistoryLimit. A List shared with an earlier Model keeps notifying that
	// Model until its Close is called.
	List         *listbox.List
	HistoryLimit int

	Placeholder string
	// Suggest completes the input from the names Source returned last.
	Suggest bool

	// KeyMap bindings left without keys fall back to DefaultKeyMap.
	KeyMap KeyMap
	Style  Style

	// OnChange is called after every add, remove, undo or redo.
	OnChange func(ChangeEvent)
	// OnAlert is called once each time an alert is raised.
	OnAlert func(text string)

	Logger *slog.Logger
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}
