package widget

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/listedit/uploads"
)

func listCmd(id int, src uploads.Lister, input string) tea.Cmd {
	return func() tea.Msg {
		names, err := src.List(context.Background())
		return listingMsg{id: id, input: input, names: names, err: err}
	}
}

func refreshCmd(id int, src uploads.Lister) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		names, err := src.List(context.Background())
		return refreshMsg{id: id, names: names, err: err}
	}
}
