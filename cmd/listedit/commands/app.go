package commands

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/listedit/widget"
)

// app hosts one list editor with a help line under it.
type app struct {
	editor widget.Model
	keys   widget.KeyMap
	quit   key.Binding
	help   help.Model
}

func newApp(editor widget.Model, keys widget.KeyMap) app {
	return app{
		editor: editor,
		keys:   keys,
		quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		help:   help.New(),
	}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, msg.Height-1)
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	bindings := append(a.keys.ShortHelp(), a.quit)
	return lipgloss.JoinVertical(lipgloss.Left, a.editor.View(), a.help.ShortHelpView(bindings))
}
