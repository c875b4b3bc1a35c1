package widget

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/listedit/listbox"
	"github.com/iw2rmb/listedit/uploads"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.afterUpdate()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncFromList()
		return m, cmd
	case listingMsg:
		if msg.id != m.id {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.finishAdd(msg)
		m.afterUpdate()
		return m, cmd
	case refreshMsg:
		if msg.id != m.id {
			return m, nil
		}
		if msg.err != nil {
			m.cfg.logger().Warn("refresh uploads", "error", msg.err)
			return m, nil
		}
		m.setAvailable(msg.names)
		return m, nil
	case UploadsChangedMsg:
		return m, refreshCmd(m.id, m.cfg.Source)
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		// Cursor blink and anything else the input understands.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.afterUpdate()
		return m, cmd
	}
}

func (m *Model) afterUpdate() {
	if m.syncFromList() {
		m.followCursor()
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap

	// A shown alert swallows every key until dismissed.
	if m.alert != "" {
		if key.Matches(msg, km.Dismiss) {
			m.alert = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.NextFocus):
		return m.SetFocus(m.focus.next())
	case key.Matches(msg, km.PrevFocus):
		return m.SetFocus(m.focus.prev())
	case key.Matches(msg, km.Add):
		return m.add()
	case key.Matches(msg, km.Remove):
		return m.remove(), nil
	case key.Matches(msg, km.Undo):
		_ = m.list.Undo()
		return m, nil
	case key.Matches(msg, km.Redo):
		_ = m.list.Redo()
		return m, nil
	}

	switch m.focus {
	case FocusInput:
		if key.Matches(msg, km.Submit) {
			return m.add()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case FocusAdd:
		if key.Matches(msg, km.Activate) {
			return m.add()
		}

	case FocusRemove:
		if key.Matches(msg, km.Activate) {
			return m.remove(), nil
		}

	case FocusList:
		switch {
		case key.Matches(msg, km.Up):
			m.list.MoveCursor(-1)
		case key.Matches(msg, km.Down):
			m.list.MoveCursor(1)
		case key.Matches(msg, km.Toggle):
			m.list.Toggle(m.list.Cursor())
		case key.Matches(msg, km.SelectAll):
			m.list.SelectAll()
		case key.Matches(msg, km.Delete):
			return m.remove(), nil
		}
	}
	return m, nil
}

// add validates the input and starts the directory read. The option is only
// appended once the read resolves in finishAdd.
func (m Model) add() (Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	input := m.input.Value()
	if input == "" {
		return m.raise(emptyNameAlert), nil
	}
	if m.cfg.Source == nil {
		return m.raise("No upload directory configured."), nil
	}

	m.pending = true
	return m, tea.Batch(listCmd(m.id, m.cfg.Source, input), m.spinner.Tick)
}

func (m Model) finishAdd(msg listingMsg) (Model, tea.Cmd) {
	m.pending = false
	log := m.cfg.logger()

	if msg.err != nil {
		log.Warn("read uploads", "input", msg.input, "error", msg.err)
		return m.raise(fmt.Sprintf("Could not read uploads: %v", msg.err)), nil
	}
	m.setAvailable(msg.names)

	name, err := uploads.Resolve(msg.names, msg.input)
	if err != nil {
		log.Info("resolve upload", "input", msg.input, "error", err)
		if errors.Is(err, uploads.ErrAmbiguous) {
			return m.raise(fmt.Sprintf("%q matches more than one upload.", msg.input)), nil
		}
		return m.raise(fmt.Sprintf("No upload named %q.", msg.input)), nil
	}

	m.list.Add(listbox.NewOption(name))
	m.list.SetCursor(m.list.Len() - 1)

	m.input.SetValue("")
	return m.SetFocus(FocusInput)
}

func (m Model) remove() Model {
	removed := m.list.RemoveSelected()
	if len(removed) > 0 {
		m.cfg.logger().Debug("removed options", "count", len(removed))
	}
	return m
}

func (m Model) raise(text string) Model {
	m.alert = text
	if m.cfg.OnAlert != nil {
		m.cfg.OnAlert(text)
	}
	return m
}

func (m *Model) setAvailable(names []string) {
	m.available = append([]string(nil), names...)
	if m.cfg.Suggest {
		m.input.SetSuggestions(m.Available())
	}
}
