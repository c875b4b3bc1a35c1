package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	graphemeutil "github.com/iw2rmb/listedit/internal/grapheme"
)

const (
	addLabel    = "[ Add ]"
	removeLabel = "[ Remove ]"

	// Cells taken by both buttons and the gaps before them.
	buttonsWidth = len(addLabel) + len(removeLabel) + 2

	markerSelected   = "[x] "
	markerUnselected = "[ ] "
	emptyListText    = "(no options)"
)

func (m Model) View() string {
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderControls(),
		m.viewport.View(),
		m.renderHint(),
	)
	if m.alert == "" {
		return base
	}
	return overlay.Composite(m.renderAlert(), base, overlay.Center, overlay.Center, 0, 0)
}

func (m Model) renderControls() string {
	st := m.cfg.Style

	input := st.Input
	if m.focused && m.focus == FocusInput {
		input = st.InputFocused
	}

	return input.Render(m.input.View()) +
		" " + m.renderButton(addLabel, FocusAdd) +
		" " + m.renderButton(removeLabel, FocusRemove)
}

func (m Model) renderButton(label string, target Focus) string {
	if m.focused && m.focus == target {
		return m.cfg.Style.ButtonFocused.Render(label)
	}
	return m.cfg.Style.Button.Render(label)
}

func (m Model) renderHint() string {
	st := m.cfg.Style
	if m.pending {
		return m.spinner.View() + st.Hint.Render(" reading uploads…")
	}
	if len(m.available) == 0 {
		return ""
	}
	hint := "uploads: " + strings.Join(m.available, ", ")
	if m.width > 0 {
		hint = graphemeutil.Truncate(hint, m.width, "…")
	}
	return st.Hint.Render(hint)
}

// renderList returns one line per option, cursor row and selection styled.
func (m Model) renderList() string {
	st := m.cfg.Style
	n := m.list.Len()
	if n == 0 {
		return st.Empty.Render(emptyListText)
	}

	labelWidth := 0
	if m.viewport.Width > 0 {
		labelWidth = max(m.viewport.Width-len(markerUnselected), 1)
	}

	cursor := m.list.Cursor()
	showCursor := m.focused && m.focus == FocusList

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		opt, _ := m.list.At(i)
		label := opt.Label
		if labelWidth > 0 {
			label = graphemeutil.Truncate(label, labelWidth, "…")
		}

		line := markerUnselected + label
		style := st.Option
		if m.list.IsSelected(i) {
			line = markerSelected + label
			style = st.OptionSelected
		}
		if showCursor && i == cursor {
			style = style.Inherit(st.OptionCursor)
		}
		out = append(out, style.Render(line))
	}
	return strings.Join(out, "\n")
}

func (m Model) renderAlert() string {
	help := "enter to dismiss"
	if keys := m.cfg.KeyMap.Dismiss.Help().Key; keys != "" {
		help = keys + " to dismiss"
	}
	return m.cfg.Style.Alert.Render(m.alert + "\n\n" + help)
}
