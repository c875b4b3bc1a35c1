package widget

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	graphemeutil "github.com/iw2rmb/listedit/internal/grapheme"
	"github.com/iw2rmb/listedit/listbox"
)

const emptyNameAlert = "Please enter the name."

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// Model is a Bubble Tea list editor component.
type Model struct {
	id  int
	cfg Config

	list  *listbox.List
	input textinput.Model

	focus   Focus
	focused bool

	pending   bool
	spinner   spinner.Model
	alert     string
	available []string

	width    int
	viewport viewport.Model

	lastVersion uint64
	lastCursor  int

	detach func()
}

func New(cfg Config) Model {
	cfg.KeyMap = cfg.KeyMap.withDefaults()

	l := cfg.List
	if l == nil {
		l = listbox.New(listbox.Options{HistoryLimit: cfg.HistoryLimit})
	}

	in := textinput.New()
	in.Placeholder = cfg.Placeholder
	in.Prompt = "› "
	in.ShowSuggestions = cfg.Suggest
	in.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("right"))
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Style.Spinner

	m := Model{
		id:       nextID(),
		cfg:      cfg,
		list:     l,
		input:    in,
		focus:    FocusInput,
		focused:  true,
		spinner:  sp,
		viewport: viewport.New(0, 0),
	}

	onChange := cfg.OnChange
	log := cfg.logger()
	m.detach = l.OnChange(func(c listbox.Change) {
		if !c.Kind.Structural() {
			return
		}
		log.Debug("list changed", "kind", c.Kind.String(), "version", c.VersionAfter, "options", l.Len())
		if onChange != nil {
			onChange(buildChangeEvent(l, c))
		}
	})

	m.lastVersion = l.Version()
	m.lastCursor = l.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, refreshCmd(m.id, m.cfg.Source))
}

func (m Model) List() *listbox.List { return m.list }

// Close stops forwarding changes of the list to Config.OnChange. Call it
// before building another Model over the same List.
func (m Model) Close() {
	if m.detach != nil {
		m.detach()
	}
}

// Value returns the current input text.
func (m Model) Value() string { return m.input.Value() }

func (m Model) SetValue(s string) Model {
	m.input.SetValue(s)
	return m
}

// FocusTarget returns the focused control.
func (m Model) FocusTarget() Focus { return m.focus }

// InputFocused reports whether keystrokes currently go to the text input.
func (m Model) InputFocused() bool {
	return m.focused && m.focus == FocusInput && m.input.Focused()
}

// Alert returns the text of the alert being shown.
func (m Model) Alert() (string, bool) {
	return m.alert, m.alert != ""
}

// Pending reports whether an add is waiting for the directory read.
func (m Model) Pending() bool { return m.pending }

// Available returns the names from the latest directory read.
func (m Model) Available() []string {
	return append([]string(nil), m.available...)
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	// Input row and hint row.
	h := height - 2
	if h < 0 {
		h = 0
	}
	m.width = width
	m.input.Width = max(width-graphemeutil.StringWidth(m.input.Prompt)-buttonsWidth-2, 1)
	m.viewport.Width = width
	m.viewport.Height = h

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() (Model, tea.Cmd) {
	if m.focused {
		return m, nil
	}
	m.focused = true
	var cmd tea.Cmd
	if m.focus == FocusInput {
		cmd = m.input.Focus()
	}
	m.rebuildContent()
	return m, cmd
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.input.Blur()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetFocus moves focus to f.
func (m Model) SetFocus(f Focus) (Model, tea.Cmd) {
	if f >= focusCount {
		return m, nil
	}
	m.focus = f
	var cmd tea.Cmd
	if f == FocusInput && m.focused {
		cmd = m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.rebuildContent()
	return m, cmd
}

func (m *Model) syncFromList() (cursorChanged bool) {
	ver := m.list.Version()
	cur := m.list.Cursor()
	if ver == m.lastVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderList())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	cur := m.list.Cursor()
	y := m.viewport.YOffset
	if cur < y {
		m.viewport.SetYOffset(cur)
		return
	}
	if cur >= y+h {
		m.viewport.SetYOffset(cur - h + 1)
	}
}
