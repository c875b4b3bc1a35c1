package widget

import "github.com/charmbracelet/lipgloss"

// Style controls the widget's rendering.
type Style struct {
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Option         lipgloss.Style
	OptionCursor   lipgloss.Style
	OptionSelected lipgloss.Style
	Empty          lipgloss.Style

	Hint    lipgloss.Style
	Spinner lipgloss.Style
	Alert   lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default style on r.
func NewStyle(r *lipgloss.Renderer) Style {
	dim := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Input:        r.NewStyle(),
		InputFocused: r.NewStyle().Foreground(lipgloss.Color("255")),

		Button:        r.NewStyle().Foreground(lipgloss.Color("250")),
		ButtonFocused: r.NewStyle().Reverse(true).Bold(true),

		Option:         r.NewStyle(),
		OptionCursor:   r.NewStyle().Background(lipgloss.Color("237")),
		OptionSelected: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Empty:          dim.Italic(true),

		Hint:    dim,
		Spinner: r.NewStyle().Foreground(lipgloss.Color("69")),
		Alert: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2),
	}
}
