// Package button is a bordered single-glyph control.
package button

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	Label   string
	Color   lipgloss.TerminalColor
	Hidden  bool
	OnPress func()
}

func New(label string) Model {
	return Model{
		Label: label,
	}
}

// Press runs OnPress. Hidden buttons cannot be pressed.
func (m Model) Press() bool {
	if m.Hidden || m.OnPress == nil {
		return false
	}
	m.OnPress()
	return true
}

func (m Model) View() string {
	if m.Hidden {
		blank := strings.Repeat(" ", lipgloss.Width(m.Label))
		return lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Render(blank)
	}
	style := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if m.Color != nil {
		style = style.Foreground(m.Color)
	}
	return style.Render(m.Label)
}

func (m Model) Width() int {
	return lipgloss.Width(m.View())
}
