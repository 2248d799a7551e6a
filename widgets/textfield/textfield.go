package textfield

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	hasFocus bool
	input    textinput.Model
}

func New(hint string) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = hint
	return Model{
		input: input,
	}
}

func (m Model) View() string {
	return m.getStyle().Render(m.input.View())
}

// Update forwards msg to the input while focused. Keys the host cares
// about (enter, esc) are left for the caller to interpret.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.hasFocus {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) Value() string {
	return m.input.Value()
}

func (m *Model) SetValue(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

func (m Model) Hint() string {
	return m.input.Placeholder
}

func (m *Model) SetHint(hint string) {
	m.input.Placeholder = hint
}

func (m *Model) Focus() tea.Cmd {
	m.hasFocus = true
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.hasFocus = false
	m.input.Blur()
}

func (m Model) Focused() bool {
	return m.hasFocus
}

func (m *Model) SetWidth(width int) {
	const cursorWidth = 1
	m.input.Width = max(1, width-m.getStyle().GetHorizontalBorderSize()-cursorWidth)
}

func (m *Model) getStyle() lipgloss.Style {
	var color lipgloss.TerminalColor
	if m.hasFocus {
		color = lipgloss.Color("#ff0000")
	}
	return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(color)
}
