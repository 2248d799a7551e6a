package suggestions

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type item string

func (i item) FilterValue() string {
	return string(i)
}

var _ list.Item = item("")

const cursorPrefix = ">"

type itemDelegate struct {
	focused bool
}

func (i itemDelegate) Height() int {
	return 1
}

func (i itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(item)
	if !ok {
		return
	}
	width := m.Width() - runewidth.StringWidth(cursorPrefix)
	text := string(it)
	if width > 0 {
		text = runewidth.Truncate(text, width, "…")
	}
	var res string
	if i.focused && m.Index() == index {
		res = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render(cursorPrefix + text)
	} else {
		res = " " + text
	}
	_, _ = w.Write([]byte(res))
}

func (i itemDelegate) Spacing() int {
	return 0
}

func (i itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

var _ list.ItemDelegate = itemDelegate{}
