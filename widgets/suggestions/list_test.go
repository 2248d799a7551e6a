package suggestions

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, rows []string) (*List, *[]string) {
	t.Helper()
	var activated []string
	l := NewList()
	l.SetSize(20, 5)
	l.Render(rows, func(v string) {
		activated = append(activated, v)
	})
	return l, &activated
}

func TestListRenderReplacesRows(t *testing.T) {
	l, _ := newTestList(t, []string{"apple", "banana", "cherry"})
	l.Focus()
	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, l.Index())

	l.Render([]string{"kiwi"}, nil)
	assert.Equal(t, []string{"kiwi"}, l.Items())
	assert.Equal(t, 0, l.Index())
}

func TestListEnterActivatesHighlightedRow(t *testing.T) {
	l, activated := newTestList(t, []string{"apple", "banana"})
	l.Focus()

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"banana"}, *activated)
}

func TestListIgnoresKeysWhenBlurred(t *testing.T) {
	l, activated := newTestList(t, []string{"apple", "banana"})

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, l.Index())
	assert.Empty(t, *activated)
}

func TestListMouseActivatesRow(t *testing.T) {
	l, activated := newTestList(t, []string{"apple", "banana", "Apple Pie"})

	l.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	l.Update(tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	l.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, []string{"Apple Pie"}, *activated)
	assert.Equal(t, 2, l.Index())
}

func TestListMouseActivatesRowOnLaterPage(t *testing.T) {
	rows := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"}
	l, activated := newTestList(t, rows)
	l.Focus()

	l.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 5, l.Index())

	// the second page holds three rows
	l.Update(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Empty(t, *activated)

	l.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	l.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []string{"a6", "a8"}, *activated)
	assert.Equal(t, 7, l.Index())
}

func TestListEmptyViewIsBlank(t *testing.T) {
	l, _ := newTestList(t, nil)
	assert.Empty(t, l.View())
	assert.Nil(t, l.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestListTruncatesWideRows(t *testing.T) {
	l, _ := newTestList(t, []string{strings.Repeat("x", 40)})
	view := l.View()
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, strings.Repeat("x", 40))
}
