package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flygrounder/persistentsearch/internal/config"
	"github.com/flygrounder/persistentsearch/internal/source"
)

func newTestModel(t *testing.T, suggestions string) *model {
	t.Helper()
	cfg := config.Config{
		Hint:           "Search fruit",
		LogLevel:       "info",
		MaxSuggestions: 5,
	}
	if suggestions != "" {
		cfg.Suggestions = filepath.Join(t.TempDir(), "fruit.txt")
		require.NoError(t, os.WriteFile(cfg.Suggestions, []byte(suggestions), 0o644))
	}
	m, err := newModel(cfg)
	require.NoError(t, err)
	m.now = func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) }
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestCommittedSearchIsListed(t *testing.T) {
	m := newTestModel(t, "apple\nbanana\nApple Pie\n")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("app")})
	assert.Equal(t, []string{"apple", "Apple Pie"}, m.search.Suggestions())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.history, 1)
	assert.Equal(t, "app", m.history[0].value)
	assert.Empty(t, m.search.Suggestions())
	assert.Contains(t, m.View(), "15:04:05  app")
}

func TestHintFromConfig(t *testing.T) {
	m := newTestModel(t, "")
	assert.Equal(t, "Search fruit", m.search.Hint())
}

func TestBackQuits(t *testing.T) {
	m := newTestModel(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestReloadOnChange(t *testing.T) {
	m := newTestModel(t, "apple\n")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("an")})
	assert.Empty(t, m.search.Suggestions())

	require.NoError(t, os.WriteFile(m.cfg.Suggestions, []byte("apple\nbanana\n"), 0o644))
	_, cmd := m.Update(source.ChangedMsg{Path: m.cfg.Suggestions})
	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"banana"}, m.search.Suggestions())
}

func TestFailedReloadKeepsSuggestions(t *testing.T) {
	m := newTestModel(t, "apple\n")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ap")})

	require.NoError(t, os.Remove(m.cfg.Suggestions))
	m.Update(source.ChangedMsg{Path: m.cfg.Suggestions})
	assert.Equal(t, []string{"apple"}, m.search.Suggestions())
}

func TestReloadReturnsFocusToInput(t *testing.T) {
	m := newTestModel(t, "apple\napricot\n")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ap")})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, m.search.ListFocused())

	require.NoError(t, os.WriteFile(m.cfg.Suggestions, []byte("banana\n"), 0o644))
	_, cmd := m.Update(source.ChangedMsg{Path: m.cfg.Suggestions})
	assert.Empty(t, m.search.Suggestions())
	assert.False(t, m.search.ListFocused())
	assert.True(t, m.search.Focused())
	// the input's cursor blink must reach the runtime
	assert.NotNil(t, cmd)
}

func TestWatchKeepsWatchingAfterFailedReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\n"), 0o644))
	m, err := newModel(config.Config{
		LogLevel:       "info",
		MaxSuggestions: 5,
		Suggestions:    path,
		Watch:          true,
	})
	require.NoError(t, err)
	defer m.Close()
	require.NotNil(t, m.watcher)

	require.NoError(t, os.Remove(path))
	_, cmd := m.Update(source.ChangedMsg{Path: path})
	assert.NotNil(t, cmd)
}

func TestMissingSuggestionsFile(t *testing.T) {
	_, err := newModel(config.Config{
		LogLevel:       "info",
		MaxSuggestions: 5,
		Suggestions:    filepath.Join(t.TempDir(), "missing.txt"),
	})
	assert.Error(t, err)
}
