package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flygrounder/persistentsearch/internal/config"
	"github.com/flygrounder/persistentsearch/internal/source"
	"github.com/flygrounder/persistentsearch/widgets/persistentsearch"
)

var quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

type searchRecord struct {
	value string
	at    time.Time
}

type model struct {
	cfg         config.Config
	width       int
	height      int
	search      *persistentsearch.Model
	watcher     *source.Watcher
	initCmd     tea.Cmd
	history     []searchRecord
	historyView viewport.Model
	help        help.Model
	backPressed bool
	now         func() time.Time
}

func newModel(cfg config.Config) (*model, error) {
	attrs := persistentsearch.DefaultAttrs()
	if cfg.Attrs != "" {
		attrs = persistentsearch.LoadAttrs(cfg.Attrs)
	}
	if cfg.Hint != "" {
		attrs.Hint = cfg.Hint
	}
	attrs.MaxSuggestions = cfg.MaxSuggestions

	m := &model{
		cfg:         cfg,
		search:      persistentsearch.New(attrs),
		historyView: viewport.New(0, 0),
		help:        help.New(),
		now:         time.Now,
	}
	m.search.SetOnSearchListener(m.onSearch)
	m.search.SetBackButtonClickListener(func() {
		m.backPressed = true
	})

	if cfg.Suggestions != "" {
		items, err := source.Load(cfg.Suggestions)
		if err != nil {
			return nil, err
		}
		m.initCmd = m.search.SetSuggestions(items)
		slog.Info("loaded suggestions", "path", cfg.Suggestions, "count", len(items))
	}
	if cfg.Watch {
		watcher, err := source.NewWatcher(cfg.Suggestions)
		if err != nil {
			return nil, err
		}
		m.watcher = watcher
	}
	return m, nil
}

// Close stops watching the suggestions file.
func (m *model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

func (m *model) onSearch(value string) {
	slog.Info("search committed", "value", value)
	m.history = append(m.history, searchRecord{value: value, at: m.now()})
	m.historyView.SetContent(m.renderHistory())
	m.historyView.GotoBottom()
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.initCmd, m.search.Init(), m.search.Focus()}
	m.initCmd = nil
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	globalCmd := m.handleGlobalEvents(msg)
	if globalCmd != nil {
		return m, globalCmd
	}

	cmd := m.search.Update(msg)
	if m.backPressed {
		return m, tea.Quit
	}

	// the suggestion list grows and shrinks the search box
	m.resize()

	var viewCmd tea.Cmd
	if _, ok := msg.(tea.KeyMsg); !ok {
		m.historyView, viewCmd = m.historyView.Update(msg)
	}
	return m, tea.Batch(cmd, viewCmd)
}

func (m *model) handleGlobalEvents(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case source.ChangedMsg:
		cmd := m.reload(msg.Path)
		m.resize()
		if m.watcher != nil {
			cmd = tea.Batch(cmd, m.watcher.Next())
		}
		return cmd
	case source.WatchErrorMsg:
		slog.Error("stopped watching suggestions", "error", msg.Err)
		return nil
	}
	return nil
}

func (m *model) reload(path string) tea.Cmd {
	items, err := source.Load(path)
	if err != nil {
		slog.Error("failed to reload suggestions", "path", path, "error", err)
		return nil
	}
	cmd := m.search.SetSuggestions(items)
	slog.Info("reloaded suggestions", "path", path, "count", len(items))
	return cmd
}

func (m *model) resize() {
	m.search.SetWidth(m.width)
	m.search.SetOrigin(0, 0)
	m.historyView.Width = max(0, m.width-2)
	m.historyView.Height = max(1, m.height-2-lipgloss.Height(m.search.View())-lipgloss.Height(m.renderStatusBar()))
}

func (m *model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.search.View(), m.renderHistoryView(), m.renderStatusBar())
}

func (m *model) renderHistoryView() string {
	style := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	return style.Render(m.historyView.View())
}

func (m *model) renderHistory() string {
	var b strings.Builder
	for i, r := range m.history {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s", r.at.Format(time.TimeOnly), r.value)
	}
	return b.String()
}

func (m *model) renderStatusBar() string {
	style := lipgloss.NewStyle().Width(max(0, m.width-2)).Border(lipgloss.NormalBorder())
	return style.Render(m.help.ShortHelpView(append(m.search.KeyMap.ShortHelp(), quitKey)))
}
