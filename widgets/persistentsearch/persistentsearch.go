// Package persistentsearch is a search box with a live-filtered suggestion
// list underneath it.
//
// Every change to the text re-filters the suggestions. A search is committed
// by pressing enter, activating a suggestion, or calling SetText. Committing
// always hides the suggestions before the search listener runs.
package persistentsearch

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flygrounder/persistentsearch/widgets/button"
	"github.com/flygrounder/persistentsearch/widgets/fade"
	"github.com/flygrounder/persistentsearch/widgets/suggestions"
	"github.com/flygrounder/persistentsearch/widgets/textfield"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type Model struct {
	KeyMap KeyMap

	attrs     Attrs
	input     textfield.Model
	back      button.Model
	clear     button.Model
	clearFade fade.Model
	presenter *suggestions.Presenter
	rows      *suggestions.List

	clearVisible bool
	hasFocus     bool
	focus        focusArea
	width        int
	originX      int
	originY      int

	onSearch func(string)
	onBack   func()

	// commands produced by callbacks while handling a message; only the
	// outermost call (depth 1) returns them
	pending []tea.Cmd
	depth   int
}

func New(attrs Attrs) *Model {
	attrs = attrs.withDefaults()
	m := &Model{
		KeyMap:    DefaultKeyMap(),
		attrs:     attrs,
		input:     textfield.New(attrs.Hint),
		back:      button.New(attrs.BackLabel),
		clear:     button.New(attrs.ClearLabel),
		clearFade: fade.New(),
		presenter: suggestions.NewPresenter(),
		rows:      suggestions.NewList(),
	}
	m.back.OnPress = func() {
		if m.onBack != nil {
			m.onBack()
		}
	}
	m.clear.OnPress = m.clearText
	m.rows.SetSize(0, attrs.MaxSuggestions)
	m.updateSuggestions("")
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSuggestions replaces the candidate list and re-filters it against the
// current text. A nil list is treated as empty.
func (m *Model) SetSuggestions(items []string) tea.Cmd {
	m.depth++
	m.presenter.SetCandidates(items)
	m.updateSuggestions(m.input.Value())
	return m.leave()
}

// SetText replaces the text and commits a search for it.
func (m *Model) SetText(text string) tea.Cmd {
	m.depth++
	m.setFieldText(text)
	m.doSearch()
	return m.leave()
}

// HideSuggestions empties the suggestion list without touching the text.
func (m *Model) HideSuggestions() {
	m.updateSuggestions("")
}

// SetOnSearchListener registers the single search listener, replacing any
// previous one. Passing nil removes it.
func (m *Model) SetOnSearchListener(listener func(value string)) {
	m.onSearch = listener
}

func (m *Model) SetBackButtonClickListener(listener func()) {
	m.onBack = listener
}

func (m *Model) Value() string {
	return m.input.Value()
}

func (m *Model) Hint() string {
	return m.input.Hint()
}

// Suggestions returns the rows currently shown.
func (m *Model) Suggestions() []string {
	return m.presenter.Visible()
}

func (m *Model) ClearVisible() bool {
	return m.clearVisible
}

// ClearShown reports whether the clear control is on screen, which lags
// ClearVisible while a fade-out runs.
func (m *Model) ClearShown() bool {
	return m.clearFade.Visible()
}

func (m *Model) Focus() tea.Cmd {
	m.hasFocus = true
	return m.focusInput()
}

func (m *Model) Blur() {
	m.hasFocus = false
	m.focus = focusInput
	m.input.Blur()
	m.rows.Blur()
}

func (m *Model) Focused() bool {
	return m.hasFocus
}

// ListFocused reports whether keys currently go to the suggestion list.
func (m *Model) ListFocused() bool {
	return m.hasFocus && m.focus == focusList
}

func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.SetWidth(width - m.back.Width() - m.clear.Width())
	m.rows.SetSize(width, m.attrs.MaxSuggestions)
}

// SetMaxSuggestions sets how many rows show before the list scrolls.
func (m *Model) SetMaxSuggestions(rows int) {
	m.attrs.MaxSuggestions = max(1, rows)
	m.rows.SetSize(m.width, m.attrs.MaxSuggestions)
}

// SetOrigin tells the widget where its top-left corner is on screen so mouse
// events can be hit-tested.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.depth++
	cmd := m.update(msg)
	return tea.Batch(cmd, m.leave())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case fade.FrameMsg:
		cmd = m.clearFade.Update(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.hasFocus {
			return nil
		}
		if m.focus == focusList {
			cmd = m.handleListKey(msg)
		} else {
			cmd = m.handleInputKey(msg)
		}
	default:
		cmd = m.updateInput(msg)
	}
	return cmd
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.KeyMap.Submit):
		m.doSearch()
	case key.Matches(msg, m.KeyMap.Back):
		m.back.Press()
	case key.Matches(msg, m.KeyMap.Clear):
		if m.clearVisible {
			m.clearText()
		}
	case key.Matches(msg, m.KeyMap.Next):
		if m.rows.Len() > 0 {
			m.focus = focusList
			m.input.Blur()
			m.rows.Focus()
		}
	default:
		return m.updateInput(msg)
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.KeyMap.Back):
		m.queue(m.focusInput())
		return nil
	case key.Matches(msg, m.KeyMap.Prev) && m.rows.Index() == 0:
		m.queue(m.focusInput())
		return nil
	}
	return m.rows.Update(msg)
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.onTextChanged()
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	x, y := msg.X-m.originX, msg.Y-m.originY
	headerHeight := lipgloss.Height(m.headerView())
	if y < 0 || x < 0 {
		return nil
	}
	if y >= headerHeight {
		rowMsg := msg
		rowMsg.X = x
		rowMsg.Y = y - headerHeight
		return m.rows.Update(rowMsg)
	}

	backWidth := m.back.Width()
	clearStart := backWidth + lipgloss.Width(m.input.View())
	switch {
	case x < backWidth:
		m.back.Press()
	case x >= clearStart && x < clearStart+m.clear.Width():
		m.clearButton().Press()
	case x < clearStart:
		m.hasFocus = true
		return m.focusInput()
	}
	return nil
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	m.rows.Blur()
	if !m.hasFocus {
		return nil
	}
	return m.input.Focus()
}

func (m *Model) clearText() {
	m.setFieldText("")
}

func (m *Model) setFieldText(text string) {
	m.input.SetValue(text)
	m.onTextChanged()
}

func (m *Model) onTextChanged() {
	text := m.input.Value()
	if (text != "") != m.clearVisible {
		m.clearVisible = text != ""
		if m.clearVisible {
			m.queue(m.clearFade.In())
		} else {
			m.queue(m.clearFade.Out())
		}
	}
	m.updateSuggestions(text)
}

func (m *Model) updateSuggestions(filter string) {
	visible := m.presenter.Recompute(filter)
	m.rows.Render(visible, m.onRowActivated)
	if len(visible) == 0 && m.focus == focusList {
		m.queue(m.focusInput())
	}
}

func (m *Model) onRowActivated(value string) {
	m.queue(m.focusInput())
	m.setFieldText(value)
	m.doSearch()
}

func (m *Model) doSearch() {
	m.HideSuggestions()
	if m.onSearch != nil {
		m.onSearch(m.input.Value())
	}
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// leave closes a public call. Nested calls made from listeners keep their
// commands queued for the outermost caller.
func (m *Model) leave() tea.Cmd {
	m.depth--
	if m.depth > 0 {
		return nil
	}
	return m.flush()
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) clearButton() button.Model {
	b := m.clear
	b.Hidden = !m.clearFade.Visible()
	b.Color = fade.Blend(lipgloss.Color(m.attrs.ClearColor), lipgloss.Color(m.attrs.Background), m.clearFade.Opacity())
	return b
}

func (m *Model) headerView() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.back.View(), m.input.View(), m.clearButton().View())
}

func (m *Model) View() string {
	header := m.headerView()
	rows := m.rows.View()
	if rows == "" {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, rows)
}
