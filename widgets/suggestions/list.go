package suggestions

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultMaxRows is how many rows are shown before the list scrolls.
const DefaultMaxRows = 5

// List renders suggestions as a vertically scrolling bubbles list.
type List struct {
	list       list.Model
	focused    bool
	maxRows    int
	onActivate func(string)
}

var _ Renderer = (*List)(nil)

func NewList() *List {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	return &List{
		list:    l,
		maxRows: DefaultMaxRows,
	}
}

// Render replaces every row. Selection and scroll position are reset.
func (l *List) Render(visible []string, onRowActivated func(string)) {
	items := make([]list.Item, 0, len(visible))
	for _, v := range visible {
		items = append(items, item(v))
	}
	l.list.SetItems(items)
	l.list.ResetSelected()
	l.onActivate = onRowActivated
	l.fitHeight()
}

func (l *List) Update(msg tea.Msg) tea.Cmd {
	if l.Len() == 0 {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !l.focused {
			return nil
		}
		if msg.String() == "enter" {
			l.activate(l.list.Index())
			return nil
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if idx, ok := l.rowAt(msg.Y); ok {
			l.list.Select(idx)
			l.activate(idx)
		}
		return nil
	}

	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	return cmd
}

// rowAt maps a line offset within the list to an item index.
func (l *List) rowAt(y int) (int, bool) {
	p := l.list.Paginator
	if y < 0 || y >= p.ItemsOnPage(l.Len()) {
		return 0, false
	}
	return p.Page*p.PerPage + y, true
}

func (l *List) activate(index int) {
	items := l.Items()
	if index < 0 || index >= len(items) {
		return
	}
	if l.onActivate != nil {
		l.onActivate(items[index])
	}
}

func (l *List) Len() int {
	return len(l.list.Items())
}

func (l *List) Items() []string {
	res := make([]string, 0, l.Len())
	for _, it := range l.list.Items() {
		if s, ok := it.(item); ok {
			res = append(res, string(s))
		}
	}
	return res
}

func (l *List) Index() int {
	return l.list.Index()
}

func (l *List) Select(index int) {
	l.list.Select(index)
}

func (l *List) Focus() {
	l.focused = true
	l.list.SetDelegate(itemDelegate{focused: true})
}

func (l *List) Blur() {
	l.focused = false
	l.list.SetDelegate(itemDelegate{})
}

func (l *List) Focused() bool {
	return l.focused
}

// SetSize sets the row width and the number of rows shown before scrolling.
func (l *List) SetSize(width, maxRows int) {
	if maxRows < 1 {
		maxRows = 1
	}
	l.maxRows = maxRows
	l.list.SetWidth(width)
	l.fitHeight()
}

func (l *List) fitHeight() {
	l.list.SetHeight(min(l.Len(), l.maxRows))
}

func (l *List) View() string {
	if l.Len() == 0 {
		return ""
	}
	return l.list.View()
}
