// Package fade animates a control between hidden and visible.
//
// Only the most recent transition is live: every In or Out bumps a tag and
// frames carrying an older tag are dropped, so an interrupted fade-out never
// hides a control that has since been asked to show.
package fade

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	ShortDuration = 200 * time.Millisecond
	FrameInterval = 20 * time.Millisecond
)

type State int

const (
	Hidden State = iota
	Visible
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the transition identified by ID and Tag.
type FrameMsg struct {
	ID  int
	Tag int
}

type Model struct {
	id       int
	tag      int
	target   State
	visible  bool
	opacity  float64
	step     float64
	duration time.Duration
}

func New() Model {
	return Model{
		id:       nextID(),
		target:   Hidden,
		duration: ShortDuration,
	}
}

func (m Model) ID() int {
	return m.id
}

func (m Model) Opacity() float64 {
	return m.opacity
}

func (m Model) Visible() bool {
	return m.visible
}

func (m Model) Target() State {
	return m.target
}

func (m Model) Animating() bool {
	switch m.target {
	case Visible:
		return m.opacity < 1
	default:
		return m.visible
	}
}

// In shows the control at zero opacity and animates it to full opacity.
func (m *Model) In() tea.Cmd {
	if m.target == Visible {
		return nil
	}
	m.target = Visible
	m.visible = true
	m.opacity = 0
	return m.start()
}

// Out animates the control to zero opacity and hides it afterwards.
func (m *Model) Out() tea.Cmd {
	if m.target == Hidden {
		return nil
	}
	m.target = Hidden
	return m.start()
}

func (m *Model) start() tea.Cmd {
	m.tag++
	frames := float64(m.duration / FrameInterval)
	if frames < 1 {
		frames = 1
	}
	m.step = 1 / frames
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag}
	})
}

// Frame returns the message that advances the live transition by one step.
func (m Model) Frame() FrameMsg {
	return FrameMsg{ID: m.id, Tag: m.tag}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != m.id || frame.Tag != m.tag {
		return nil
	}

	switch m.target {
	case Visible:
		m.opacity = min(1, m.opacity+m.step)
		if m.opacity >= 1 {
			return nil
		}
	case Hidden:
		m.opacity = max(0, m.opacity-m.step)
		if m.opacity <= 0 {
			m.visible = false
			return nil
		}
	}
	return m.tick()
}

// Blend mixes fg over bg at the given opacity. Colors that fail to parse as
// hex fall back to fg.
func Blend(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	f, err := colorful.Hex(string(fg))
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(string(bg))
	if err != nil {
		return fg
	}
	opacity = max(0, min(1, opacity))
	return lipgloss.Color(b.BlendRgb(f, opacity).Clamped().Hex())
}
