// Package toast shows stacked transient messages that expire on their own.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/remap/pkg/tui/theme"
)

// ExpiredMsg removes the toast with the matching id.
type ExpiredMsg struct {
	ID int
}

type item struct {
	id   int
	text string
}

// Model holds the visible toasts, oldest first.
type Model struct {
	items  []item
	nextID int
	delay  time.Duration
	th     theme.ToastTheme
}

// New returns a toast stack whose entries live for delay.
func New(th theme.ToastTheme, delay time.Duration) Model {
	if delay <= 0 {
		delay = time.Second
	}
	return Model{th: th, delay: delay}
}

// Push shows text and returns the command that will expire it. Each toast
// has its own timer, so overlapping toasts expire independently.
func (m *Model) Push(text string) tea.Cmd {
	m.nextID++
	id := m.nextID
	m.items = append(m.items, item{id: id, text: text})
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Update drops expired toasts.
func (m *Model) Update(msg tea.Msg) {
	ev, ok := msg.(ExpiredMsg)
	if !ok {
		return
	}
	for i, it := range m.items {
		if it.id == ev.ID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Messages returns the visible texts, oldest first.
func (m Model) Messages() []string {
	out := make([]string, len(m.items))
	for i, it := range m.items {
		out[i] = it.text
	}
	return out
}

// Len counts visible toasts.
func (m Model) Len() int {
	return len(m.items)
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	lines := make([]string, len(m.items))
	for i, it := range m.items {
		lines[i] = m.th.Text.Render(it.text)
	}
	return m.th.Frame.Render(strings.Join(lines, "\n"))
}
