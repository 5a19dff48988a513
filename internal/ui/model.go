// Package ui holds the transient status line shown after a pick or a cancel.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stylepick/stylepick/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model is the notification state. The zero value shows nothing.
type Model struct {
	notification string
	// generation discards clear ticks scheduled for older notifications
	generation int
}

// NotificationMsg sets the status line.
type NotificationMsg string

// ClearNotificationMsg clears the status line if no newer notification has arrived.
type ClearNotificationMsg struct {
	generation int
}

// Notify returns a command that shows text on the status line.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func (m *Model) clearAfter(d time.Duration) tea.Cmd {
	generation := m.generation
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearNotificationMsg{generation: generation}
	})
}

// Update consumes notification messages and returns the follow-up command, if any.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.generation++
		return m.clearAfter(Lifetime)
	case ClearNotificationMsg:
		if msg.generation == m.generation {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
