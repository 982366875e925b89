// Package ui holds the transient notification line shown at the bottom of the TUI.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidplay-cli/vidplay/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model holds the current notification.
type Model struct {
	notification string
	isError      bool
	notifiedAt   time.Time
}

// NotifyMsg sets the notification text.
type NotifyMsg struct {
	Text  string
	Error bool
}

// ClearNotificationMsg resets the notification if it is at least Lifetime old.
type ClearNotificationMsg struct {
	At time.Time
}

// Notify returns a tea.Cmd that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text}
	}
}

// NotifyError returns a tea.Cmd that shows err in the error color.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: err.Error(), Error: true}
	}
}

// ClearNotification returns a delayed tea.Cmd that clears the current notification.
func ClearNotification() tea.Cmd {
	return tea.Tick(Lifetime, func(t time.Time) tea.Msg {
		return ClearNotificationMsg{At: t}
	})
}

// Update handles NotifyMsg and ClearNotificationMsg and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.notification = msg.Text
		m.isError = msg.Error
		m.notifiedAt = time.Now()
		return ClearNotification()
	case ClearNotificationMsg:
		// a newer notification restarted the clock
		if msg.At.Sub(m.notifiedAt) < Lifetime {
			return nil
		}
		m.notification = ""
		m.isError = false
	}
	return nil
}

// Notification returns the text on screen, if any.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	render := style.Faint
	if m.isError {
		render = style.Fg(style.ErrorColor)
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + render(m.notification)
	return strings.Join(lines, "\n")
}
