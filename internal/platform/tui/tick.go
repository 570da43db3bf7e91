// Package tui provides the Bubble Tea front ends: the autoplay viewer, the
// algorithm picker, the run scoreboard and the SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Viewer speed limits in moves per second.
const (
	minRate     = 1
	maxRate     = 30
	defaultRate = 4
)

// TickMsg is sent to advance a viewer by one phase. ID names the viewer
// the tick belongs to.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
