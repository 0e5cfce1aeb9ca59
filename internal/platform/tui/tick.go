// Package tui runs the game in the terminal with Bubble Tea. It maps keys to
// input frames, drives the simulation on a fixed tick, and styles the rendered
// screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at tickRate ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
