// Package tui provides the Bubble Tea front end: the game loop, menus,
// the scoreboard and the SSH server that serves them remotely.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the model that scheduled it, so ticks left over from a
// closed game do not drive the next one.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loops atomic.Uint64

// nextLoop returns a fresh tick loop ID.
func nextLoop() uint64 {
	return loops.Add(1)
}

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
