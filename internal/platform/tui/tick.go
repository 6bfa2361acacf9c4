// Package tui provides the Bubble Tea integration for the kitchen.
// It handles the terminal UI loop, input mapping, timers and rendering.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Every kitchen model gets its own loop ID so that ticks still in flight from
// a previous round in the same program are dropped.
var lastLoopID atomic.Uint64

func nextLoopID() uint64 {
	return lastLoopID.Add(1)
}

// TickMsg is sent to trigger a movement tick.
type TickMsg struct {
	Loop uint64
	At   time.Time
}

// ClockMsg is sent once per second to advance the round clock.
type ClockMsg struct {
	Loop uint64
	At   time.Time
}

// scheduledMsg carries a delayed callback back onto the update loop.
type scheduledMsg struct {
	loop uint64
	fn   func()
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}

// clockCmd sends a ClockMsg after one second.
func clockCmd(loop uint64) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockMsg{Loop: loop, At: t}
	})
}

// teaScheduler implements kitchen.Scheduler on top of tea.Tick. Callbacks
// come back as messages, so they run on the same goroutine as every other
// game call. Commands queue up until the model drains them.
type teaScheduler struct {
	loop    uint64
	pending []tea.Cmd
}

func newTeaScheduler(loop uint64) *teaScheduler {
	return &teaScheduler{loop: loop}
}

// After queues a tea.Tick that delivers fn after d.
func (s *teaScheduler) After(d time.Duration, fn func()) {
	loop := s.loop
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return scheduledMsg{loop: loop, fn: fn}
	}))
}

// drain returns the queued commands as one command, or nil.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
