// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, animation scheduling
// and drawing the controller's view onto the terminal.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickerID atomic.Int64

func nextTickerID() int {
	return int(lastTickerID.Add(1))
}

// TickMsg is delivered when a Ticker's interval elapses.
type TickMsg struct {
	ID   int
	Time time.Time
}

// Ticker is a periodic scheduled task bound to one mounted screen.
// Each tick re-arms the next one only while the ticker is running, so a
// stopped ticker leaves no pending work behind after its last message.
type Ticker struct {
	id       int
	interval time.Duration
	running  bool
}

// NewTicker creates a stopped ticker with a process-unique ID.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		id:       nextTickerID(),
		interval: interval,
	}
}

// ID returns the ticker's identifier carried in its TickMsgs.
func (t *Ticker) ID() int {
	return t.id
}

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool {
	return t.running
}

// Start marks the ticker running and schedules its first tick.
func (t *Ticker) Start() tea.Cmd {
	t.running = true
	return t.tick()
}

// Stop prevents any further ticks from being scheduled.
func (t *Ticker) Stop() {
	t.running = false
}

// Handle reports whether msg is a live tick of this ticker. When it is,
// the returned command schedules the next tick.
func (t *Ticker) Handle(msg TickMsg) (bool, tea.Cmd) {
	if msg.ID != t.id || !t.running {
		return false, nil
	}
	return true, t.tick()
}

func (t *Ticker) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(ts time.Time) tea.Msg {
		return TickMsg{ID: id, Time: ts}
	})
}
