// Package tui runs the game in a terminal with Bubble Tea. It maps keys to
// actions, feeds the simulation a wall-clock delta and draws its snapshot.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clock turns tick timestamps into simulation deltas. The first tick, and
// any tick that arrives out of order, uses the nominal interval.
type clock struct {
	nominal float64
	last    time.Time
}

func newClock(tickRate int) clock {
	return clock{nominal: 1 / float64(tickRate)}
}

func (c *clock) delta(now time.Time) float64 {
	dt := c.nominal
	if !c.last.IsZero() && now.After(c.last) {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now
	return dt
}

func timeOf(msg TickMsg) time.Time { return time.Time(msg) }
