// Package clock renders the status-bar time: 12-hour, no leading zero
// on the hour, zero-padded minutes.
package clock

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Format renders t as e.g. "12:05" or "1:07". Hour 0 maps to 12.
func Format(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, t.Minute())
}

// TickMsg carries the wall-clock time of a tick.
type TickMsg time.Time

// Tick schedules the next once-per-second tick. The receiving model
// re-arms it from Update; once the model stops re-arming, the timer
// chain ends and no further ticks fire.
func Tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
