// Package tui provides the Bubble Tea integration: it hosts a Snake session
// in a terminal, locally or over SSH, and supplies the session's tick source,
// key mapping, render sink, score sink and start control.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// timer that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after period.
func tickCmd(gen uint64, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// scheduler implements snake.Scheduler on top of Bubble Tea ticks.
// Each Every call opens a new generation; tick messages from older
// generations are dropped, so a stopped timer never fires again and at
// most one tick chain is live.
type scheduler struct {
	gen    uint64
	active bool
	armed  bool // New timer waiting for its first tick command
	period time.Duration
	fn     func()
}

func newScheduler() *scheduler {
	return &scheduler{}
}

// Every implements snake.Scheduler.
func (s *scheduler) Every(period time.Duration, fn func()) snake.Timer {
	s.gen++
	s.active = true
	s.armed = true
	s.period = period
	s.fn = fn
	return &teaTimer{s: s, gen: s.gen}
}

// pending returns the first tick command of a freshly started timer.
func (s *scheduler) pending() tea.Cmd {
	if !s.armed || !s.active {
		return nil
	}
	s.armed = false
	return tickCmd(s.gen, s.period)
}

// fire runs the callback for a live tick and schedules the next one.
func (s *scheduler) fire(msg TickMsg) tea.Cmd {
	if !s.active || msg.Gen != s.gen {
		return nil
	}
	s.fn()
	if s.active && msg.Gen == s.gen {
		return tickCmd(s.gen, s.period)
	}
	return nil
}

// Active reports whether a timer is live.
func (s *scheduler) Active() bool {
	return s.active
}

type teaTimer struct {
	s   *scheduler
	gen uint64
}

// Stop implements snake.Timer. Stopping an outdated timer has no effect.
func (t *teaTimer) Stop() {
	if t.s.gen != t.gen {
		return
	}
	t.s.active = false
	t.s.armed = false
	t.s.fn = nil
}
