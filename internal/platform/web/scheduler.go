package web

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// tickerScheduler implements snake.Scheduler with a time.Ticker that the
// session goroutine selects on. Callbacks therefore run on that goroutine.
type tickerScheduler struct {
	ticker *time.Ticker
	fn     func()
}

// Every implements snake.Scheduler. A running ticker is replaced.
func (s *tickerScheduler) Every(period time.Duration, fn func()) snake.Timer {
	s.stop()
	s.ticker = time.NewTicker(period)
	s.fn = fn
	return &tickerTimer{s: s, ticker: s.ticker}
}

// C returns the tick channel, or nil while stopped so a select skips it.
func (s *tickerScheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// fire runs the callback of the active ticker.
func (s *tickerScheduler) fire() {
	if s.fn != nil {
		s.fn()
	}
}

func (s *tickerScheduler) stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.ticker = nil
	s.fn = nil
}

type tickerTimer struct {
	s      *tickerScheduler
	ticker *time.Ticker
}

// Stop implements snake.Timer. Stopping a replaced ticker has no effect
// on the current one.
func (t *tickerTimer) Stop() {
	if t.s.ticker != t.ticker {
		t.ticker.Stop()
		return
	}
	t.s.stop()
}
