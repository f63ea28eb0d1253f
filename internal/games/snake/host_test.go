package snake

import "time"

// manualScheduler records timers and fires them on demand.
type manualScheduler struct {
	timers []*manualTimer
}

type manualTimer struct {
	period  time.Duration
	fn      func()
	stopped bool
}

func (s *manualScheduler) Every(period time.Duration, fn func()) Timer {
	t := &manualTimer{period: period, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

// active returns the number of timers that have not been stopped.
func (s *manualScheduler) active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// fire invokes every live timer once.
func (s *manualScheduler) fire() {
	timers := append([]*manualTimer(nil), s.timers...)
	for _, t := range timers {
		if !t.stopped {
			t.fn()
		}
	}
}

// recordingHost captures everything the controller reports.
type recordingHost struct {
	draws    int
	last     Frame
	overlay  string
	overlays int
	scores   []int
	labels   []string
}

func (h *recordingHost) Draw(f Frame) {
	h.draws++
	h.last = f
}

func (h *recordingHost) DrawGameOver(f Frame, message string) {
	h.overlays++
	h.last = f
	h.overlay = message
}

func (h *recordingHost) ShowScore(score int) {
	h.scores = append(h.scores, score)
}

func (h *recordingHost) SetLabel(label string) {
	h.labels = append(h.labels, label)
}

func (h *recordingHost) lastScore() int {
	if len(h.scores) == 0 {
		return -1
	}
	return h.scores[len(h.scores)-1]
}

func (h *recordingHost) lastLabel() string {
	if len(h.labels) == 0 {
		return ""
	}
	return h.labels[len(h.labels)-1]
}
