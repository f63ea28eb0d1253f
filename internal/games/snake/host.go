package snake

import "time"

// Renderer draws frames produced by the controller.
type Renderer interface {
	// Draw renders the current state of a running session.
	Draw(f Frame)
	// DrawGameOver renders f dimmed under a centered terminal message.
	DrawGameOver(f Frame, message string)
}

// ScoreSink displays the current score.
type ScoreSink interface {
	ShowScore(score int)
}

// StartControl is the trigger that calls Start. The controller relabels it
// once the first session begins.
type StartControl interface {
	SetLabel(label string)
}

// Scheduler starts periodic callbacks.
type Scheduler interface {
	// Every calls fn once per period until the returned Timer is stopped.
	Every(period time.Duration, fn func()) Timer
}

// Timer is a handle to a periodic callback.
type Timer interface {
	Stop()
}

// Host bundles the collaborators a session talks to. Nil fields are
// replaced with no-op implementations.
type Host struct {
	Renderer  Renderer
	Score     ScoreSink
	Control   StartControl
	Scheduler Scheduler
}

type nopRenderer struct{}

func (nopRenderer) Draw(Frame)                 {}
func (nopRenderer) DrawGameOver(Frame, string) {}

type nopScoreSink struct{}

func (nopScoreSink) ShowScore(int) {}

type nopControl struct{}

func (nopControl) SetLabel(string) {}

// nopScheduler never fires; callers drive Tick themselves.
type nopScheduler struct{}

func (nopScheduler) Every(time.Duration, func()) Timer { return nopTimer{} }

type nopTimer struct{}

func (nopTimer) Stop() {}

func (h Host) withDefaults() Host {
	if h.Renderer == nil {
		h.Renderer = nopRenderer{}
	}
	if h.Score == nil {
		h.Score = nopScoreSink{}
	}
	if h.Control == nil {
		h.Control = nopControl{}
	}
	if h.Scheduler == nil {
		h.Scheduler = nopScheduler{}
	}
	return h
}
