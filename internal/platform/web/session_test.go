package web

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

type fakeWriter struct {
	msgs []any
	err  error
}

func (w *fakeWriter) WriteJSON(v any) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, v)
	return nil
}

func newTestSession(t *testing.T) *session {
	t.Helper()
	s := newSession(config.DefaultSnakeConfig(), 42, log.New(io.Discard))
	t.Cleanup(s.close)
	return s
}

func drain(t *testing.T, s *session) []any {
	t.Helper()
	w := &fakeWriter{}
	if err := s.flush(w); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return w.msgs
}

func TestSessionGreeting(t *testing.T) {
	s := newTestSession(t)
	msgs := drain(t, s)

	if len(msgs) != 3 {
		t.Fatalf("got %d greeting messages, expected 3: %#v", len(msgs), msgs)
	}
	cfg, ok := msgs[0].(configMessage)
	if !ok {
		t.Fatalf("first message is %T, expected configMessage", msgs[0])
	}
	if cfg.Cols != 20 || cfg.Rows != 20 || cfg.CellSize != 20 {
		t.Errorf("config = %+v, expected a 20x20 grid of 20-unit cells", cfg)
	}
	if len(cfg.Keys) != 4 || cfg.Keys[0] != "ArrowUp" {
		t.Errorf("config keys = %v", cfg.Keys)
	}
	if label, ok := msgs[1].(labelMessage); !ok || label.Label != "Start Game" {
		t.Errorf("second message = %#v, expected the start label", msgs[1])
	}
	if score, ok := msgs[2].(scoreMessage); !ok || score.Score != 0 {
		t.Errorf("third message = %#v, expected score 0", msgs[2])
	}
	if s.sched.C() != nil {
		t.Error("idle session has a running ticker")
	}
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(t)
	drain(t, s)

	s.handle(clientMessage{Type: msgStart})
	msgs := drain(t, s)

	if len(msgs) != 3 {
		t.Fatalf("got %d start messages, expected 3: %#v", len(msgs), msgs)
	}
	if _, ok := msgs[0].(scoreMessage); !ok {
		t.Errorf("first message is %T, expected scoreMessage", msgs[0])
	}
	if label, ok := msgs[1].(labelMessage); !ok || label.Label != "Restart Game" {
		t.Errorf("second message = %#v, expected the restart label", msgs[1])
	}
	frame, ok := msgs[2].(frameMessage)
	if !ok {
		t.Fatalf("third message is %T, expected frameMessage", msgs[2])
	}
	if frame.Type != msgFrame || frame.State != "running" || frame.Food == nil {
		t.Errorf("frame = %+v, expected a running frame with food", frame)
	}
	if len(frame.Snake) != 1 || frame.Snake[0] != (point{X: 10, Y: 10}) {
		t.Errorf("snake = %v, expected [(10, 10)]", frame.Snake)
	}

	ticker := s.sched.ticker
	if ticker == nil {
		t.Fatal("start did not create a ticker")
	}

	s.handle(clientMessage{Type: msgStart})
	if len(drain(t, s)) != 0 {
		t.Error("start while running produced messages")
	}
	if s.sched.ticker != ticker {
		t.Error("start while running replaced the ticker")
	}
}

func TestSessionSteerAndTick(t *testing.T) {
	s := newTestSession(t)
	s.handle(clientMessage{Type: msgStart})
	drain(t, s)

	s.handle(clientMessage{Type: msgKey, Key: "ArrowUp"})
	s.handle(clientMessage{Type: msgKey, Key: "Enter"})
	if len(drain(t, s)) != 0 {
		t.Error("key presses should not produce messages")
	}

	s.sched.fire()
	msgs := drain(t, s)
	frame, ok := msgs[len(msgs)-1].(frameMessage)
	if !ok {
		t.Fatalf("tick produced %T, expected frameMessage", msgs[len(msgs)-1])
	}
	if frame.Snake[0] != (point{X: 10, Y: 9}) {
		t.Errorf("head = %v, expected (10, 9)", frame.Snake[0])
	}
}

func TestSessionGameOver(t *testing.T) {
	s := newTestSession(t)
	s.handle(clientMessage{Type: msgStart})
	s.handle(clientMessage{Type: msgKey, Key: "ArrowUp"})
	drain(t, s)

	var last any
	for i := 0; i < 11 && s.sched.C() != nil; i++ {
		s.sched.fire()
		if msgs := drain(t, s); len(msgs) > 0 {
			last = msgs[len(msgs)-1]
		}
	}

	over, ok := last.(frameMessage)
	if !ok || over.Type != msgGameOver {
		t.Fatalf("last message = %#v, expected a game over frame", last)
	}
	if over.Message != "Game Over!" || over.State != "ended" {
		t.Errorf("game over = %+v", over)
	}
	if s.sched.C() != nil {
		t.Error("ticker still running after game over")
	}

	// Fires after End are dropped
	s.sched.fire()
	if len(drain(t, s)) != 0 {
		t.Error("fire after game over produced messages")
	}

	s.handle(clientMessage{Type: msgStart})
	if s.sched.C() == nil {
		t.Error("restart did not start a new ticker")
	}
}

func TestSessionIgnoresUnknownMessages(t *testing.T) {
	s := newTestSession(t)
	drain(t, s)

	s.handle(clientMessage{Type: "chat"})
	if len(drain(t, s)) != 0 {
		t.Error("unknown message produced output")
	}
}

func TestSessionFlushError(t *testing.T) {
	s := newTestSession(t)
	boom := errors.New("broken pipe")

	err := s.flush(&fakeWriter{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("flush error = %v, expected to wrap %v", err, boom)
	}
}

func TestTickerSchedulerReplace(t *testing.T) {
	s := &tickerScheduler{}
	defer s.stop()

	calls := 0
	old := s.Every(defaultTestPeriod, func() {})
	s.Every(defaultTestPeriod, func() { calls++ })

	old.Stop()
	if s.C() == nil {
		t.Fatal("stopping a replaced timer stopped the current one")
	}
	s.fire()
	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
}
