package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// messageWriter is the outbound half of a connection.
type messageWriter interface {
	WriteJSON(v any) error
}

// session hosts one Snake game for one WebSocket connection. It is the
// game's render sink, score sink, start control and scheduler; everything
// it is told is queued and written out by flush.
type session struct {
	game   *snake.Game
	sched  *tickerScheduler
	logger *log.Logger
	queue  []any
}

func newSession(cfg config.SnakeConfig, seed int64, logger *log.Logger) *session {
	s := &session{
		sched:  &tickerScheduler{},
		logger: logger,
	}
	s.queue = append(s.queue, newConfigMessage(cfg))
	s.game = snake.New(cfg, snake.Host{
		Renderer:  s,
		Score:     s,
		Control:   s,
		Scheduler: s.sched,
	}, snake.WithSeed(seed), snake.WithLogger(logger))
	return s
}

func (s *session) Draw(f snake.Frame) {
	s.queue = append(s.queue, newFrameMessage(msgFrame, f, ""))
}

func (s *session) DrawGameOver(f snake.Frame, message string) {
	s.queue = append(s.queue, newFrameMessage(msgGameOver, f, message))
}

func (s *session) ShowScore(score int) {
	s.queue = append(s.queue, scoreMessage{Type: msgScore, Score: score})
}

func (s *session) SetLabel(label string) {
	s.queue = append(s.queue, labelMessage{Type: msgLabel, Label: label})
}

// handle applies one client message to the game.
func (s *session) handle(msg clientMessage) {
	switch msg.Type {
	case msgStart:
		s.game.Start()
	case msgKey:
		s.game.OnKey(snake.Key(msg.Key))
	default:
		s.logger.Debug("ignoring client message", "type", msg.Type)
	}
}

// flush writes all queued messages in order.
func (s *session) flush(w messageWriter) error {
	for len(s.queue) > 0 {
		msg := s.queue[0]
		s.queue = s.queue[1:]
		if err := w.WriteJSON(msg); err != nil {
			return fmt.Errorf("web: write: %w", err)
		}
	}
	s.queue = nil
	return nil
}

// close stops the session's ticker.
func (s *session) close() {
	s.sched.stop()
}

// run serves the session until the client disconnects or ctx is done.
// It owns the game: ticks and client messages are handled on this
// goroutine only.
func (s *session) run(ctx context.Context, conn *websocket.Conn, writeTimeout time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.close()

	inbound := make(chan clientMessage)
	readErr := make(chan error, 1)
	go readLoop(ctx, conn, inbound, readErr)

	for {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := s.flush(conn); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeTimeout))
			return nil
		case msg, ok := <-inbound:
			if !ok {
				return <-readErr
			}
			s.handle(msg)
		case <-s.sched.C():
			s.sched.fire()
		}
	}
}

// readLoop decodes client messages until the connection fails. Malformed
// messages are skipped.
func readLoop(ctx context.Context, conn *websocket.Conn, out chan<- clientMessage, errc chan<- error) {
	defer close(out)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) ||
				errors.Is(err, context.Canceled) {
				err = nil
			} else {
				err = fmt.Errorf("web: read: %w", err)
			}
			errc <- err
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			errc <- nil
			return
		}
	}
}
