package web

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Server-to-client message types.
const (
	msgConfig   = "config"
	msgFrame    = "frame"
	msgGameOver = "gameover"
	msgScore    = "score"
	msgLabel    = "label"
)

// Client-to-server message types.
const (
	msgStart = "start"
	msgKey   = "key"
)

// clientMessage is a message sent by the page.
type clientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(p core.Point) point {
	return point{X: p.X, Y: p.Y}
}

// configMessage tells the page how to size the canvas and which keys to
// claim from the browser.
type configMessage struct {
	Type     string   `json:"type"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	CellSize int      `json:"cellSize"`
	Cols     int      `json:"cols"`
	Rows     int      `json:"rows"`
	Keys     []string `json:"keys"`
}

func newConfigMessage(cfg config.SnakeConfig) configMessage {
	keys := snake.SteeringKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return configMessage{
		Type:     msgConfig,
		Width:    cfg.Field.Width,
		Height:   cfg.Field.Height,
		CellSize: cfg.Field.CellSize,
		Cols:     cfg.Cols(),
		Rows:     cfg.Rows(),
		Keys:     names,
	}
}

// frameMessage carries one rendered frame. Message is set on game over.
type frameMessage struct {
	Type    string  `json:"type"`
	Snake   []point `json:"snake"`
	Food    *point  `json:"food,omitempty"`
	Score   int     `json:"score"`
	State   string  `json:"state"`
	Message string  `json:"message,omitempty"`
}

func newFrameMessage(typ string, f snake.Frame, message string) frameMessage {
	body := make([]point, len(f.Snake))
	for i, p := range f.Snake {
		body[i] = toPoint(p)
	}
	msg := frameMessage{
		Type:    typ,
		Snake:   body,
		Score:   f.Score,
		State:   string(f.State),
		Message: message,
	}
	if f.HasFood() {
		food := toPoint(f.Food)
		msg.Food = &food
	}
	return msg
}

type scoreMessage struct {
	Type  string `json:"type"`
	Score int    `json:"score"`
}

type labelMessage struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}
