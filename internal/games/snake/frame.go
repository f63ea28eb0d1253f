package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Frame is a read-only copy of everything a render sink needs.
type Frame struct {
	Snake []core.Point // Head at index 0
	Food  core.Point
	Score int
	Cols  int
	Rows  int
	State State
}

// HasFood reports whether the food cell lies on the grid.
func (f Frame) HasFood() bool {
	return f.Food.X >= 0 && f.Food.X < f.Cols && f.Food.Y >= 0 && f.Food.Y < f.Rows
}

// Frame returns the current render state.
func (g *Game) Frame() Frame {
	return Frame{
		Snake: g.snake.Body(),
		Food:  g.food,
		Score: g.score,
		Cols:  g.grid.W,
		Rows:  g.grid.H,
		State: g.state,
	}
}

// Snapshot captures the session state for determinism tests and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      string
	FoodX    int
	FoodY    int
	State    State
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Tick:     g.ticks,
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      DirectionName(g.snake.Direction()),
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		State:    g.state,
	}
}
