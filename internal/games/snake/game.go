// Package snake implements the Snake game: a body model that moves and grows
// on a fixed grid, and a controller that drives it from a periodic tick,
// checks wall/self/food collisions and reports to injected host collaborators.
package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the session lifecycle state.
type State string

const (
	StateIdle    State = "idle"    // Never started
	StateRunning State = "running" // Timer active
	StateEnded   State = "ended"   // Timer cleared, overlay shown
)

// Key identifies one of the four steering keys.
type Key string

const (
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
)

var keyVectors = map[Key]core.Point{
	KeyUp:    DirUp,
	KeyDown:  DirDown,
	KeyLeft:  DirLeft,
	KeyRight: DirRight,
}

// SteeringKeys returns the keys OnKey consumes.
func SteeringKeys() []Key {
	return []Key{KeyUp, KeyDown, KeyLeft, KeyRight}
}

// noFood marks that no food has been rolled yet.
var noFood = core.Point{X: -1, Y: -1}

// Game is one Snake session. All methods must be called from a single
// goroutine; hosts serialize timer fires and key presses.
type Game struct {
	cfg     config.SnakeConfig
	host    Host
	logger  *log.Logger
	seed    int64
	grid    core.Rect
	snake   *Snake
	spawner *FoodSpawner
	food    core.Point
	score   int
	state   State
	timer   Timer  // Non-nil while running
	ticks   uint64 // Ticks since the last Start
}

// Option configures a Game.
type Option func(*Game)

// WithSeed sets the food RNG seed. 0 means derive from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates an idle session and publishes the initial score and start
// label to the host. cfg is expected to be valid.
func New(cfg config.SnakeConfig, host Host, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		host:   host.withDefaults(),
		logger: log.New(io.Discard),
		food:   noFood,
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	g.grid = core.NewRect(0, 0, cfg.Cols(), cfg.Rows())
	g.snake = NewSnake(core.Point{X: cfg.Rules.Origin.X, Y: cfg.Rules.Origin.Y})
	g.spawner = NewFoodSpawner(g.seed)

	g.host.Control.SetLabel(cfg.Labels.Start)
	g.host.Score.ShowScore(0)
	return g
}

// Start begins a new session: reset snake and score, roll food and start
// the tick source. It does nothing while a session is running.
func (g *Game) Start() {
	if g.timer != nil {
		return
	}

	g.snake.Reset()
	g.score = 0
	g.ticks = 0
	g.host.Score.ShowScore(g.score)
	g.spawnFood()

	g.state = StateRunning
	g.timer = g.host.Scheduler.Every(g.cfg.TickPeriod(), g.Tick)
	g.host.Control.SetLabel(g.cfg.Labels.Restart)

	g.logger.Debug("game started",
		"grid", fmt.Sprintf("%dx%d", g.grid.W, g.grid.H),
		"period", g.cfg.TickPeriod(),
	)
	g.host.Renderer.Draw(g.Frame())
}

// OnKey steers the snake. It reports whether key is a steering key, so the
// host can suppress the key's default handling. Other keys are ignored.
func (g *Game) OnKey(key Key) bool {
	v, ok := keyVectors[key]
	if !ok {
		return false
	}
	g.snake.SetDirection(v)
	return true
}

// Tick advances the session by one step. Fires that arrive after End are
// ignored.
func (g *Game) Tick() {
	if g.state != StateRunning {
		return
	}
	g.ticks++

	g.snake.Step()

	if g.hitWall() || g.snake.HitsItself() {
		g.End()
		return
	}

	if g.snake.Head() == g.food {
		g.snake.MarkGrowth()
		g.score += g.cfg.Rules.FoodReward
		g.host.Score.ShowScore(g.score)
		g.spawnFood()
	}

	g.host.Renderer.Draw(g.Frame())
}

// End stops the tick source and shows the terminal overlay. The session
// can be restarted with Start.
func (g *Game) End() {
	if g.state != StateRunning {
		return
	}
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.state = StateEnded

	g.logger.Debug("game over",
		"score", g.score,
		"length", g.snake.Len(),
		"ticks", g.ticks,
	)
	g.host.Renderer.DrawGameOver(g.Frame(), g.cfg.Labels.GameOver)
}

// hitWall reports whether the head left the grid.
func (g *Game) hitWall() bool {
	return !g.grid.ContainsPoint(g.snake.Head())
}

// spawnFood re-rolls the food off the snake's current segments.
func (g *Game) spawnFood() {
	g.food = g.spawner.Spawn(g.grid.W, g.grid.H, g.snake.Occupies)
}

// Running reports whether a tick source is active.
func (g *Game) Running() bool {
	return g.timer != nil
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Food returns the food cell. Before the first Start it is (-1, -1).
func (g *Game) Food() core.Point {
	return g.food
}

// Body returns a copy of the snake's segments, head first.
func (g *Game) Body() []core.Point {
	return g.snake.Body()
}

// Grid returns the playable area in cells.
func (g *Game) Grid() core.Rect {
	return g.grid
}
