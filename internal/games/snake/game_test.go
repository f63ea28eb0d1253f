package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T) (*Game, *recordingHost, *manualScheduler) {
	t.Helper()
	host := &recordingHost{}
	sched := &manualScheduler{}
	g := New(config.DefaultSnakeConfig(), Host{
		Renderer:  host,
		Score:     host,
		Control:   host,
		Scheduler: sched,
	}, WithSeed(42))
	return g, host, sched
}

// place replaces the snake body and committed direction, and parks the
// food in a corner the test does not reach.
func place(g *Game, body []core.Point, dir core.Point) {
	g.snake.body = append([]core.Point(nil), body...)
	g.snake.direction = dir
	g.snake.nextDir = dir
	g.food = core.Point{X: 0, Y: 19}
}

func TestNewPublishesInitialState(t *testing.T) {
	g, host, sched := newTestGame(t)

	if g.State() != StateIdle || g.Running() {
		t.Errorf("new game state = %v running = %v, expected idle", g.State(), g.Running())
	}
	if host.lastLabel() != "Start Game" {
		t.Errorf("initial label = %q, expected %q", host.lastLabel(), "Start Game")
	}
	if host.lastScore() != 0 {
		t.Errorf("initial score = %d, expected 0", host.lastScore())
	}
	if len(sched.timers) != 0 {
		t.Errorf("new game started %d timers", len(sched.timers))
	}
	if g.Grid() != core.NewRect(0, 0, 20, 20) {
		t.Errorf("Grid() = %+v, expected 20x20", g.Grid())
	}
	if g.Food() != noFood {
		t.Errorf("Food() = %v before start, expected %v", g.Food(), noFood)
	}
}

func TestStart(t *testing.T) {
	g, host, sched := newTestGame(t)

	g.Start()

	if !g.Running() || g.State() != StateRunning {
		t.Fatalf("after Start running = %v state = %v", g.Running(), g.State())
	}
	if sched.active() != 1 {
		t.Fatalf("active timers = %d, expected 1", sched.active())
	}
	if sched.timers[0].period != 150*time.Millisecond {
		t.Errorf("tick period = %v, expected 150ms", sched.timers[0].period)
	}
	if host.lastLabel() != "Restart Game" {
		t.Errorf("label = %q, expected %q", host.lastLabel(), "Restart Game")
	}
	body := g.Body()
	if len(body) != 1 || body[0] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("body = %v, expected single segment at origin", body)
	}
	if !g.Grid().ContainsPoint(g.Food()) || g.Food() == body[0] {
		t.Errorf("food = %v, expected a free grid cell", g.Food())
	}
	if host.draws != 1 {
		t.Errorf("Start should render the initial frame, draws = %d", host.draws)
	}
}

func TestDoubleStartKeepsOneTimer(t *testing.T) {
	g, _, sched := newTestGame(t)

	g.Start()
	g.OnKey(KeyRight)
	sched.fire()
	head := g.Body()[0]

	g.Start()

	if len(sched.timers) != 1 || sched.active() != 1 {
		t.Errorf("timers = %d active = %d, expected exactly one", len(sched.timers), sched.active())
	}
	if g.Body()[0] != head {
		t.Error("second Start while running should not reset the snake")
	}
}

func TestOnKey(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()

	tests := []struct {
		key     Key
		handled bool
		pending core.Point
	}{
		{KeyUp, true, DirUp},
		{"a", false, DirUp},
		{"Enter", false, DirUp},
		{KeyLeft, true, DirLeft},
		{KeyDown, true, DirDown},
		{KeyRight, true, DirRight},
	}

	for _, tt := range tests {
		if got := g.OnKey(tt.key); got != tt.handled {
			t.Errorf("OnKey(%q) = %v, expected %v", tt.key, got, tt.handled)
		}
		if g.snake.PendingDirection() != tt.pending {
			t.Errorf("after OnKey(%q) pending = %v, expected %v", tt.key, g.snake.PendingDirection(), tt.pending)
		}
	}
}

func TestSteeringKeysAreConsumed(t *testing.T) {
	g, _, _ := newTestGame(t)
	for _, k := range SteeringKeys() {
		if !g.OnKey(k) {
			t.Errorf("OnKey(%q) not consumed", k)
		}
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  core.Point
	}{
		{"right edge", core.Point{X: 18, Y: 5}, DirRight},
		{"left edge", core.Point{X: 1, Y: 5}, DirLeft},
		{"top edge", core.Point{X: 5, Y: 1}, DirUp},
		{"bottom edge", core.Point{X: 5, Y: 18}, DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, host, sched := newTestGame(t)
			g.Start()
			place(g, []core.Point{tt.head}, tt.dir)

			// One step reaches the last valid cell
			sched.fire()
			if g.State() != StateRunning {
				t.Fatalf("game ended on the edge cell %v", g.Body()[0])
			}

			// The next step leaves the grid
			sched.fire()
			if g.State() != StateEnded {
				t.Fatalf("state = %v after leaving the grid, expected ended", g.State())
			}
			if g.Running() || sched.active() != 0 {
				t.Errorf("timer still active after wall hit")
			}
			if host.overlays != 1 || host.overlay != "Game Over!" {
				t.Errorf("overlay = %q (%d), expected one Game Over!", host.overlay, host.overlays)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g, host, sched := newTestGame(t)
	g.Start()

	// Moving left, length 5, about to loop back onto itself
	place(g, []core.Point{
		{X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5},
	}, DirLeft)

	g.OnKey(KeyUp)
	sched.fire()
	if g.State() != StateRunning {
		t.Fatalf("ended early, body = %v", g.Body())
	}
	drawsBefore := host.draws

	g.OnKey(KeyRight)
	sched.fire()

	if g.State() != StateEnded {
		t.Fatalf("state = %v, expected ended when head hits body; body = %v", g.State(), g.Body())
	}
	if g.Snapshot().Tick != 2 {
		t.Errorf("ended on tick %d, expected 2", g.Snapshot().Tick)
	}
	if host.draws != drawsBefore {
		t.Error("terminal tick should not render a normal frame")
	}
	if host.overlays != 1 {
		t.Errorf("overlays = %d, expected 1", host.overlays)
	}
}

func TestFollowingTailIsNotCollision(t *testing.T) {
	g, _, sched := newTestGame(t)
	g.Start()

	// A 2x2 loop: the head moves into the cell the tail leaves this step
	place(g, []core.Point{
		{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5},
	}, DirUp)

	g.OnKey(KeyRight)
	sched.fire()

	if g.State() != StateRunning {
		t.Errorf("state = %v, chasing the tail should be allowed", g.State())
	}
}

func TestFoodPickup(t *testing.T) {
	g, host, sched := newTestGame(t)
	g.Start()
	place(g, []core.Point{{X: 5, Y: 5}}, DirRight)
	g.food = core.Point{X: 6, Y: 5}

	sched.fire()

	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}
	if host.lastScore() != 10 {
		t.Errorf("score sink = %d, expected 10", host.lastScore())
	}
	if g.snake.Len() != 1 {
		t.Errorf("length = %d on pickup tick, expected growth on the next step", g.snake.Len())
	}
	if !g.snake.Growing() {
		t.Error("growth flag should be set after pickup")
	}
	if g.snake.Occupies(g.Food()) || g.Food() == (core.Point{X: 6, Y: 5}) {
		t.Errorf("food not re-rolled off the snake: %v", g.Food())
	}

	g.food = core.Point{X: 0, Y: 19}
	sched.fire()

	if g.snake.Len() != 2 {
		t.Errorf("length = %d after following step, expected 2", g.snake.Len())
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, expected unchanged 10", g.Score())
	}
}

func TestRestartAfterEnd(t *testing.T) {
	g, host, sched := newTestGame(t)
	g.Start()
	place(g, []core.Point{{X: 19, Y: 0}}, DirRight)
	g.score = 30
	sched.fire()

	if g.State() != StateEnded {
		t.Fatalf("expected ended, got %v", g.State())
	}

	// Stale fires after End are ignored
	g.Tick()
	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick after End advanced the session")
	}

	g.Start()

	if g.State() != StateRunning || sched.active() != 1 {
		t.Errorf("restart: state = %v active timers = %d", g.State(), sched.active())
	}
	if len(sched.timers) != 2 {
		t.Errorf("restart should create a fresh timer, got %d total", len(sched.timers))
	}
	if g.Score() != 0 || host.lastScore() != 0 {
		t.Errorf("score not reset: game %d sink %d", g.Score(), host.lastScore())
	}
	if body := g.Body(); len(body) != 1 || body[0] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("snake not reset: %v", body)
	}
	if !g.snake.Direction().IsZero() {
		t.Errorf("direction not reset: %v", g.snake.Direction())
	}
}

func TestEndWhenIdleIsNoop(t *testing.T) {
	g, host, _ := newTestGame(t)

	g.End()

	if g.State() != StateIdle || host.overlays != 0 {
		t.Errorf("End on idle game changed state to %v, overlays %d", g.State(), host.overlays)
	}
}

func TestNilHostCollaborators(t *testing.T) {
	g := New(config.DefaultSnakeConfig(), Host{}, WithSeed(1))

	g.Start()
	g.OnKey(KeyUp)
	for i := 0; i < 11; i++ {
		g.Tick()
	}

	if g.State() != StateEnded {
		t.Errorf("state = %v, expected ended after leaving the top edge", g.State())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots
	run := func() Snapshot {
		g := New(config.DefaultSnakeConfig(), Host{}, WithSeed(12345))
		g.Start()
		keys := map[int]Key{0: KeyRight, 5: KeyDown, 12: KeyLeft, 20: KeyUp}
		for i := 0; i < 40 && g.State() == StateRunning; i++ {
			if k, ok := keys[i]; ok {
				g.OnKey(k)
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
}

func TestFrame(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()
	place(g, []core.Point{{X: 3, Y: 3}, {X: 2, Y: 3}}, DirRight)
	g.food = core.Point{X: 7, Y: 8}
	g.score = 20

	f := g.Frame()

	if len(f.Snake) != 2 || f.Snake[0] != (core.Point{X: 3, Y: 3}) {
		t.Errorf("frame snake = %v", f.Snake)
	}
	if f.Food != (core.Point{X: 7, Y: 8}) || !f.HasFood() {
		t.Errorf("frame food = %v", f.Food)
	}
	if f.Score != 20 || f.Cols != 20 || f.Rows != 20 || f.State != StateRunning {
		t.Errorf("frame = %+v", f)
	}

	// Frame holds a copy
	f.Snake[0] = core.Point{}
	if g.Body()[0] != (core.Point{X: 3, Y: 3}) {
		t.Error("mutating a frame changed the game")
	}
}

func TestSnapshot(t *testing.T) {
	g, _, sched := newTestGame(t)
	g.Start()
	place(g, []core.Point{{X: 4, Y: 4}}, DirDown)
	sched.fire()

	snap := g.Snapshot()

	if snap.Tick != 1 || snap.HeadX != 4 || snap.HeadY != 5 || snap.Dir != "down" {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.SnakeLen != 1 || snap.State != StateRunning {
		t.Errorf("snapshot = %+v", snap)
	}
}
