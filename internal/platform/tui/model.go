package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const restartHint = "Press Enter to restart"

// display is the terminal's render sink, score sink and start control.
// The controller pushes into it; View reads from it.
type display struct {
	frame   snake.Frame
	ended   bool // Set by DrawGameOver, cleared by the next Draw
	overlay string
	score   int
	label   string
}

func (d *display) Draw(f snake.Frame) {
	d.frame = f
	d.ended = false
	d.overlay = ""
}

func (d *display) DrawGameOver(f snake.Frame, message string) {
	d.frame = f
	d.ended = true
	d.overlay = message
}

func (d *display) ShowScore(score int) {
	d.score = score
}

func (d *display) SetLabel(label string) {
	d.label = label
}

// Model is the Bubble Tea model hosting one Snake session.
type Model struct {
	game     *snake.Game
	view     *display
	sched    *scheduler
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model with a fresh, idle session.
func NewModel(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	view := &display{}
	sched := newScheduler()
	game := snake.New(cfg, snake.Host{
		Renderer:  view,
		Score:     view,
		Control:   view,
		Scheduler: sched,
	}, snake.WithSeed(rt.Seed), snake.WithLogger(logger))
	view.frame = game.Frame()

	return Model{
		game:   game,
		view:   view,
		sched:  sched,
		screen: core.NewScreen(rt.ScreenW, screenRows(rt.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: rt,
	}
}

// screenRows leaves the bottom line for the help view.
func screenRows(h int) int {
	return core.Max(h-1, 0)
}

// Init sets the window title. The session stays idle until started.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m, m.sched.fire(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionStart:
		m.game.Start()
		return m, m.sched.pending()
	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case action.IsDirection():
		if k, ok := steeringKey(action); ok {
			m.game.OnKey(k)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.view.ended {
		snake.DrawOverlay(m.screen, m.view.frame, m.view.overlay, restartHint)
	} else {
		snake.Draw(m.screen, m.view.frame)
	}
	m.drawStatus()

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawStatus writes the score and the start control on the title line.
func (m Model) drawStatus() {
	button := fmt.Sprintf("[ %s ]", m.view.label)
	score := fmt.Sprintf("Score: %d", m.view.score)

	bx := m.screen.Width() - len([]rune(button)) - 1
	sx := bx - len(score) - 3
	m.screen.DrawColorText(sx, 0, score, core.ColorYellow)

	buttonColor := core.ColorBrightGreen
	if m.game.Running() {
		buttonColor = core.ColorGray
	}
	m.screen.DrawColorText(bx, 0, button, buttonColor)
}

// Game returns the hosted session.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts a local Bubble Tea program for one session.
func Run(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
