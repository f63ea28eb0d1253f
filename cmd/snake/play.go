package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in this terminal",
	Long: `Start a Snake session in the current terminal.

Controls:
  Enter/Space   - Start Game / Restart Game
  Arrows/WASD   - Steer
  ?             - Toggle help
  Q/Esc/Ctrl+C  - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	rt := core.DefaultConfig()
	rt.Seed = flagSeed

	// Get terminal size early so the first frame fits
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Log lines would tear the alt screen; keep them only at debug level
	sessionLogger := log.New(io.Discard)
	if logger.GetLevel() <= log.DebugLevel {
		f, err := os.OpenFile("snake.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open snake.log: %w", err)
		}
		defer f.Close()
		sessionLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
	}

	if err := tui.Run(gameConfig, rt, sessionLogger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
