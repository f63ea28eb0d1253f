// snake is the classic Snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	snake play     - Play in this terminal
//	snake serve    - Start SSH server for remote play
//	snake web      - Serve the game to browsers
//	snake config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.snake, ./configs)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Loaded in PersistentPreRunE
	gameConfig config.SnakeConfig
	logger     *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake steers a growing snake around a walled grid to eat food.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake web --http :8080
  snake config > ~/.snake/config.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.GetEnv("SNAKE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, the game configuration and the logger.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "snake",
	})

	path := flagConfig
	if path == "" {
		path = os.Getenv("SNAKE_CONFIG")
	}
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	gameConfig = cfg
	return nil
}
