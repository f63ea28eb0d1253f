package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: SnakeField{
			Width:    400,
			Height:   400,
			CellSize: 20,
		},
		Timing: SnakeTiming{
			TickMillis: 150,
		},
		Rules: SnakeRules{
			FoodReward: 10,
			Origin:     GridCell{X: 10, Y: 10},
		},
		Labels: SnakeLabels{
			Start:    "Start Game",
			Restart:  "Restart Game",
			GameOver: "Game Over!",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
