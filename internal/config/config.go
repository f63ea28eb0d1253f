// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SnakeConfig contains all configuration for a Snake session.
type SnakeConfig struct {
	Field  SnakeField  `yaml:"field"`
	Timing SnakeTiming `yaml:"timing"`
	Rules  SnakeRules  `yaml:"rules"`
	Labels SnakeLabels `yaml:"labels"`
}

// SnakeField defines the playfield geometry. The grid has
// Width/CellSize columns and Height/CellSize rows.
type SnakeField struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeTiming defines the fixed tick period.
type SnakeTiming struct {
	TickMillis int `yaml:"tick_ms"`
}

// SnakeRules defines scoring and spawn parameters.
type SnakeRules struct {
	FoodReward int      `yaml:"food_reward"`
	Origin     GridCell `yaml:"origin"`
}

// GridCell is a cell coordinate as written in YAML.
type GridCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeLabels holds the user-facing strings of the start control and the
// terminal overlay.
type SnakeLabels struct {
	Start    string `yaml:"start"`
	Restart  string `yaml:"restart"`
	GameOver string `yaml:"game_over"`
}

// Cols returns the number of grid columns.
func (c SnakeConfig) Cols() int {
	if c.Field.CellSize <= 0 {
		return 0
	}
	return c.Field.Width / c.Field.CellSize
}

// Rows returns the number of grid rows.
func (c SnakeConfig) Rows() int {
	if c.Field.CellSize <= 0 {
		return 0
	}
	return c.Field.Height / c.Field.CellSize
}

// TickPeriod returns the simulation period.
func (c SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(c.Timing.TickMillis) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error

	f := c.Field
	switch {
	case f.CellSize <= 0:
		errs = append(errs, fmt.Errorf("field.cell_size must be positive, got %d", f.CellSize))
	case f.Width <= 0 || f.Height <= 0:
		errs = append(errs, fmt.Errorf("field must be at least one cell, got %dx%d", f.Width, f.Height))
	case f.Width%f.CellSize != 0 || f.Height%f.CellSize != 0:
		errs = append(errs, fmt.Errorf("field %dx%d is not divisible by cell_size %d", f.Width, f.Height, f.CellSize))
	case c.Cols()*c.Rows() < 2:
		errs = append(errs, errors.New("field must hold at least two cells"))
	}

	if c.Timing.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMillis))
	}
	if c.Rules.FoodReward < 0 {
		errs = append(errs, fmt.Errorf("rules.food_reward must not be negative, got %d", c.Rules.FoodReward))
	}

	labels := []struct{ key, value string }{
		{"labels.start", c.Labels.Start},
		{"labels.restart", c.Labels.Restart},
		{"labels.game_over", c.Labels.GameOver},
	}
	for _, l := range labels {
		if strings.TrimSpace(l.value) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", l.key))
		}
	}

	o := c.Rules.Origin
	if f.CellSize > 0 && (o.X < 0 || o.X >= c.Cols() || o.Y < 0 || o.Y >= c.Rows()) {
		errs = append(errs, fmt.Errorf("rules.origin (%d, %d) is outside the %dx%d grid", o.X, o.Y, c.Cols(), c.Rows()))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}
