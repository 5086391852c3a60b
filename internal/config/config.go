// Package config provides YAML-based configuration loading for the snake
// game: board size and starting position.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// ErrInvalidGrid is returned when a grid dimension is not positive.
	ErrInvalidGrid = errors.New("config: grid width and height must be positive")
	// ErrStartOutOfBounds is returned when the start cell is off the grid.
	ErrStartOutOfBounds = errors.New("config: start position outside the grid")
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid  SnakeGrid  `yaml:"grid"`
	Start SnakeStart `yaml:"start"`
}

// SnakeGrid defines the board dimensions.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines where the one-segment snake begins and its heading.
type SnakeStart struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"`
}

// Validate checks the configuration can produce a playable game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, c.Grid.Width, c.Grid.Height)
	}
	bounds := core.NewRect(0, 0, c.Grid.Width, c.Grid.Height)
	if !bounds.Contains(c.Start.X, c.Start.Y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d", ErrStartOutOfBounds,
			c.Start.X, c.Start.Y, c.Grid.Width, c.Grid.Height)
	}
	if _, err := snake.ParseDirection(c.Start.Direction); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Runtime converts the configuration to the game's runtime parameters.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridW:    c.Grid.Width,
		GridH:    c.Grid.Height,
		StartX:   c.Start.X,
		StartY:   c.Start.Y,
		StartDir: c.Start.Direction,
		Seed:     seed,
	}
}
