// Package config provides YAML-based loading of the game constants.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// WhackConfig contains all constants of the game.
type WhackConfig struct {
	Window      WindowConfig      `yaml:"window"`
	Grid        GridConfig        `yaml:"grid"`
	Timing      TimingConfig      `yaml:"timing"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Terminal    TerminalConfig    `yaml:"terminal"`
}

// WindowConfig defines the desktop window surface in pixels.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig defines the mole grid layout for the desktop window.
type GridConfig struct {
	Cols    int `yaml:"cols"`
	Rows    int `yaml:"rows"`
	Padding int `yaml:"padding"` // Margin around the play area
	Inset   int `yaml:"inset"`   // Subtracted from the slot size to get the square side
}

// TimingConfig defines the relocation interval curve and frame rate.
type TimingConfig struct {
	StartIntervalMS    int `yaml:"start_interval_ms"`
	MinIntervalMS      int `yaml:"min_interval_ms"`
	MaxDifficultyScore int `yaml:"max_difficulty_score"` // Score at which MinIntervalMS is reached
	FPS                int `yaml:"fps"`
}

// GameplayConfig defines the session rules.
type GameplayConfig struct {
	StartHealth int `yaml:"start_health"`
}

// LeaderboardConfig defines the high score table.
type LeaderboardConfig struct {
	Size       int `yaml:"size"`
	NameMaxLen int `yaml:"name_max_len"`
}

// TerminalConfig defines the grid layout in terminal cells.
// CellAspect is how many columns make one logical unit, since terminal
// cells are roughly twice as tall as they are wide.
type TerminalConfig struct {
	Padding    int `yaml:"padding"`
	Inset      int `yaml:"inset"`
	CellAspect int `yaml:"cell_aspect"`
}

// Validate checks that the configuration describes a playable game.
func (c WhackConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive")
	check(c.Grid.Cols > 0 && c.Grid.Rows > 0, "grid cols and rows must be positive")
	check(c.Grid.Padding >= 0 && c.Grid.Inset >= 0, "grid padding and inset must not be negative")
	check(c.Timing.MinIntervalMS > 0, "timing.min_interval_ms must be positive")
	check(c.Timing.StartIntervalMS >= c.Timing.MinIntervalMS, "timing.start_interval_ms must be >= min_interval_ms")
	check(c.Timing.MaxDifficultyScore > 0, "timing.max_difficulty_score must be positive")
	check(c.Timing.FPS > 0, "timing.fps must be positive")
	check(c.Gameplay.StartHealth > 0, "gameplay.start_health must be positive")
	check(c.Leaderboard.Size > 0, "leaderboard.size must be positive")
	check(c.Leaderboard.NameMaxLen > 0, "leaderboard.name_max_len must be positive")
	check(c.Terminal.CellAspect > 0, "terminal.cell_aspect must be positive")
	check(c.Terminal.Padding >= 0 && c.Terminal.Inset >= 0, "terminal padding and inset must not be negative")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}
