package config

import (
	_ "embed"
)

//go:embed defaults/whack.yaml
var defaultWhackYAML []byte

// DefaultWhackConfig returns the built-in constants.
// It mirrors defaults/whack.yaml and is the fallback if the embed cannot be parsed.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Neon Whack",
		},
		Grid: GridConfig{
			Cols:    4,
			Rows:    3,
			Padding: 80,
			Inset:   24,
		},
		Timing: TimingConfig{
			StartIntervalMS:    1000,
			MinIntervalMS:      600,
			MaxDifficultyScore: 35,
			FPS:                60,
		},
		Gameplay: GameplayConfig{
			StartHealth: 5,
		},
		Leaderboard: LeaderboardConfig{
			Size:       5,
			NameMaxLen: 24,
		},
		Terminal: TerminalConfig{
			Padding:    1,
			Inset:      2,
			CellAspect: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultWhackYAML
}
