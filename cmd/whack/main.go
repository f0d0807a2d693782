// whack is a neon whack-a-mole game for the terminal and the desktop.
//
// Usage:
//
//	whack                    - Play in the terminal
//	whack window             - Play in a desktop window
//	whack scores             - Show the leaderboard
//	whack config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.whack/scores.db)
//	--config <path>     - Use a custom config YAML
//	--name <player>     - Name recorded on the leaderboard (default: $USER)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-whack/internal/platform"
	"github.com/vovakirdan/neon-whack/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagName     string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whack",
	Short: "Neon Whack - click the blue moles, ignore the red ones",
	Long: `Neon Whack is a whack-a-mole game played with the mouse.

A mole appears on one square of a 4x3 grid. Blue moles must be clicked
before they move; red moles must be left alone. Every blue mole that gets
away costs one health, and the moles move faster as the score grows.

Controls:
  Left click - Whack the mole
  R          - Restart (after game over)
  Q/Esc      - Quit
  Ctrl+S     - Save a screenshot (terminal only)

Available commands:
  window   - Play in a desktop window
  scores   - View the leaderboard
  config   - Print the effective configuration

Examples:
  whack
  whack --seed 42
  whack window --name ada
  whack scores --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.whack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name for the leaderboard (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runPlay starts the terminal frontend.
func runPlay(cmd *cobra.Command, args []string) {
	env, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	runErr := tui.Run(tui.Options{
		Config:     env.cfg,
		Width:      width,
		Height:     height,
		TickRate:   env.cfg.Timing.FPS,
		Rng:        env.rng,
		OnGameOver: platform.GameOverHook(env.store, env.cfg.Leaderboard, env.player, env.logger),
		Logger:     env.logger,
	})

	// Close store before potential exit
	env.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
