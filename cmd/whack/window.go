package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-whack/internal/platform"
	"github.com/vovakirdan/neon-whack/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the mouse.

Controls:
  Left click - Whack the mole
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  whack window
  whack window --seed 7 --name ada`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	env, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := desktop.Run(desktop.Options{
		Config:     env.cfg,
		Rng:        env.rng,
		OnGameOver: platform.GameOverHook(env.store, env.cfg.Leaderboard, env.player, env.logger),
		Logger:     env.logger,
	})

	env.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
