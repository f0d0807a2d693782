package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-whack/internal/platform/tui"
	"github.com/vovakirdan/neon-whack/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores.

Examples:
  whack scores
  whack scores --plain
  whack scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table as plain text")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearScores(os.Stdout, store)
	case flagPlain:
		err = printScores(os.Stdout, store, cfg.Leaderboard.Size)
	default:
		width, height := terminalSize()
		err = tui.RunScoreboard(store, cfg.Leaderboard.Size, width, height)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// clearScores empties the leaderboard.
func clearScores(w io.Writer, store *storage.Store) error {
	if err := store.ClearScores(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Leaderboard cleared.")
	return nil
}

// printScores writes the leaderboard as a plain text table.
func printScores(w io.Writer, store *storage.Store, size int) error {
	scores, err := store.TopScores(size)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Neon Whack")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'whack' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-24s  %-6s  %-5s  %s\n", "Rank", "Name", "Score", "Hits", "Date")
	fmt.Fprintf(w, "  %-4s  %-24s  %-6s  %-5s  %s\n", "----", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-24s  %-6d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Hits, dateStr)
	}

	fmt.Fprintln(w)
	if best, err := store.HighScore(); err == nil {
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	return nil
}
