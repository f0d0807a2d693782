// Package platform holds the pieces shared by the terminal and desktop
// frontends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/storage"
	"github.com/vovakirdan/neon-whack/internal/whack"
)

// GameOverHook returns the hook that logs a finished session and records
// it on the leaderboard. A nil store only logs. The returned status is
// whack.HighScoreLabel when the score made the board.
func GameOverHook(store *storage.Store, board config.LeaderboardConfig, player string, logger *log.Logger) whack.GameOverFunc {
	return func(s whack.Session) string {
		logger.Info("game over", "score", s.Score, "hits", s.Hits, "misses", s.Misses)

		if store == nil {
			return ""
		}

		recorded, err := store.Record(player, s.Score, s.Hits, s.Misses, board.Size, board.NameMaxLen)
		if err != nil {
			logger.Warn("could not record score", "error", err)
			return ""
		}
		if !recorded {
			return ""
		}

		logger.Info("new high score", "player", storage.NormalizeName(player, board.NameMaxLen), "score", s.Score)
		return whack.HighScoreLabel
	}
}
