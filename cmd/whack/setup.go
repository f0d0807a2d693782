package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/storage"
)

// environment is what every play command needs.
type environment struct {
	cfg     config.WhackConfig
	source  config.Source
	store   *storage.Store // Nil when the leaderboard could not be opened
	logger  *log.Logger
	logFile *os.File
	rng     *rand.Rand
	player  string
}

// setup loads the config, opens the logger and the leaderboard.
// A leaderboard that cannot be opened is only a warning.
func setup() (*environment, error) {
	cfg, source, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", "source", source)

	env := &environment{
		cfg:     cfg,
		source:  source,
		logger:  logger,
		logFile: logFile,
		rng:     newRng(flagSeed),
		player:  playerName(flagName, cfg.Leaderboard.NameMaxLen),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("leaderboard unavailable", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
	} else {
		env.store = store
	}
	return env, nil
}

// close releases the store and the log file.
func (e *environment) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("closing scores database", "error", err)
		}
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

// loadConfig resolves the config layers and applies the --fps override.
func loadConfig() (config.WhackConfig, config.Source, error) {
	cfg, source, err := config.LoadWhack(flagConfig)
	if err != nil {
		return cfg, source, fmt.Errorf("loading %s config: %w", source, err)
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg, source, nil
}

// newLogger writes to path when given and discards everything otherwise,
// since both frontends own the terminal.
func newLogger(path, level string) (*log.Logger, *os.File, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "whack",
		Level:           lvl,
	})
	return logger, f, nil
}

// playerName picks the leaderboard name: --name, then $USER.
func playerName(flag string, maxLen int) string {
	name := flag
	if name == "" {
		name = os.Getenv("USER")
	}
	return storage.NormalizeName(name, maxLen)
}

// newRng seeds from --seed, or from the clock when it is 0.
func newRng(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// terminalSize returns the current terminal size, 80x24 when unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
