package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Seed     *int64 `kong:"help='Deterministic RNG seed (overrides config)'"`
	Bell     bool   `kong:"help='Ring the terminal bell on sound cues'"`
	NoColor  bool   `kong:"help='Disable colours'"`
	ShowCues bool   `kong:"help='Show sound cues in the game log'"`
	LogFile  string `kong:"help='Log file (overrides config)'"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.apply(cfg)

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := newPlayLogger(logFile, cfg, globals.Debug)

	rng, seed := randutil.NewOrRandom(cfg.Game.Seed)
	logger.Info("Starting table", "seed", seed, "config", globals.ConfigFile)

	session := blackjack.NewSession(
		blackjack.WithRand(rng),
		blackjack.WithLogger(logger),
	)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	return tui.Run(ctx, session, logger, tui.Options{
		Bell:     cfg.UI.Bell,
		ShowCues: cfg.UI.ShowCues,
	}, cfg.UI.NoColor)
}

// newPlayLogger logs in logfmt, since play output always goes to a file
func newPlayLogger(w io.Writer, cfg *config.Config, debug bool) *log.Logger {
	return shared.SetupStructuredLogger(w, cfg.Level(), debug).WithPrefix("play")
}

// apply lays command-line flags over the loaded config
func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.Bell {
		cfg.UI.Bell = true
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}
	if c.ShowCues {
		cfg.UI.ShowCues = true
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
}
