package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/muesli/termenv"
)

// Run plays session interactively until the user quits or ctx is cancelled
func Run(ctx context.Context, session *blackjack.Session, logger *log.Logger, opts Options, noColor bool) error {
	output := termenv.NewOutput(os.Stdout)
	profile := output.ColorProfile()
	if noColor {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)
	logger.Debug("Colour profile selected", "profile", profile)

	if opts.BellOut == nil {
		opts.BellOut = os.Stderr
	}

	model := NewModel(session, logger, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("Interrupted, leaving table")
			return nil
		}
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
