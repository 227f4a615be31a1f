package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/simulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	rowLabelStyle = lipgloss.NewStyle().Width(16)
)

// SimulateCmd plays hands headlessly with a fixed hit threshold
type SimulateCmd struct {
	Hands   int    `kong:"default='10000',help='Number of hands to play'"`
	StandOn int    `kong:"default='17',help='Player stands at or above this score'"`
	Seed    *int64 `kong:"help='Base RNG seed (overrides config)'"`
	Workers int    `kong:"default='0',help='Parallel workers (0 = number of CPUs)'"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := shared.SetupLogger(os.Stderr, cfg.Level(), globals.Debug).WithPrefix("simulate")

	seed := cfg.Game.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Hands:   c.Hands,
		Seed:    seed,
		Workers: workers,
		Policy:  simulator.ThresholdPolicy{StandOn: c.StandOn},
		Logger:  logger,
	})

	results, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Println(renderResults(results, c.StandOn))
	return nil
}

func renderResults(r *simulator.Results, standOn int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d hands, standing on %d", r.Hands, standOn)))
	b.WriteString("\n")

	row := func(label string, n int) {
		b.WriteString(rowLabelStyle.Render(label))
		b.WriteString(fmt.Sprintf("%7d  %6.2f%%\n", n, 100*r.Rate(n)))
	}

	row("Player wins", r.PlayerWins())
	row("  dealer bust", r.Outcomes[blackjack.OutcomeDealerBust])
	row("Dealer wins", r.DealerWins())
	row("  player bust", r.Outcomes[blackjack.OutcomePlayerBust])
	row("Ties", r.Ties())

	lo, hi := r.ConfidenceInterval95()
	b.WriteString(rowLabelStyle.Render("Net per hand"))
	b.WriteString(fmt.Sprintf("%+7.3f  [%+.3f, %+.3f] 95%% CI\n", r.Mean(), lo, hi))
	b.WriteString(fmt.Sprintf("seed %d, %s", r.Seed, r.Elapsed.Round(time.Millisecond)))
	return b.String()
}
