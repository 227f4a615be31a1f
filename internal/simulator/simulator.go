// Package simulator plays many blackjack hands headlessly with a fixed player
// policy and tallies the outcomes.
package simulator

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Policy decides whether the player hits
type Policy interface {
	Hit(playerCards []deck.Card, dealerUpCard deck.Card) bool
}

// ThresholdPolicy hits while the player's score is below StandOn
type ThresholdPolicy struct {
	StandOn int
}

// Hit implements Policy
func (p ThresholdPolicy) Hit(playerCards []deck.Card, _ deck.Card) bool {
	return blackjack.Score(playerCards) < p.StandOn
}

// Config holds configuration for running simulations
type Config struct {
	Hands   int
	Seed    int64
	Workers int
	Policy  Policy
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Results tallies outcomes across a run
type Results struct {
	*statistics.Statistics
	Seed    int64
	Elapsed time.Duration
}

// PlayerWins counts hands won by the player, dealer busts included
func (r *Results) PlayerWins() int {
	return r.Outcomes[blackjack.OutcomePlayerWins] + r.Outcomes[blackjack.OutcomeDealerBust]
}

// DealerWins counts hands won by the dealer, player busts included
func (r *Results) DealerWins() int {
	return r.Outcomes[blackjack.OutcomeDealerWins] + r.Outcomes[blackjack.OutcomePlayerBust]
}

// Ties counts pushes
func (r *Results) Ties() int {
	return r.Outcomes[blackjack.OutcomeTie]
}

// Rate returns n as a fraction of all hands
func (r *Results) Rate(n int) float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(n) / float64(r.Hands)
}

// Simulator runs blackjack hand simulations
type Simulator struct {
	config Config
}

// New creates a new simulator, filling in defaults
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Policy == nil {
		config.Policy = ThresholdPolicy{StandOn: blackjack.DealerStandsOn}
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays every hand and returns the tally. Hands are spread over Workers
// goroutines; each hand owns its session, so results do not depend on
// scheduling.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	if s.config.Hands < 0 {
		return nil, fmt.Errorf("hands must be non-negative, got %d", s.config.Hands)
	}

	start := s.config.Clock.Now("simulator", "start")
	results := &Results{
		Statistics: statistics.New(),
		Seed:       s.config.Seed,
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			local := statistics.New()
			for hand := w; hand < s.config.Hands; hand += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playHand(randutil.Derive(s.config.Seed, hand))
				if err != nil {
					return fmt.Errorf("hand %d: %w", hand, err)
				}
				local.Add(result)
			}

			mu.Lock()
			results.Merge(local)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := results.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	results.Elapsed = s.config.Clock.Since(start, "simulator", "finish")
	s.config.Logger.Info("Simulation complete",
		"hands", results.Hands,
		"player_wins", results.PlayerWins(),
		"dealer_wins", results.DealerWins(),
		"ties", results.Ties(),
		"mean", results.Mean(),
		"elapsed", results.Elapsed)
	return results, nil
}

// playHand runs one session to resolution
func (s *Simulator) playHand(seed int64) (result statistics.HandResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session panicked (seed %d): %v", seed, r)
		}
	}()

	session := blackjack.NewSession(
		blackjack.WithRand(randutil.New(seed)),
		blackjack.WithClock(s.config.Clock),
	)
	session.Start()
	upCard := session.DealerHand()[0]

	hits := 0
	for !session.GameOver() {
		if s.config.Policy.Hit(session.PlayerHand(), upCard) {
			hits++
			err = session.Hit()
		} else {
			err = session.Stand()
		}
		if err != nil {
			return statistics.HandResult{}, err
		}
	}

	s.config.Logger.Debug("Hand complete", "seed", seed, "outcome", session.Outcome(),
		"player", session.PlayerScore(), "dealer", session.DealerScore())
	return statistics.NewHandResult(session.Outcome(), seed, upCard, hits), nil
}
