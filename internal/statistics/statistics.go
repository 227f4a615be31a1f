// Package statistics accumulates per-hand results from simulated play.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// HandResult represents the outcome of a single simulated hand
type HandResult struct {
	Outcome   blackjack.Outcome
	Seed      int64     // RNG seed for this hand (for replay)
	DealerUp  deck.Card // Dealer's face-up card
	Net       float64   // +1 player win, -1 dealer win, 0 tie
	PlayerHit int       // Cards drawn by the player after the deal
}

// NewHandResult scores an outcome as +1, -1 or 0 for the player
func NewHandResult(outcome blackjack.Outcome, seed int64, dealerUp deck.Card, hits int) HandResult {
	net := 0.0
	switch {
	case outcome.PlayerWon():
		net = 1
	case outcome != blackjack.OutcomeTie:
		net = -1
	}
	return HandResult{Outcome: outcome, Seed: seed, DealerUp: dealerUp, Net: net, PlayerHit: hits}
}

// Bucket holds running sums for a subset of hands
type Bucket struct {
	Hands int
	Sum   float64
	Sum2  float64
}

func (b *Bucket) add(v float64) {
	b.Hands++
	b.Sum += v
	b.Sum2 += v * v
}

// Mean returns the average net result
func (b Bucket) Mean() float64 {
	if b.Hands == 0 {
		return 0
	}
	return b.Sum / float64(b.Hands)
}

// Statistics tracks simulation results
type Statistics struct {
	Bucket
	Outcomes map[blackjack.Outcome]int
	Hits     int

	// Indexed by deck.Rank, Two..Ace
	UpCard [deck.Ace + 1]Bucket
}

// New creates empty statistics
func New() *Statistics {
	return &Statistics{Outcomes: make(map[blackjack.Outcome]int)}
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	s.add(result.Net)
	s.Outcomes[result.Outcome]++
	s.Hits += result.PlayerHit
	if r := result.DealerUp.Rank; r >= deck.Two && r <= deck.Ace {
		s.UpCard[r].add(result.Net)
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Hits += other.Hits
	for outcome, n := range other.Outcomes {
		s.Outcomes[outcome] += n
	}
	for r := range s.UpCard {
		s.UpCard[r].Hands += other.UpCard[r].Hands
		s.UpCard[r].Sum += other.UpCard[r].Sum
		s.UpCard[r].Sum2 += other.UpCard[r].Sum2
	}
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Validate checks that the outcome counts agree with the running sums
func (s *Statistics) Validate() error {
	total := 0
	for _, n := range s.Outcomes {
		total += n
	}
	if total != s.Hands {
		return fmt.Errorf("outcome count mismatch: %d outcomes for %d hands", total, s.Hands)
	}

	upCards := 0
	for _, b := range s.UpCard {
		upCards += b.Hands
	}
	if upCards != s.Hands {
		return fmt.Errorf("up-card count mismatch: %d for %d hands", upCards, s.Hands)
	}
	return nil
}
