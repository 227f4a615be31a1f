package statistics

import (
	"testing"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tenUp = deck.NewCard(deck.Spades, deck.Ten)
	aceUp = deck.NewCard(deck.Hearts, deck.Ace)
)

func TestStatistics_Empty(t *testing.T) {
	s := New()
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdError())
	assert.NoError(t, s.Validate())
}

func TestNewHandResultNet(t *testing.T) {
	assert.Equal(t, 1.0, NewHandResult(blackjack.OutcomeDealerBust, 0, tenUp, 0).Net)
	assert.Equal(t, 1.0, NewHandResult(blackjack.OutcomePlayerWins, 0, tenUp, 0).Net)
	assert.Equal(t, -1.0, NewHandResult(blackjack.OutcomePlayerBust, 0, tenUp, 0).Net)
	assert.Equal(t, -1.0, NewHandResult(blackjack.OutcomeDealerWins, 0, tenUp, 0).Net)
	assert.Equal(t, 0.0, NewHandResult(blackjack.OutcomeTie, 0, tenUp, 0).Net)
}

func TestStatistics_MultipleValues(t *testing.T) {
	s := New()
	s.Add(NewHandResult(blackjack.OutcomePlayerWins, 1, tenUp, 1))
	s.Add(NewHandResult(blackjack.OutcomeDealerWins, 2, tenUp, 0))
	s.Add(NewHandResult(blackjack.OutcomeTie, 3, aceUp, 2))
	s.Add(NewHandResult(blackjack.OutcomePlayerBust, 4, aceUp, 3))

	require.NoError(t, s.Validate())
	assert.Equal(t, 4, s.Hands)
	assert.InDelta(t, -0.25, s.Mean(), 1e-9)
	// values 1, -1, 0, -1: sum2 = 3, var = (3 - 4*0.0625)/3
	assert.InDelta(t, 2.75/3, s.Variance(), 1e-9)
	assert.Equal(t, 6, s.Hits)

	assert.Equal(t, 2, s.UpCard[deck.Ten].Hands)
	assert.InDelta(t, 0.0, s.UpCard[deck.Ten].Mean(), 1e-9)
	assert.InDelta(t, -0.5, s.UpCard[deck.Ace].Mean(), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
}

func TestStatistics_Merge(t *testing.T) {
	a, b, all := New(), New(), New()
	results := []HandResult{
		NewHandResult(blackjack.OutcomePlayerWins, 1, tenUp, 0),
		NewHandResult(blackjack.OutcomeTie, 2, aceUp, 1),
		NewHandResult(blackjack.OutcomeDealerBust, 3, aceUp, 0),
	}
	a.Add(results[0])
	b.Add(results[1])
	b.Add(results[2])
	for _, r := range results {
		all.Add(r)
	}

	a.Merge(b)
	assert.Equal(t, all, a)
}

func TestStatistics_ValidateMismatch(t *testing.T) {
	s := New()
	s.Add(NewHandResult(blackjack.OutcomeTie, 1, tenUp, 0))
	s.Outcomes[blackjack.OutcomeTie] = 2

	assert.ErrorContains(t, s.Validate(), "outcome count mismatch")
}
