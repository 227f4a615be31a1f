package blackjack

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestEventFormatter_Format(t *testing.T) {
	aceSpades := deck.NewCard(deck.Spades, deck.Ace)
	tenHearts := deck.NewCard(deck.Hearts, deck.Ten)

	tests := []struct {
		name     string
		opts     FormattingOptions
		event    Event
		expected string
	}{
		{
			name:     "hand start",
			event:    HandStartEvent{DeckSize: 52},
			expected: "*** NEW HAND *** (52 cards shuffled)",
		},
		{
			name:     "visible card",
			event:    CardDealtEvent{Owner: Player, Card: aceSpades},
			expected: "Dealt to player: A♠",
		},
		{
			name:     "hidden card",
			event:    CardDealtEvent{Owner: Dealer, Card: aceSpades, Hidden: true},
			expected: "Dealt to dealer: ??",
		},
		{
			name:     "red card is plain text",
			event:    CardDealtEvent{Owner: Player, Card: tenHearts},
			expected: "Dealt to player: 10♥",
		},
		{
			name:     "visible score",
			event:    ScoreUpdatedEvent{Owner: Dealer, Score: 17, Visible: true},
			expected: "Dealer score: 17",
		},
		{
			name:  "withheld score",
			event: ScoreUpdatedEvent{Owner: Dealer, Score: 17},
		},
		{
			name:     "reveal",
			event:    DealerRevealedEvent{Cards: []deck.Card{aceSpades, tenHearts}},
			expected: "Dealer reveals: [A♠ 10♥]",
		},
		{
			name:     "game ended",
			event:    GameEndedEvent{Outcome: OutcomeTie, Message: OutcomeTie.Message()},
			expected: "It's a tie!",
		},
		{
			name:  "cue hidden by default",
			event: SoundCueEvent{Cue: CueHit},
		},
		{
			name:     "cue shown",
			opts:     FormattingOptions{ShowCues: true},
			event:    SoundCueEvent{Cue: CueHit},
			expected: "(hit)",
		},
		{
			name:  "actions enabled has no line",
			event: ActionsEnabledEvent{Enabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ef := NewEventFormatter(tt.opts)
			assert.Equal(t, tt.expected, ef.Format(tt.event))
		})
	}
}
