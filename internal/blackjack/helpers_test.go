package blackjack

import (
	"io"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// stackedDeck returns a deck that deals the given cards in order:
// player, dealer, player, dealer, then hits and dealer draws.
func stackedDeck(dealOrder string) *deck.Deck {
	cards := deck.MustParseCards(dealOrder)
	slices.Reverse(cards)
	return deck.FromCards(cards)
}

// newStackedSession starts a session on a stacked deck and records its events
func newStackedSession(t *testing.T, dealOrder string) (*Session, *EventRecorder, *quartz.Mock) {
	t.Helper()

	clock := quartz.NewMock(t)
	clock.Set(testStart)

	rec := &EventRecorder{}
	s := NewSession(
		WithClock(clock),
		WithLogger(quietLogger()),
		WithSubscriber(rec),
		WithDeck(stackedDeck(dealOrder)),
	)
	s.Start()
	return s, rec, clock
}

func lastEvent(rec *EventRecorder) Event {
	if len(rec.Events) == 0 {
		return nil
	}
	return rec.Events[len(rec.Events)-1]
}
