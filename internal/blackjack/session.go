package blackjack

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/gameid"
)

// ErrInvalidAction is returned when hit or stand arrives outside the player's
// turn. The session is left untouched and nothing is published.
var ErrInvalidAction = errors.New("invalid action")

// State is the phase a session is in
type State int

const (
	Dealing State = iota
	PlayerTurn
	DealerTurn
	Resolved
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case Dealing:
		return "dealing"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Session owns one round of blackjack: the deck, both hands and the turn state.
// It is not safe for concurrent use; every action runs to completion before
// the next is accepted.
type Session struct {
	id     string
	ids    *gameid.Generator
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger
	bus    *SimpleEventBus

	nextDeck *deck.Deck

	deck           *deck.Deck
	player         *Hand
	dealer         *Hand
	dealerRevealed bool
	gameOver       bool
	state          State
	outcome        Outcome
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the RNG used to shuffle each new deck
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the clock used for event timestamps and session IDs
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithSubscriber subscribes to the session's events from the first Start
func WithSubscriber(sub EventSubscriber) Option {
	return func(s *Session) { s.bus.Subscribe(sub) }
}

// WithDeck uses d, as ordered, for the next Start instead of shuffling a new deck
func WithDeck(d *deck.Deck) Option {
	return func(s *Session) { s.nextDeck = d }
}

// NewSession creates a session in the Dealing state. Call Start to deal.
func NewSession(opts ...Option) *Session {
	s := &Session{
		bus:    NewEventBus(),
		player: NewHand(),
		dealer: NewHand(),
		state:  Dealing,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s.logger = s.logger.WithPrefix("session")

	s.ids = gameid.NewGenerator(s.clock, nil)
	return s
}

// Events returns the session's event bus
func (s *Session) Events() EventBus {
	return s.bus
}

// UseDeck queues d to be dealt from on the next Start or Restart
func (s *Session) UseDeck(d *deck.Deck) {
	s.nextDeck = d
}

// Start throws away any current round, shuffles a fresh deck and deals
// player, dealer, player, dealer. The dealer's second card stays hidden.
func (s *Session) Start() {
	s.id = s.ids.Generate()
	s.player = NewHand()
	s.dealer = NewHand()
	s.dealerRevealed = false
	s.gameOver = false
	s.outcome = OutcomeNone
	s.state = Dealing

	if s.nextDeck != nil {
		s.deck, s.nextDeck = s.nextDeck, nil
	} else {
		s.deck = deck.NewShuffled(s.rng)
	}

	s.logger.Debug("Starting hand", "session", s.id, "deck", s.deck.Remaining())
	s.publish(HandStartEvent{eventMeta: s.meta(), DeckSize: s.deck.Remaining()})

	s.deal(Player, false)
	s.deal(Dealer, false)
	s.deal(Player, false)
	s.deal(Dealer, true)

	s.publish(ScoreUpdatedEvent{eventMeta: s.meta(), Owner: Player, Score: s.player.Score(), Visible: true})
	s.publish(ScoreUpdatedEvent{eventMeta: s.meta(), Owner: Dealer, Score: s.dealer.Score(), Visible: false})

	s.state = PlayerTurn
	s.publish(ActionsEnabledEvent{eventMeta: s.meta(), Enabled: true})
}

// Restart discards the current round wholesale and deals a new one
func (s *Session) Restart() {
	s.logger.Debug("Restarting", "session", s.id, "state", s.state)
	s.Start()
}

// Hit deals one card to the player and checks for a bust
func (s *Session) Hit() error {
	if err := s.checkPlayerTurn("hit"); err != nil {
		return err
	}

	s.publish(SoundCueEvent{eventMeta: s.meta(), Cue: CueHit})
	card := s.deal(Player, false)
	score := s.player.Score()
	s.logger.Debug("Player hits", "session", s.id, "card", card, "score", score)
	s.publish(ScoreUpdatedEvent{eventMeta: s.meta(), Owner: Player, Score: score, Visible: true})

	s.resolve()
	return nil
}

// Stand reveals the dealer's hand, plays the dealer out and resolves the round
func (s *Session) Stand() error {
	if err := s.checkPlayerTurn("stand"); err != nil {
		return err
	}

	s.publish(SoundCueEvent{eventMeta: s.meta(), Cue: CueStand})
	s.state = DealerTurn
	s.dealerRevealed = true
	s.publish(DealerRevealedEvent{eventMeta: s.meta(), Cards: s.dealer.Cards()})
	s.publish(ScoreUpdatedEvent{eventMeta: s.meta(), Owner: Dealer, Score: s.dealer.Score(), Visible: true})
	s.logger.Debug("Player stands", "session", s.id, "player", s.player.Score(), "dealer", s.dealer.Score())

	for s.dealer.Score() < DealerStandsOn {
		s.publish(SoundCueEvent{eventMeta: s.meta(), Cue: CueDeal})
		s.deal(Dealer, false)
		s.publish(ScoreUpdatedEvent{eventMeta: s.meta(), Owner: Dealer, Score: s.dealer.Score(), Visible: true})
	}

	s.resolve()
	return nil
}

func (s *Session) checkPlayerTurn(action string) error {
	if s.gameOver || s.state != PlayerTurn {
		s.logger.Debug("Ignoring action", "session", s.id, "action", action, "state", s.state)
		return fmt.Errorf("%w: %s during %s", ErrInvalidAction, action, s.state)
	}
	return nil
}

// deal moves the top card to owner's hand and publishes it. Running out of
// cards is an invariant violation: two hands can never consume 52 cards.
func (s *Session) deal(owner Owner, hidden bool) deck.Card {
	card, err := s.deck.Draw()
	if err != nil {
		panic(fmt.Errorf("blackjack: dealing to %s: %w", owner, err))
	}

	if owner == Player {
		s.player.Add(card)
	} else {
		s.dealer.Add(card)
	}

	s.publish(CardDealtEvent{eventMeta: s.meta(), Owner: owner, Card: card, Hidden: hidden})
	return card
}

func (s *Session) resolve() {
	outcome := Resolve(s.player.Score(), s.dealer.Score(), s.dealerRevealed)
	if outcome == OutcomeNone {
		return
	}

	s.outcome = outcome
	s.gameOver = true
	s.state = Resolved

	s.logger.Info("Hand resolved",
		"session", s.id,
		"outcome", outcome,
		"player", s.player.Score(),
		"dealer", s.dealer.Score())

	s.publish(SoundCueEvent{eventMeta: s.meta(), Cue: outcome.Cue()})
	s.publish(GameEndedEvent{eventMeta: s.meta(), Outcome: outcome, Message: outcome.Message()})
	s.publish(ActionsEnabledEvent{eventMeta: s.meta(), Enabled: false})
}

func (s *Session) meta() eventMeta {
	return eventMeta{sessionID: s.id, timestamp: s.clock.Now("session", "event")}
}

func (s *Session) publish(event Event) {
	s.bus.Publish(event)
}

// ID returns the identifier of the current round
func (s *Session) ID() string { return s.id }

// State returns the current phase
func (s *Session) State() State { return s.state }

// GameOver reports whether the round has resolved
func (s *Session) GameOver() bool { return s.gameOver }

// DealerRevealed reports whether the dealer's hidden card has been shown
func (s *Session) DealerRevealed() bool { return s.dealerRevealed }

// Outcome returns the result, or OutcomeNone while the round is live
func (s *Session) Outcome() Outcome { return s.outcome }

// PlayerHand returns the player's cards
func (s *Session) PlayerHand() []deck.Card { return s.player.Cards() }

// DealerHand returns all dealer cards, including a hidden one
func (s *Session) DealerHand() []deck.Card { return s.dealer.Cards() }

// PlayerScore returns the player's current score
func (s *Session) PlayerScore() int { return s.player.Score() }

// DealerScore returns the dealer's current score, hidden card included
func (s *Session) DealerScore() int { return s.dealer.Score() }

// DeckRemaining returns the number of undealt cards
func (s *Session) DeckRemaining() int {
	if s.deck == nil {
		return 0
	}
	return s.deck.Remaining()
}
