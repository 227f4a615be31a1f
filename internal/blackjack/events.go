package blackjack

import (
	"reflect"
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a session event type with type safety
type EventType string

// EventType constants for the notifications a session emits to presentation
const (
	EventTypeHandStart      EventType = "hand_start"
	EventTypeCardDealt      EventType = "card_dealt"
	EventTypeScoreUpdated   EventType = "score_updated"
	EventTypeDealerRevealed EventType = "dealer_revealed"
	EventTypeGameEnded      EventType = "game_ended"
	EventTypeActionsEnabled EventType = "actions_enabled"
	EventTypeSoundCue       EventType = "sound_cue"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// SoundCue names an audio cue the presentation may play
type SoundCue string

const (
	CueDeal  SoundCue = "deal"
	CueHit   SoundCue = "hit"
	CueStand SoundCue = "stand"
	CueWin   SoundCue = "win"
	CueLose  SoundCue = "lose"
	CueTie   SoundCue = "tie"
)

// Event is anything a session publishes
type Event interface {
	EventType() EventType
	Timestamp() time.Time
	SessionID() string
}

type eventMeta struct {
	sessionID string
	timestamp time.Time
}

func (m eventMeta) Timestamp() time.Time { return m.timestamp }
func (m eventMeta) SessionID() string    { return m.sessionID }

// HandStartEvent is published when a fresh deck is shuffled, before any card is dealt
type HandStartEvent struct {
	eventMeta
	DeckSize int
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }

// CardDealtEvent is published for every card placed in front of a player.
// Hidden cards carry the real card so the renderer can flip it later, but it
// must not be shown.
type CardDealtEvent struct {
	eventMeta
	Owner  Owner
	Card   deck.Card
	Hidden bool
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }

// ScoreUpdatedEvent is published whenever a hand changes. Visible is false for
// the dealer until the reveal.
type ScoreUpdatedEvent struct {
	eventMeta
	Owner   Owner
	Score   int
	Visible bool
}

func (e ScoreUpdatedEvent) EventType() EventType { return EventTypeScoreUpdated }

// DealerRevealedEvent is published when the player stands. Cards is the full
// dealer hand face-up and replaces whatever the renderer showed before.
type DealerRevealedEvent struct {
	eventMeta
	Cards []deck.Card
}

func (e DealerRevealedEvent) EventType() EventType { return EventTypeDealerRevealed }

// GameEndedEvent is published once when the session resolves
type GameEndedEvent struct {
	eventMeta
	Outcome Outcome
	Message string
}

func (e GameEndedEvent) EventType() EventType { return EventTypeGameEnded }

// ActionsEnabledEvent tells presentation whether hit and stand are accepted
type ActionsEnabledEvent struct {
	eventMeta
	Enabled bool
}

func (e ActionsEnabledEvent) EventType() EventType { return EventTypeActionsEnabled }

// SoundCueEvent asks presentation to play an audio cue
type SoundCueEvent struct {
	eventMeta
	Cue SoundCue
}

func (e SoundCueEvent) EventType() EventType { return EventTypeSoundCue }

// EventSubscriber can subscribe to session events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus delivers events synchronously, in publish order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Only comparable subscribers can be removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if subscriber == nil || !reflect.TypeOf(subscriber).Comparable() {
		return
	}
	for i, sub := range bus.subscribers {
		if !reflect.TypeOf(sub).Comparable() {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventRecorder keeps every event it receives. Useful for tests and replays.
type EventRecorder struct {
	Events []Event
}

// OnEvent records the event
func (r *EventRecorder) OnEvent(event Event) {
	r.Events = append(r.Events, event)
}

// Reset forgets recorded events
func (r *EventRecorder) Reset() {
	r.Events = nil
}

// OfType returns the recorded events with the given type
func (r *EventRecorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}
