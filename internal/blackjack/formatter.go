package blackjack

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// HiddenCard is how a face-down card is rendered
const HiddenCard = "??"

// FormattingOptions controls how events are formatted
type FormattingOptions struct {
	ShowCues bool // Include sound cue events as log lines
}

// EventFormatter turns session events into human-readable log lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format renders any event. Events that produce no line return "".
func (ef *EventFormatter) Format(event Event) string {
	switch e := event.(type) {
	case HandStartEvent:
		return fmt.Sprintf("*** NEW HAND *** (%d cards shuffled)", e.DeckSize)
	case CardDealtEvent:
		return ef.FormatCardDealt(e)
	case ScoreUpdatedEvent:
		if !e.Visible {
			return ""
		}
		return fmt.Sprintf("%s score: %d", titleCase(e.Owner.String()), e.Score)
	case DealerRevealedEvent:
		return fmt.Sprintf("Dealer reveals: %s", ef.FormatCards(e.Cards))
	case GameEndedEvent:
		return e.Message
	case SoundCueEvent:
		if !ef.opts.ShowCues {
			return ""
		}
		return fmt.Sprintf("(%s)", e.Cue)
	default:
		return ""
	}
}

// FormatCardDealt renders a dealt card, masking hidden ones
func (ef *EventFormatter) FormatCardDealt(e CardDealtEvent) string {
	card := HiddenCard
	if !e.Hidden {
		card = e.Card.String()
	}
	return fmt.Sprintf("Dealt to %s: %s", e.Owner, card)
}

// FormatCards renders cards as "[A♠ 10♥]"
func (ef *EventFormatter) FormatCards(cards []deck.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, c := range cards {
		formatted = append(formatted, c.String())
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
