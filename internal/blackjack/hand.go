package blackjack

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Owner identifies whose hand a card or score belongs to
type Owner int

const (
	Player Owner = iota
	Dealer
)

// String returns the string representation of an owner
func (o Owner) String() string {
	switch o {
	case Player:
		return "player"
	case Dealer:
		return "dealer"
	default:
		return "unknown"
	}
}

// Hand is an ordered set of cards that only grows until the session is replaced
type Hand struct {
	cards []deck.Card
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{cards: make([]deck.Card, 0, 6)}
}

// Add appends a card
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Score recomputes the hand value from scratch
func (h *Hand) Score() int {
	return Score(h.cards)
}

// String renders the hand as space separated cards
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
