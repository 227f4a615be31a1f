package blackjack

import "github.com/lox/blackjack/internal/deck"

const (
	// Blackjack is the best possible score
	Blackjack = 21
	// DealerStandsOn is the score at which the dealer stops drawing
	DealerStandsOn = 17
)

// CardValue returns the provisional value of a card, with aces counted as 11
func CardValue(c deck.Card) int {
	switch {
	case c.Rank == deck.Ace:
		return 11
	case c.Rank.IsFace():
		return 10
	default:
		return int(c.Rank)
	}
}

// Score computes the blackjack value of a hand. Aces count 11 and are demoted
// to 1 one at a time while the total is over 21. The result can still be a bust.
func Score(cards []deck.Card) int {
	total, soft := tally(cards)
	for total > Blackjack && soft > 0 {
		total -= 10
		soft--
	}
	return total
}

// IsSoft reports whether the hand still counts an ace as 11
func IsSoft(cards []deck.Card) bool {
	total, soft := tally(cards)
	for total > Blackjack && soft > 0 {
		total -= 10
		soft--
	}
	return soft > 0
}

// IsBust reports whether a score exceeds 21
func IsBust(score int) bool {
	return score > Blackjack
}

func tally(cards []deck.Card) (total, aces int) {
	for _, c := range cards {
		total += CardValue(c)
		if c.IsAce() {
			aces++
		}
	}
	return total, aces
}
