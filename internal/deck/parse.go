package deck

import (
	"fmt"
	"strings"
)

// ParseCards parses card notation such as "AhKs10d" or "Ah Ks 10d".
// Ranks: A, K, Q, J, 10 (or T), 9..2. Suits: h, d, c, s.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")

	cards := []Card{}
	for i := 0; i < len(s); {
		rankLen := 1
		if strings.HasPrefix(s[i:], "10") {
			rankLen = 2
		}
		if i+rankLen >= len(s) {
			return nil, fmt.Errorf("incomplete card at position %d", i)
		}

		rank, err := parseRank(s[i : i+rankLen])
		if err != nil {
			return nil, fmt.Errorf("invalid rank at position %d: %w", i, err)
		}

		suitChar := s[i+rankLen]
		suit, err := parseSuit(suitChar)
		if err != nil {
			return nil, fmt.Errorf("invalid suit '%c' at position %d: %w", suitChar, i+rankLen, err)
		}

		cards = append(cards, NewCard(suit, rank))
		i += rankLen + 1
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit")
	}
}
