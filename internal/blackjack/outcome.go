package blackjack

// Outcome is the terminal result of a session
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomeTie
)

// String returns a short identifier for logs
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePlayerBust:
		return "player_bust"
	case OutcomeDealerBust:
		return "dealer_bust"
	case OutcomePlayerWins:
		return "player_wins"
	case OutcomeDealerWins:
		return "dealer_wins"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the player
func (o Outcome) Message() string {
	switch o {
	case OutcomePlayerBust:
		return "You bust! Dealer wins."
	case OutcomeDealerBust:
		return "Dealer busts! You win."
	case OutcomePlayerWins:
		return "You win!"
	case OutcomeDealerWins:
		return "Dealer wins."
	case OutcomeTie:
		return "It's a tie!"
	default:
		return ""
	}
}

// PlayerWon reports whether the outcome favours the player
func (o Outcome) PlayerWon() bool {
	return o == OutcomeDealerBust || o == OutcomePlayerWins
}

// Cue returns the sound cue that accompanies the outcome
func (o Outcome) Cue() SoundCue {
	switch o {
	case OutcomeDealerBust, OutcomePlayerWins:
		return CueWin
	case OutcomeTie:
		return CueTie
	default:
		return CueLose
	}
}

// Resolve applies the ordered resolution rules. dealerRevealed gates the
// score comparison; before the reveal only a player bust can end the hand.
func Resolve(playerScore, dealerScore int, dealerRevealed bool) Outcome {
	switch {
	case IsBust(playerScore):
		return OutcomePlayerBust
	case IsBust(dealerScore):
		return OutcomeDealerBust
	case dealerRevealed && dealerScore >= DealerStandsOn:
		switch {
		case playerScore > dealerScore:
			return OutcomePlayerWins
		case playerScore < dealerScore:
			return OutcomeDealerWins
		default:
			return OutcomeTie
		}
	default:
		return OutcomeNone
	}
}
