// Package blackjack implements the rules engine for single-player blackjack
// against a computer dealer.
//
// The main type is Session, a small state machine that owns the deck and both
// hands. Presentation code drives it through Start, Hit, Stand and Restart and
// renders the events it publishes.
//
// # Basic Usage
//
//	s := blackjack.NewSession(blackjack.WithSubscriber(renderer))
//	s.Start()
//	_ = s.Hit()
//	_ = s.Stand()
//	if s.GameOver() {
//	    fmt.Println(s.Outcome().Message())
//	}
//
// # Deterministic Testing
//
// Inject a seeded RNG or a pre-ordered deck:
//
//	s := blackjack.NewSession(blackjack.WithRand(randutil.New(42)))
//	s := blackjack.NewSession(blackjack.WithDeck(deck.FromCards(cards)))
//
// The last card of a deck built with deck.FromCards is dealt first.
//
// # Rules
//
// Cards are dealt player, dealer, player, dealer. The dealer's second card is
// hidden until the player stands. The dealer draws while below 17. A hand is
// only resolved after a player bust or a dealer reveal, so a player who hits
// to 21 must still stand.
package blackjack
