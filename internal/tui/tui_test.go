package tui

import (
	"bytes"
	"io"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackedDeck(dealOrder string) *deck.Deck {
	cards := deck.MustParseCards(dealOrder)
	slices.Reverse(cards)
	return deck.FromCards(cards)
}

func keyPress(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T, dealOrder string, opts Options) (*Model, *blackjack.Session) {
	t.Helper()

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	session := blackjack.NewSession(
		blackjack.WithLogger(logger),
		blackjack.WithDeck(stackedDeck(dealOrder)),
	)
	m := NewModel(session, logger, opts)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.Update(m.Init()())
	return m, session
}

func TestModelDealsOnInit(t *testing.T) {
	m, session := newTestModel(t, "Kh 9c 5d As", Options{})

	assert.Equal(t, blackjack.PlayerTurn, session.State())
	assert.True(t, m.ActionsEnabled())
	assert.Len(t, m.playerCards, 2)
	require.Len(t, m.dealerCards, 2)
	assert.True(t, m.dealerCards[1].hidden)

	view := m.View()
	assert.Contains(t, view, "Score: 15")
	assert.Contains(t, view, "Score: ?")
	assert.Contains(t, view, "9♣")
	assert.Contains(t, view, blackjack.HiddenCard)
	assert.NotContains(t, view, "A♠", "hidden card must not leak")
}

func TestModelHitToBustDisablesActions(t *testing.T) {
	m, session := newTestModel(t, "Kh 9c 5d 7s Qd", Options{})

	m.Update(keyPress("h"))

	assert.True(t, session.GameOver())
	assert.False(t, m.ActionsEnabled())
	assert.Equal(t, "You bust! Dealer wins.", m.Message())
	assert.Contains(t, m.View(), "You bust! Dealer wins.")

	// Disabled bindings never reach the session
	m.Update(keyPress("h"))
	m.Update(keyPress("s"))
	assert.Len(t, session.PlayerHand(), 3)
	assert.False(t, session.DealerRevealed())
}

func TestModelStandRevealsDealer(t *testing.T) {
	m, session := newTestModel(t, "Kh 10c Qd 3s 4h", Options{})

	m.Update(keyPress("s"))

	assert.True(t, session.DealerRevealed())
	assert.Equal(t, "You win!", m.Message())
	require.Len(t, m.dealerCards, 3)
	for _, cv := range m.dealerCards {
		assert.False(t, cv.hidden)
	}

	view := m.View()
	assert.Contains(t, view, "Score: 17")
	assert.Contains(t, view, "3♠")
	assert.Contains(t, m.Log(), "Dealer reveals: [10♣ 3♠]")
}

func TestModelRestart(t *testing.T) {
	m, session := newTestModel(t, "Kh 10c Qd 7s", Options{})
	m.Update(keyPress("s"))
	require.True(t, session.GameOver())

	m.Update(keyPress("r"))

	assert.False(t, session.GameOver())
	assert.True(t, m.ActionsEnabled())
	assert.Empty(t, m.Message())
	assert.Len(t, m.playerCards, 2)
	assert.Len(t, m.dealerCards, 2)
	assert.Equal(t, deck.Size-4, session.DeckRemaining())
	assert.Equal(t, "*** NEW HAND *** (52 cards shuffled)", m.Log()[0])
}

func TestModelBell(t *testing.T) {
	var out bytes.Buffer
	m, _ := newTestModel(t, "Kh 9c 5d 7s Qd", Options{Bell: true, BellOut: &out})

	m.Update(keyPress("h"))

	// hit cue then lose cue
	assert.Equal(t, "\a\a", out.String())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, "Kh 9c 5d 7s", Options{})

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestViewBeforeSize(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	m := NewModel(blackjack.NewSession(), logger, Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestLogScrollSurvivesRender(t *testing.T) {
	m, _ := newTestModel(t, "Kh 9c 5d As", Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 5})

	require.Greater(t, m.logViewport.TotalLineCount(), m.logViewport.Height)
	require.True(t, m.logViewport.AtBottom())
	bottom := m.logViewport.YOffset

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	scrolled := m.logViewport.YOffset
	require.Less(t, scrolled, bottom)

	m.View()
	m.View()
	assert.Equal(t, scrolled, m.logViewport.YOffset)

	// New lines jump back to the newest entry
	m.Update(keyPress("s"))
	assert.True(t, m.logViewport.AtBottom())
}

func TestActionKeysDoNotScrollLog(t *testing.T) {
	m, session := newTestModel(t, "Kh 9c 5d As 2c", Options{})

	assert.False(t, m.logViewport.KeyMap.Left.Enabled())
	assert.False(t, m.logViewport.KeyMap.Right.Enabled())

	m.Update(keyPress("h"))
	assert.Len(t, session.PlayerHand(), 3)
	assert.True(t, m.logViewport.AtBottom())
}
