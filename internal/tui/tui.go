package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// Options configures the presentation
type Options struct {
	Bell     bool      // Ring the terminal bell on sound cues
	BellOut  io.Writer // Where the bell is written, usually stderr
	ShowCues bool      // Show sound cues in the log
}

// dealMsg asks the model to deal the first hand
type dealMsg struct{}

type cardView struct {
	card   deck.Card
	hidden bool
}

// Model is the Bubble Tea model for a blackjack table. It sends commands to
// the session and rebuilds its view from the events the session publishes.
type Model struct {
	session   *blackjack.Session
	logger    *log.Logger
	formatter *blackjack.EventFormatter
	opts      Options

	// UI components
	logViewport viewport.Model
	help        help.Model
	keys        keyMap

	// Table state, event-driven
	playerCards   []cardView
	dealerCards   []cardView
	playerScore   int
	dealerScore   int
	dealerVisible bool
	message       string
	outcome       blackjack.Outcome
	actions       bool
	gameLog       []string

	// Dimensions
	width    int
	height   int
	quitting bool
}

// NewModel creates a model bound to session and subscribes it to the
// session's events. The first hand is dealt from Init.
func NewModel(session *blackjack.Session, logger *log.Logger, opts Options) *Model {
	if opts.BellOut == nil {
		opts.BellOut = io.Discard
	}

	m := &Model{
		session:     session,
		logger:      logger.WithPrefix("tui"),
		formatter:   blackjack.NewEventFormatter(blackjack.FormattingOptions{ShowCues: opts.ShowCues}),
		opts:        opts,
		logViewport: viewport.New(10, 5),
		help:        help.New(),
		keys:        defaultKeyMap(),
	}
	m.keys.setActionsEnabled(false)
	// h is hit, so the log pane only scrolls vertically
	m.logViewport.KeyMap.Left.SetEnabled(false)
	m.logViewport.KeyMap.Right.SetEnabled(false)
	session.Events().Subscribe(m)
	return m
}

// Init deals the first hand
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return dealMsg{} }
}

// OnEvent implements blackjack.EventSubscriber. Events arrive synchronously
// from inside Update, so no locking is needed.
func (m *Model) OnEvent(event blackjack.Event) {
	switch e := event.(type) {
	case blackjack.HandStartEvent:
		m.playerCards = nil
		m.dealerCards = nil
		m.playerScore, m.dealerScore = 0, 0
		m.dealerVisible = false
		m.message = ""
		m.outcome = blackjack.OutcomeNone
		m.gameLog = nil

	case blackjack.CardDealtEvent:
		cv := cardView{card: e.Card, hidden: e.Hidden}
		if e.Owner == blackjack.Player {
			m.playerCards = append(m.playerCards, cv)
		} else {
			m.dealerCards = append(m.dealerCards, cv)
		}

	case blackjack.DealerRevealedEvent:
		m.dealerCards = m.dealerCards[:0]
		for _, c := range e.Cards {
			m.dealerCards = append(m.dealerCards, cardView{card: c})
		}

	case blackjack.ScoreUpdatedEvent:
		if e.Owner == blackjack.Player {
			m.playerScore = e.Score
		} else {
			m.dealerScore = e.Score
			m.dealerVisible = e.Visible
		}

	case blackjack.GameEndedEvent:
		m.message = e.Message
		m.outcome = e.Outcome

	case blackjack.ActionsEnabledEvent:
		m.actions = e.Enabled
		m.keys.setActionsEnabled(e.Enabled)

	case blackjack.SoundCueEvent:
		if m.opts.Bell {
			fmt.Fprint(m.opts.BellOut, "\a")
		}
	}

	if line := m.formatter.Format(event); line != "" {
		m.addLogEntry(line)
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case dealMsg:
		m.session.Start()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hit):
			m.act("hit", m.session.Hit)
			m.layout()
			return m, nil
		case key.Matches(msg, m.keys.Stand):
			m.act("stand", m.session.Stand)
			m.layout()
			return m, nil
		case key.Matches(msg, m.keys.Restart):
			m.logger.Info("Restarting hand")
			m.session.Restart()
			m.layout()
			return m, nil
		}
	}
	m.layout()

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) act(name string, action func() error) {
	if err := action(); err != nil {
		if errors.Is(err, blackjack.ErrInvalidAction) {
			m.logger.Debug("Ignored action", "action", name, "error", err)
			return
		}
		m.logger.Error("Action failed", "action", name, "error", err)
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	logPane := LogPaneStyle.
		Width(m.logViewport.Width).
		Height(m.logViewport.Height).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTable(), logPane, m.help.View(m.keys))
}

// layout sizes the log pane to the space left under the table. A pane that
// was showing the newest line keeps showing it.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	logWidth := m.width - 2
	logHeight := m.height - lipgloss.Height(m.renderTable()) - lipgloss.Height(m.help.View(m.keys)) - 2
	if logWidth < 1 {
		logWidth = 1
	}
	if logHeight < 1 {
		logHeight = 1
	}
	if logWidth == m.logViewport.Width && logHeight == m.logViewport.Height {
		return
	}

	atBottom := m.logViewport.AtBottom()
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	if atBottom {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) renderTable() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("♠ ♥ Blackjack ♦ ♣"))
	b.WriteString("\n\n")
	b.WriteString(m.renderRow("Dealer", m.dealerCards, m.dealerScoreText()))
	b.WriteString("\n")
	b.WriteString(m.renderRow("You", m.playerCards, fmt.Sprintf("Score: %d", m.playerScore)))
	b.WriteString("\n")
	b.WriteString(m.renderMessage())
	b.WriteString("\n")
	return b.String()
}

func (m *Model) dealerScoreText() string {
	if !m.dealerVisible {
		return "Score: ?"
	}
	return fmt.Sprintf("Score: %d", m.dealerScore)
}

func (m *Model) renderRow(label string, cards []cardView, score string) string {
	rendered := make([]string, 0, len(cards))
	for _, cv := range cards {
		rendered = append(rendered, CardStyle.Render(m.renderCard(cv)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		LabelStyle.Render(label),
		ScoreStyle.Render(score),
		row)
}

func (m *Model) renderCard(cv cardView) string {
	switch {
	case cv.hidden:
		return HiddenCardStyle.Render(blackjack.HiddenCard)
	case cv.card.IsRed():
		return RedCardStyle.Render(cv.card.String())
	default:
		return BlackCardStyle.Render(cv.card.String())
	}
}

func (m *Model) renderMessage() string {
	switch {
	case m.message == "":
		return InfoStyle.Render("Your move.")
	case m.outcome.PlayerWon():
		return SuccessStyle.Render(m.message)
	case m.outcome == blackjack.OutcomeTie:
		return WarningStyle.Render(m.message)
	default:
		return ErrorStyle.Render(m.message)
	}
}

func (m *Model) addLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// Log returns a copy of the game log lines
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// ActionsEnabled reports whether hit and stand are currently offered
func (m *Model) ActionsEnabled() bool {
	return m.actions
}

// Message returns the outcome message, empty while the hand is live
func (m *Model) Message() string {
	return m.message
}
