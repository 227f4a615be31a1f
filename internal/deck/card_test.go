package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "face cards",
			input: "AsKhQdJc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:  "ten both ways",
			input: "10hTs",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "spaces and case",
			input: "ah 2D 9c",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: Two},
				{Suit: Clubs, Rank: Nine},
			},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "missing suit", input: "AsK", wantErr: true},
		{name: "one is not a rank", input: "1h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseCards("invalid") })
	assert.NotPanics(t, func() { MustParseCards("AsKs") })
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "10♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "Q♦", NewCard(Diamonds, Queen).String())
	assert.Equal(t, "2♣", NewCard(Clubs, Two).String())
}

func TestSuitNamesAndColours(t *testing.T) {
	assert.Equal(t, []string{"hearts", "diamonds", "clubs", "spades"},
		[]string{Hearts.Name(), Diamonds.Name(), Clubs.Name(), Spades.Name()})
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Clubs.IsRed())
	assert.False(t, Spades.IsRed())
}

func TestRankLabels(t *testing.T) {
	labels := make([]string, 0, len(Ranks))
	for _, r := range Ranks {
		labels = append(labels, r.String())
	}
	assert.Equal(t, []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}, labels)
	assert.True(t, King.IsFace())
	assert.False(t, Ace.IsFace())
	assert.False(t, Ten.IsFace())
}
