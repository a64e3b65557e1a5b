package brackets

import (
	"context"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standingsOf(names ...string) []models.Standing {
	out := make([]models.Standing, len(names))
	for i, n := range names {
		out[i] = models.Standing{ID: i + 1, Name: n}
	}
	return out
}

func TestSwissPairings(t *testing.T) {
	tests := []struct {
		name      string
		standings []models.Standing
		want      []models.Pairing
	}{
		{
			name:      "no players",
			standings: nil,
			want:      []models.Pairing{},
		},
		{
			name:      "single player sits out",
			standings: standingsOf("A"),
			want:      []models.Pairing{},
		},
		{
			name:      "four players pair neighbours",
			standings: standingsOf("A", "B", "C", "D"),
			want: []models.Pairing{
				{Player1ID: 1, Player1Name: "A", Player2ID: 2, Player2Name: "B"},
				{Player1ID: 3, Player1Name: "C", Player2ID: 4, Player2Name: "D"},
			},
		},
		{
			name:      "odd count drops the last player",
			standings: standingsOf("A", "B", "C", "D", "E"),
			want: []models.Pairing{
				{Player1ID: 1, Player1Name: "A", Player2ID: 2, Player2Name: "B"},
				{Player1ID: 3, Player1Name: "C", Player2ID: 4, Player2Name: "D"},
			},
		},
		{
			name: "follows standings order, not ids",
			standings: []models.Standing{
				{ID: 4, Name: "D", Wins: 2, Matches: 2},
				{ID: 1, Name: "A", Wins: 1, Matches: 2},
				{ID: 3, Name: "C", Wins: 1, Matches: 2},
				{ID: 2, Name: "B", Wins: 0, Matches: 1},
			},
			want: []models.Pairing{
				{Player1ID: 4, Player1Name: "D", Player2ID: 1, Player2Name: "A"},
				{Player1ID: 3, Player1Name: "C", Player2ID: 2, Player2Name: "B"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SwissPairings(tt.standings)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSwissPairingsEachPlayerOnce(t *testing.T) {
	standings := standingsOf("A", "B", "C", "D", "E", "F", "G", "H")
	pairings := SwissPairings(standings)
	require.Len(t, pairings, len(standings)/2)

	seen := make(map[int]int)
	for _, p := range pairings {
		seen[p.Player1ID]++
		seen[p.Player2ID]++
	}
	for _, s := range standings {
		assert.Equal(t, 1, seen[s.ID], "player %d", s.ID)
	}
}

func TestSwissGenerator(t *testing.T) {
	g := NewSwissGenerator()
	assert.Equal(t, "Swiss", g.GetName())

	pairings, err := g.GeneratePairings(context.Background(), standingsOf("A", "B"))
	require.NoError(t, err)
	assert.Len(t, pairings, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.GeneratePairings(ctx, standingsOf("A", "B"))
	assert.ErrorIs(t, err, context.Canceled)
}
