package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Connect("sqlite3", ":memory:?_foreign_keys=1", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(context.Background(), conn, "sqlite3"))
	return conn
}

type fixture struct {
	players   PlayerRepository
	matches   MatchRepository
	standings StandingRepository
}

func newFixture(t *testing.T) fixture {
	conn := newTestDB(t)
	return fixture{
		players:   NewPlayerRepository(conn),
		matches:   NewMatchRepository(conn),
		standings: NewStandingRepository(conn),
	}
}

func (f fixture) register(t *testing.T, names ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(names))
	for _, n := range names {
		p := &models.Player{Name: n}
		require.NoError(t, f.players.Create(context.Background(), nil, p))
		ids = append(ids, p.ID)
	}
	return ids
}

func (f fixture) report(t *testing.T, winner, loser int) {
	t.Helper()
	require.NoError(t, f.matches.Create(context.Background(), nil, &models.Match{WinnerID: winner, LoserID: loser}))
}

func TestPlayerRepositoryAssignsIncreasingIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ids := f.register(t, "Ann", "Bob", "Cid")
	assert.Equal(t, []int{1, 2, 3}, ids)

	count, err := f.players.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	p, err := f.players.GetByID(ctx, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", p.Name)
	assert.False(t, p.CreatedAt.IsZero())

	_, err = f.players.GetByID(ctx, nil, 42)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	players, err := f.players.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "Ann", players[0].Name)
}

func TestStandingsIncludePlayersWithoutMatches(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ann", "Bob")

	standings, err := f.standings.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []models.Standing{
		{ID: 1, Name: "Ann", Wins: 0, Matches: 0},
		{ID: 2, Name: "Bob", Wins: 0, Matches: 0},
	}, standings)
}

func TestStandingsOrderByWinsThenID(t *testing.T) {
	f := newFixture(t)
	ids := f.register(t, "A", "B", "C", "D")

	f.report(t, ids[0], ids[2])
	f.report(t, ids[2], ids[3])
	f.report(t, ids[3], ids[0])
	f.report(t, ids[3], ids[1])

	standings, err := f.standings.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []models.Standing{
		{ID: 4, Name: "D", Wins: 2, Matches: 3},
		{ID: 1, Name: "A", Wins: 1, Matches: 2},
		{ID: 3, Name: "C", Wins: 1, Matches: 2},
		{ID: 2, Name: "B", Wins: 0, Matches: 1},
	}, standings)

	for _, s := range standings {
		assert.GreaterOrEqual(t, s.Matches, s.Wins)
	}
}

func TestMatchRepositoryRejectsUnknownPlayers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.register(t, "A")

	err := f.matches.Create(ctx, nil, &models.Match{WinnerID: ids[0], LoserID: 99})
	assert.ErrorIs(t, err, ErrMatchPlayerInvalid)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)

	count, err := f.matches.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMatchRepositoryRejectsSelfPlay(t *testing.T) {
	f := newFixture(t)
	ids := f.register(t, "A")

	err := f.matches.Create(context.Background(), nil, &models.Match{WinnerID: ids[0], LoserID: ids[0]})
	assert.ErrorIs(t, err, ErrMatchSelfPlay)
}

func TestDeleteAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.register(t, "A", "B", "C")
	f.report(t, ids[0], ids[1])
	f.report(t, ids[1], ids[2])

	matches, err := f.matches.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, ids[0], matches[0].WinnerID)

	n, err := f.matches.DeleteAll(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	standings, err := f.standings.List(ctx, nil)
	require.NoError(t, err)
	for _, s := range standings {
		assert.Zero(t, s.Wins)
		assert.Zero(t, s.Matches)
	}

	f.report(t, ids[2], ids[0])
	n, err = f.players.DeleteAll(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	// Matches go with their players.
	count, err := f.matches.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}
