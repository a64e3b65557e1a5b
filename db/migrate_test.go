package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements(`
-- leading comment
CREATE TABLE a (id INTEGER);

  -- another
CREATE VIEW v AS SELECT id FROM a;
`)
	assert.Equal(t, []string{
		"CREATE TABLE a (id INTEGER)",
		"CREATE VIEW v AS SELECT id FROM a",
	}, stmts)
}

func TestSchemasHaveTheSameObjects(t *testing.T) {
	for _, schema := range []string{postgresSchema, sqliteSchema} {
		stmts := splitStatements(schema)
		require.Len(t, stmts, 5)
		assert.Contains(t, stmts[0], "players")
		assert.Contains(t, stmts[1], "matches_distinct_players")
		assert.Contains(t, stmts[4], "standings")
	}
}

func TestMigrateSQLiteIsRepeatable(t *testing.T) {
	conn, err := Connect("sqlite3", ":memory:?_foreign_keys=1", time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, conn, "sqlite3"))
	require.NoError(t, Migrate(ctx, conn, "sqlite3"))

	var n int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM standings`).Scan(&n))
	assert.Zero(t, n)

	var fk int
	require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrateUnknownDriver(t *testing.T) {
	conn, err := Connect("sqlite3", ":memory:", time.Second)
	require.NoError(t, err)
	defer conn.Close()

	assert.Error(t, Migrate(context.Background(), conn, "mysql"))
}
