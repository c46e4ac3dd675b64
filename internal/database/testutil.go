package database

import (
	"testing"

	"github.com/diegoclair/weekday-api/migrator/sqlite"
	"github.com/stretchr/testify/require"
)

// SetupTestDB returns a migrated in-memory database that is closed when the
// test ends. The pool is pinned to one connection because each sqlite
// connection to :memory: sees its own empty database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := open(dsn(":memory:", false), 1)
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close test database")
	})

	require.NoError(t, sqlite.Migrate(db.DB()), "Failed to run migrations on test database")

	return db
}
