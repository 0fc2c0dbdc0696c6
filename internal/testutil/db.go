package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/db"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// NewDB opens an in-memory sqlite database with the real migrations
// applied. Capped at one connection, in-memory databases are
// per-connection.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}
