package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesProgressState(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'progress_state'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "progress_state", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list must not error.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}
