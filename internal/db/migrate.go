package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is re-run on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// The whole progress document is stored as one serialized blob under a
	// fixed key. Writes replace the row wholesale; there are no field-level
	// updates.
	`CREATE TABLE IF NOT EXISTS progress_state (
		id         TEXT PRIMARY KEY DEFAULT 'default',
		document   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
