package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/fincerdas/internal/db"
	"github.com/alexanderramin/fincerdas/internal/domain"
)

// progressKey is the fixed id of the singleton document row.
const progressKey = "default"

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
// The document is serialized to JSON and stored in a single row; every save
// replaces the row wholesale.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Load(ctx context.Context) (*domain.ProgressDocument, error) {
	query := `SELECT document FROM progress_state WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, progressKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultProgress(), nil
		}
		return nil, fmt.Errorf("scanning progress document: %w", err)
	}

	doc := domain.DefaultProgress()
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		// Corrupt blob: treat as no prior state rather than failing.
		return domain.DefaultProgress(), nil
	}
	doc.Normalize()
	return doc, nil
}

func (r *SQLiteProgressRepo) Save(ctx context.Context, doc *domain.ProgressDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling progress document: %w", err)
	}

	query := `INSERT OR REPLACE INTO progress_state (id, document, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, progressKey, string(raw), nowUTC()); err != nil {
		return fmt.Errorf("upserting progress document: %w", err)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
