package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/alexanderramin/fincerdas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepo_Load_EmptyStoreReturnsDefault(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, 0, doc.Points)
	assert.Equal(t, 1, doc.Level)
	assert.Empty(t, doc.Badges)
}

func TestProgressRepo_SaveThenLoad_RoundTrips(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	doc := domain.DefaultProgress()
	doc.Points = 340
	doc.XP = 72
	doc.Level = 2
	doc.Badges = []domain.BadgeID{domain.BadgeRookie}
	doc.CompletedModules = []domain.ModuleID{domain.ModuleIntro}
	doc.BestQuizScore[domain.ModuleIntro] = 67
	doc.Streak = domain.Streak{LastVisit: "2026-09-01", Count: 3}
	doc.Planner.Goals = []domain.Goal{{ID: "g1", Name: "Dana darurat", Target: 15000000, Saved: 2000000}}
	require.NoError(t, repo.Save(ctx, doc))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestProgressRepo_Save_ReplacesWholeDocument(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	first := domain.DefaultProgress()
	first.Points = 100
	require.NoError(t, repo.Save(ctx, first))

	second := domain.DefaultProgress()
	second.Points = 250
	require.NoError(t, repo.Save(ctx, second))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM progress_state`).Scan(&count))
	assert.Equal(t, 1, count)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, got.Points)
}

func TestProgressRepo_Load_CorruptBlobFallsBackToDefault(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO progress_state (id, document, updated_at) VALUES ('default', '{not json', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProgress(), doc)
}

func TestProgressRepo_Load_PartialDocumentKeepsDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	// Only points is present; everything else must fall back field-by-field.
	_, err := db.ExecContext(ctx,
		`INSERT INTO progress_state (id, document, updated_at) VALUES ('default', '{"points": 90}', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, doc.Points)
	assert.Equal(t, 1, doc.Level)
	assert.NotNil(t, doc.BestQuizScore)
	assert.Len(t, doc.SecurityChecklist, len(domain.ChecklistKeys))
}

func TestProgressRepo_Load_NormalizesStoredDocument(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO progress_state (id, document, updated_at)
		 VALUES ('default', '{"points": -5, "level": 0, "badges": ["b_rookie", "b_fake"]}', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Points)
	assert.Equal(t, 1, doc.Level)
	assert.Equal(t, []domain.BadgeID{domain.BadgeRookie}, doc.Badges)
}
