package progression_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/alexanderramin/fincerdas/internal/progression"
	"github.com/alexanderramin/fincerdas/internal/repository"
	"github.com/alexanderramin/fincerdas/internal/testutil"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(msg string) {
	n.messages = append(n.messages, msg)
}

func newTracker(t *testing.T) (*progression.Tracker, *recordingNotifier) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProgressRepo(database)
	notifier := &recordingNotifier{}
	tracker, err := progression.LoadTracker(context.Background(), repo, notifier)
	require.NoError(t, err)
	return tracker, notifier
}

func TestAddPointsAccruesXP(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.AddPoints(ctx, 100, "tes"))

	doc := tracker.Document()
	assert.Equal(t, 100, doc.Points)
	assert.Equal(t, 80, doc.XP)
	assert.Equal(t, 1, doc.Level)
}

func TestAddPointsLevelsAcrossMultipleThresholds(t *testing.T) {
	tracker, notifier := newTracker(t)
	ctx := context.Background()

	// 1000 points = 800 XP: crosses level 1 (200) and level 2 (280),
	// leaving 320 toward level 3's threshold of 360.
	require.NoError(t, tracker.AddPoints(ctx, 1000, ""))

	doc := tracker.Document()
	assert.Equal(t, 3, doc.Level)
	assert.Equal(t, 320, doc.XP)

	levelUps := 0
	for _, msg := range notifier.messages {
		if msg == "Naik level! Sekarang Lv 2" || msg == "Naik level! Sekarang Lv 3" {
			levelUps++
		}
	}
	assert.Equal(t, 2, levelUps)
}

func TestLevelThreshold(t *testing.T) {
	assert.Equal(t, 200, progression.LevelThreshold(1))
	assert.Equal(t, 280, progression.LevelThreshold(2))
	assert.Equal(t, 520, progression.LevelThreshold(5))
}

func TestGrantBadgeIdempotent(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.GrantBadge(ctx, domain.BadgeRookie))
	require.NoError(t, tracker.GrantBadge(ctx, domain.BadgeRookie))

	doc := tracker.Document()
	assert.Equal(t, []domain.BadgeID{domain.BadgeRookie}, doc.Badges)
	assert.Equal(t, progression.BadgeBonus, doc.Points)
}

func TestGrantBadgeUnknownID(t *testing.T) {
	tracker, _ := newTracker(t)

	require.NoError(t, tracker.GrantBadge(context.Background(), "b_nope"))

	doc := tracker.Document()
	assert.Empty(t, doc.Badges)
	assert.Zero(t, doc.Points)
}

func TestUpdateStreak(t *testing.T) {
	day := func(s string) time.Time {
		parsed, err := time.Parse(domain.DayKeyLayout, s)
		require.NoError(t, err)
		return parsed
	}

	t.Run("first visit starts at one", func(t *testing.T) {
		tracker, _ := newTracker(t)
		require.NoError(t, tracker.UpdateStreak(context.Background(), day("2026-09-01")))

		assert.Equal(t, domain.Streak{LastVisit: "2026-09-01", Count: 1}, tracker.Document().Streak)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		tracker, _ := newTracker(t)
		ctx := context.Background()
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-01")))
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-01")))

		assert.Equal(t, 1, tracker.Document().Streak.Count)
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		tracker, _ := newTracker(t)
		ctx := context.Background()
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-01")))
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-02")))

		assert.Equal(t, domain.Streak{LastVisit: "2026-09-02", Count: 2}, tracker.Document().Streak)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		tracker, _ := newTracker(t)
		ctx := context.Background()
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-01")))
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-02")))
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-05")))

		assert.Equal(t, domain.Streak{LastVisit: "2026-09-05", Count: 1}, tracker.Document().Streak)
	})

	t.Run("clock moved backwards resets to one", func(t *testing.T) {
		tracker, _ := newTracker(t)
		ctx := context.Background()
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-05")))
		require.NoError(t, tracker.UpdateStreak(ctx, day("2026-09-03")))

		assert.Equal(t, domain.Streak{LastVisit: "2026-09-03", Count: 1}, tracker.Document().Streak)
	})
}

func TestCompleteModule(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	awarded, err := tracker.CompleteModule(ctx, domain.ModuleIntro)
	require.NoError(t, err)
	assert.True(t, awarded)

	doc := tracker.Document()
	assert.True(t, doc.ModuleCompleted(domain.ModuleIntro))
	assert.True(t, doc.HasBadge(domain.BadgeRookie))
	assert.Equal(t, progression.ModuleBonus+progression.BadgeBonus, doc.Points)

	awarded, err = tracker.CompleteModule(ctx, domain.ModuleIntro)
	require.NoError(t, err)
	assert.False(t, awarded)
	assert.Equal(t, progression.ModuleBonus+progression.BadgeBonus, tracker.Document().Points)
}

func TestCompleteModuleUnknownID(t *testing.T) {
	tracker, _ := newTracker(t)

	awarded, err := tracker.CompleteModule(context.Background(), "m99")
	require.NoError(t, err)
	assert.False(t, awarded)
	assert.Zero(t, tracker.Document().Points)
}

func TestRecordQuizScoreKeepsBest(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.RecordQuizScore(ctx, domain.ModuleTypes, 67, 110))
	assert.Equal(t, 67, tracker.Document().BestQuizScore[domain.ModuleTypes])

	require.NoError(t, tracker.RecordQuizScore(ctx, domain.ModuleTypes, 33, 60))
	assert.Equal(t, 67, tracker.Document().BestQuizScore[domain.ModuleTypes])
}

func TestRecordFraudRunGrantsBadgeAtEighty(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.RecordFraudRun(ctx, 67, 97))
	assert.False(t, tracker.Document().HasBadge(domain.BadgeAntiScam))
	assert.Equal(t, 67, tracker.Document().FraudSimBest)

	require.NoError(t, tracker.RecordFraudRun(ctx, 100, 130))
	assert.True(t, tracker.Document().HasBadge(domain.BadgeAntiScam))
	assert.Equal(t, 100, tracker.Document().FraudSimBest)
}

func TestSaveChecklistAward(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.SetChecklistItem(ctx, "otpNeverShare", true))
	require.NoError(t, tracker.SetChecklistItem(ctx, "mfaOn", true))
	require.NoError(t, tracker.SetChecklistItem(ctx, "bogusKey", true))
	require.NoError(t, tracker.SaveChecklist(ctx))

	doc := tracker.Document()
	assert.Equal(t, progression.ChecklistBase+2*progression.ChecklistPerChecked, doc.Points)
	assert.NotContains(t, doc.SecurityChecklist, "bogusKey")
}

func TestOnSaveListener(t *testing.T) {
	tracker, _ := newTracker(t)

	var gotPoints, gotLevel int
	tracker.OnSave(func(points, level int) {
		gotPoints, gotLevel = points, level
	})

	require.NoError(t, tracker.AddPoints(context.Background(), 40, ""))
	assert.Equal(t, 40, gotPoints)
	assert.Equal(t, 1, gotLevel)
}

func TestTrackerPersistsAcrossLoads(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProgressRepo(database)
	ctx := context.Background()

	tracker, err := progression.LoadTracker(ctx, repo, nil)
	require.NoError(t, err)
	_, err = tracker.CompleteModule(ctx, domain.ModuleSecurity)
	require.NoError(t, err)

	reloaded, err := progression.LoadTracker(ctx, repo, nil)
	require.NoError(t, err)
	doc := reloaded.Document()
	assert.True(t, doc.ModuleCompleted(domain.ModuleSecurity))
	assert.True(t, doc.HasBadge(domain.BadgeGuardian))
	assert.Equal(t, progression.ModuleBonus+progression.BadgeBonus, doc.Points)
}
