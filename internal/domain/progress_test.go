package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProgress(t *testing.T) {
	d := DefaultProgress()

	assert.Equal(t, 0, d.Points)
	assert.Equal(t, 1, d.Level)
	assert.Empty(t, d.Badges)
	assert.Empty(t, d.CompletedModules)
	assert.NotNil(t, d.BestQuizScore)
	assert.Equal(t, "", d.Streak.LastVisit)
	assert.Len(t, d.SecurityChecklist, len(ChecklistKeys))
	for _, k := range ChecklistKeys {
		assert.False(t, d.SecurityChecklist[k])
	}
}

func TestNormalize_DropsUnknownIDs(t *testing.T) {
	d := DefaultProgress()
	d.Badges = []BadgeID{BadgeRookie, "b_bogus", BadgeRookie}
	d.CompletedModules = []ModuleID{ModuleIntro, "m99"}
	d.BestQuizScore = map[ModuleID]int{ModuleIntro: 150, "m99": 50}
	d.SecurityChecklist = map[string]bool{"otpNeverShare": true, "legacyKey": true}

	d.Normalize()

	assert.Equal(t, []BadgeID{BadgeRookie}, d.Badges)
	assert.Equal(t, []ModuleID{ModuleIntro}, d.CompletedModules)
	assert.Equal(t, map[ModuleID]int{ModuleIntro: 100}, d.BestQuizScore)
	assert.True(t, d.SecurityChecklist["otpNeverShare"])
	_, hasLegacy := d.SecurityChecklist["legacyKey"]
	assert.False(t, hasLegacy)
	assert.Len(t, d.SecurityChecklist, len(ChecklistKeys))
}

func TestNormalize_ClampsCounters(t *testing.T) {
	d := DefaultProgress()
	d.Points = -10
	d.XP = -5
	d.Level = 0
	d.FraudSimBest = 120
	d.Planner.Income = -100

	d.Normalize()

	assert.Equal(t, 0, d.Points)
	assert.Equal(t, 0, d.XP)
	assert.Equal(t, 1, d.Level)
	assert.Equal(t, 100, d.FraudSimBest)
	assert.Equal(t, int64(0), d.Planner.Income)
}

func TestNormalize_RepairsStreak(t *testing.T) {
	d := DefaultProgress()
	d.Streak = Streak{LastVisit: "not-a-date", Count: 7}
	d.Normalize()
	assert.Equal(t, "", d.Streak.LastVisit)
	assert.Equal(t, 0, d.Streak.Count)

	d.Streak = Streak{LastVisit: "2026-09-01", Count: 0}
	d.Normalize()
	assert.Equal(t, 1, d.Streak.Count)
}

func TestNormalize_RepairsGoals(t *testing.T) {
	d := DefaultProgress()
	d.Planner.Goals = []Goal{
		{ID: "g1", Name: "Dana darurat", Target: 15000000, Saved: 20000000},
		{ID: "", Name: "no id", Target: 100, Saved: 0},
		{ID: "g2", Name: "", Target: 100, Saved: 0},
		{ID: "g3", Name: "bad target", Target: 0, Saved: 0},
	}

	d.Normalize()

	assert.Len(t, d.Planner.Goals, 1)
	assert.Equal(t, int64(15000000), d.Planner.Goals[0].Saved)
}

func TestGoalProgressPct(t *testing.T) {
	assert.Equal(t, 50, Goal{Target: 200, Saved: 100}.ProgressPct())
	assert.Equal(t, 67, Goal{Target: 3, Saved: 2}.ProgressPct())
	assert.Equal(t, 0, Goal{Target: 0, Saved: 100}.ProgressPct())
}

func TestHasBadgeAndModuleCompleted(t *testing.T) {
	d := DefaultProgress()
	assert.False(t, d.HasBadge(BadgeRookie))
	d.Badges = append(d.Badges, BadgeRookie)
	assert.True(t, d.HasBadge(BadgeRookie))

	assert.False(t, d.ModuleCompleted(ModuleIntro))
	d.CompletedModules = append(d.CompletedModules, ModuleIntro)
	assert.True(t, d.ModuleCompleted(ModuleIntro))
}
