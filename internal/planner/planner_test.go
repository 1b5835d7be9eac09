package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fincerdas/internal/planner"
	"github.com/alexanderramin/fincerdas/internal/progression"
	"github.com/alexanderramin/fincerdas/internal/repository"
	"github.com/alexanderramin/fincerdas/internal/testutil"
)

func newService(t *testing.T) (*planner.Service, *progression.Tracker) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProgressRepo(database)
	tracker, err := progression.LoadTracker(context.Background(), repo, nil)
	require.NoError(t, err)
	return planner.NewService(tracker), tracker
}

func TestSaveBudget(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveBudget(ctx, 5000000, 2500000, 1500000, 1000000))

	b := svc.Budget()
	assert.Equal(t, int64(5000000), b.Income)
	assert.Equal(t, int64(2500000), b.Needs)
	assert.Equal(t, int64(1500000), b.Wants)
	assert.Equal(t, int64(1000000), b.Savings)
}

func TestSaveBudgetClampsNegatives(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.SaveBudget(context.Background(), -1, -1, -1, -1))

	b := svc.Budget()
	assert.Zero(t, b.Income)
	assert.Zero(t, b.Needs)
}

func TestAutoAllocate(t *testing.T) {
	alloc := planner.AutoAllocate(5000000)
	assert.Equal(t, int64(2500000), alloc.Needs)
	assert.Equal(t, int64(1500000), alloc.Wants)
	assert.Equal(t, int64(1000000), alloc.Savings)

	// Remainder lands in savings so the parts sum exactly.
	alloc = planner.AutoAllocate(101)
	assert.Equal(t, int64(101), alloc.Needs+alloc.Wants+alloc.Savings)

	assert.Equal(t, planner.Allocation{}, planner.AutoAllocate(-500))
}

func TestAddGoal(t *testing.T) {
	svc, _ := newService(t)

	goal, err := svc.AddGoal(context.Background(), "Dana darurat", 12000000, 15000000)
	require.NoError(t, err)

	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, "Dana darurat", goal.Name)
	assert.Equal(t, int64(12000000), goal.Saved) // clamped to target
	assert.Len(t, svc.Goals(), 1)
}

func TestAddGoalValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.AddGoal(ctx, "", 1000, 0)
	assert.ErrorIs(t, err, planner.ErrEmptyGoalName)

	_, err = svc.AddGoal(ctx, "Liburan", 0, 0)
	assert.ErrorIs(t, err, planner.ErrInvalidTarget)

	assert.Empty(t, svc.Goals())
}

func TestUpdateGoalSaved(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	goal, err := svc.AddGoal(ctx, "Laptop", 10000000, 0)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateGoalSaved(ctx, goal.ID, 4000000))
	assert.Equal(t, int64(4000000), svc.Goals()[0].Saved)

	require.NoError(t, svc.UpdateGoalSaved(ctx, goal.ID, -50))
	assert.Zero(t, svc.Goals()[0].Saved)
}

func TestUpdateGoalSavedMissingIDIsNoOp(t *testing.T) {
	svc, tracker := newService(t)

	require.NoError(t, svc.UpdateGoalSaved(context.Background(), "missing", 100))
	assert.Zero(t, tracker.Document().Points)
}

func TestDeleteGoal(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	goal, err := svc.AddGoal(ctx, "Sepeda", 3000000, 0)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGoal(ctx, goal.ID))
	assert.Empty(t, svc.Goals())

	// Deleting an already-removed goal changes nothing.
	require.NoError(t, svc.DeleteGoal(ctx, goal.ID))
	assert.Empty(t, svc.Goals())
}

func TestGoalAwards(t *testing.T) {
	svc, tracker := newService(t)
	ctx := context.Background()

	goal, err := svc.AddGoal(ctx, "Motor", 20000000, 0)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateGoalSaved(ctx, goal.ID, 500000))
	require.NoError(t, svc.SaveBudget(ctx, 4000000, 2000000, 1200000, 800000))

	total := planner.AddGoalPoints + planner.UpdateGoalPoints + planner.SavePoints
	assert.Equal(t, total, tracker.Document().Points)
}
