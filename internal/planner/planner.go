// Package planner manages the monthly budget and savings goals on top of the
// progress tracker. All amounts are whole rupiah.
package planner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/alexanderramin/fincerdas/internal/progression"
)

// Point awards for planner actions.
const (
	SavePoints       = 15
	AddGoalPoints    = 20
	UpdateGoalPoints = 10
)

var (
	ErrEmptyGoalName = errors.New("goal name is empty")
	ErrInvalidTarget = errors.New("goal target must be positive")
)

// Service applies planner mutations through the tracker so every change is
// persisted and awarded consistently.
type Service struct {
	tracker *progression.Tracker
}

func NewService(tracker *progression.Tracker) *Service {
	return &Service{tracker: tracker}
}

// Budget returns the current monthly allocation.
func (s *Service) Budget() domain.Planner {
	return s.tracker.Document().Planner
}

// Goals returns the current savings goals.
func (s *Service) Goals() []domain.Goal {
	return s.tracker.Document().Planner.Goals
}

// SaveBudget stores the allocation and pays the planner award. Negative
// amounts are clamped to zero.
func (s *Service) SaveBudget(ctx context.Context, income, needs, wants, savings int64) error {
	p := &s.tracker.Document().Planner
	p.Income = max64(income, 0)
	p.Needs = max64(needs, 0)
	p.Wants = max64(wants, 0)
	p.Savings = max64(savings, 0)
	return s.tracker.AddPoints(ctx, SavePoints, "Planner tersimpan")
}

// Allocation is a needs/wants/savings split of an income.
type Allocation struct {
	Needs   int64
	Wants   int64
	Savings int64
}

// AutoAllocate splits an income 50/30/20. Savings takes the rounding
// remainder so the three parts always sum to the income.
func AutoAllocate(income int64) Allocation {
	if income < 0 {
		income = 0
	}
	needs := income * 50 / 100
	wants := income * 30 / 100
	return Allocation{Needs: needs, Wants: wants, Savings: income - needs - wants}
}

// AddGoal creates a goal and pays the award. The initial saved amount is
// clamped to [0, target].
func (s *Service) AddGoal(ctx context.Context, name string, target, saved int64) (*domain.Goal, error) {
	if name == "" {
		return nil, ErrEmptyGoalName
	}
	if target <= 0 {
		return nil, ErrInvalidTarget
	}

	goal := domain.Goal{
		ID:     uuid.NewString(),
		Name:   name,
		Target: target,
		Saved:  domain.ClampSaved(saved, target),
	}
	p := &s.tracker.Document().Planner
	p.Goals = append(p.Goals, goal)

	if err := s.tracker.AddPoints(ctx, AddGoalPoints, "Target baru: "+name); err != nil {
		return nil, err
	}
	return &p.Goals[len(p.Goals)-1], nil
}

// UpdateGoalSaved sets a goal's saved amount, clamped to [0, target], and
// pays the award. A missing id mutates nothing and pays nothing.
func (s *Service) UpdateGoalSaved(ctx context.Context, id string, saved int64) error {
	goal := s.tracker.Document().FindGoal(id)
	if goal == nil {
		return nil
	}
	goal.Saved = domain.ClampSaved(saved, goal.Target)
	return s.tracker.AddPoints(ctx, UpdateGoalPoints, "Progress: "+goal.Name)
}

// DeleteGoal removes a goal. No points; deleting is bookkeeping, not
// progress. A missing id mutates nothing.
func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	p := &s.tracker.Document().Planner
	for i, g := range p.Goals {
		if g.ID == id {
			p.Goals = append(p.Goals[:i], p.Goals[i+1:]...)
			return s.tracker.Save(ctx)
		}
	}
	return nil
}

func max64(v, floor int64) int64 {
	if v < floor {
		return floor
	}
	return v
}
