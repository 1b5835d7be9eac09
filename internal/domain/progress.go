package domain

import "time"

// DayKeyLayout is the calendar-day key format used by the streak tracker.
const DayKeyLayout = "2006-01-02"

// ProgressDocument is the single persisted entity: the whole gamification and
// planner state of the local user. It is loaded once at startup, mutated in
// place by the engines, and re-persisted wholesale after every mutation.
type ProgressDocument struct {
	Points            int              `json:"points"`
	XP                int              `json:"xp"`
	Level             int              `json:"level"`
	Badges            []BadgeID        `json:"badges"`
	CompletedModules  []ModuleID       `json:"completedModules"`
	BestQuizScore     map[ModuleID]int `json:"bestQuizScore"`
	Streak            Streak           `json:"streak"`
	Planner           Planner          `json:"planner"`
	SecurityChecklist map[string]bool  `json:"securityChecklist"`
	FraudSimBest      int              `json:"fraudSimBest"`
}

// Streak tracks consecutive calendar days of app usage.
// LastVisit is a day key ("2006-01-02"), empty before the first visit.
type Streak struct {
	LastVisit string `json:"lastVisit"`
	Count     int    `json:"count"`
}

// Planner holds the budget allocation and savings goals.
// Amounts are whole rupiah.
type Planner struct {
	Income  int64  `json:"income"`
	Needs   int64  `json:"needs"`
	Wants   int64  `json:"wants"`
	Savings int64  `json:"savings"`
	Goals   []Goal `json:"goals"`
}

// Goal is a user-defined savings target with current progress.
type Goal struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Target int64  `json:"target"`
	Saved  int64  `json:"saved"`
}

// ProgressPct returns the goal's completion percentage, rounded.
// Defensive: returns 0 for a zero target, which the creation guard forbids.
func (g Goal) ProgressPct() int {
	if g.Target <= 0 {
		return 0
	}
	return int(float64(g.Saved)/float64(g.Target)*100 + 0.5)
}

// DefaultProgress returns the schema-default document.
func DefaultProgress() *ProgressDocument {
	checklist := make(map[string]bool, len(ChecklistKeys))
	for _, k := range ChecklistKeys {
		checklist[k] = false
	}
	return &ProgressDocument{
		Level:             1,
		Badges:            []BadgeID{},
		CompletedModules:  []ModuleID{},
		BestQuizScore:     map[ModuleID]int{},
		Planner:           Planner{Goals: []Goal{}},
		SecurityChecklist: checklist,
	}
}

// HasBadge reports whether the badge was already granted.
func (d *ProgressDocument) HasBadge(id BadgeID) bool {
	for _, b := range d.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// ModuleCompleted reports whether the module's completion reward was granted.
func (d *ProgressDocument) ModuleCompleted(id ModuleID) bool {
	for _, m := range d.CompletedModules {
		if m == id {
			return true
		}
	}
	return false
}

// FindGoal returns the goal with the given id, or nil.
func (d *ProgressDocument) FindGoal(id string) *Goal {
	for i := range d.Planner.Goals {
		if d.Planner.Goals[i].ID == id {
			return &d.Planner.Goals[i]
		}
	}
	return nil
}

// Normalize repairs a document loaded from storage so that every field
// satisfies its invariant. Unknown badge, module, and checklist keys are
// dropped; counters are clamped into range; nil collections are replaced with
// empty ones. Called on every load so a partial or legacy document degrades
// field-by-field to the default instead of failing.
func (d *ProgressDocument) Normalize() {
	if d.Points < 0 {
		d.Points = 0
	}
	if d.Level < 1 {
		d.Level = 1
	}
	if d.XP < 0 {
		d.XP = 0
	}

	badges := d.Badges[:0]
	seen := map[BadgeID]bool{}
	for _, b := range d.Badges {
		if ValidBadgeIDs[b] && !seen[b] {
			seen[b] = true
			badges = append(badges, b)
		}
	}
	if badges == nil {
		badges = []BadgeID{}
	}
	d.Badges = badges

	mods := d.CompletedModules[:0]
	seenMod := map[ModuleID]bool{}
	for _, m := range d.CompletedModules {
		if ValidModuleIDs[m] && !seenMod[m] {
			seenMod[m] = true
			mods = append(mods, m)
		}
	}
	if mods == nil {
		mods = []ModuleID{}
	}
	d.CompletedModules = mods

	best := map[ModuleID]int{}
	for m, pct := range d.BestQuizScore {
		if !ValidModuleIDs[m] {
			continue
		}
		best[m] = clampPct(pct)
	}
	d.BestQuizScore = best

	if _, err := time.Parse(DayKeyLayout, d.Streak.LastVisit); err != nil {
		d.Streak.LastVisit = ""
	}
	if d.Streak.LastVisit == "" {
		d.Streak.Count = 0
	} else if d.Streak.Count < 1 {
		d.Streak.Count = 1
	}

	d.Planner.Income = clampAmount(d.Planner.Income)
	d.Planner.Needs = clampAmount(d.Planner.Needs)
	d.Planner.Wants = clampAmount(d.Planner.Wants)
	d.Planner.Savings = clampAmount(d.Planner.Savings)

	goals := d.Planner.Goals[:0]
	for _, g := range d.Planner.Goals {
		if g.ID == "" || g.Name == "" || g.Target <= 0 {
			continue
		}
		g.Saved = ClampSaved(g.Saved, g.Target)
		goals = append(goals, g)
	}
	if goals == nil {
		goals = []Goal{}
	}
	d.Planner.Goals = goals

	checklist := make(map[string]bool, len(ChecklistKeys))
	for _, k := range ChecklistKeys {
		checklist[k] = d.SecurityChecklist[k]
	}
	d.SecurityChecklist = checklist

	d.FraudSimBest = clampPct(d.FraudSimBest)
}

// ClampSaved clamps a saved amount into [0, target].
func ClampSaved(saved, target int64) int64 {
	if saved < 0 {
		return 0
	}
	if saved > target {
		return target
	}
	return saved
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func clampAmount(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
