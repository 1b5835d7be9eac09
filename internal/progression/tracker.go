package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/alexanderramin/fincerdas/internal/repository"
)

// Point awards for the fixed progression events.
const (
	BadgeBonus          = 50
	ModuleBonus         = 120
	ChecklistBase       = 10
	ChecklistPerChecked = 3
)

// Notifier receives short-lived, human-readable notifications (point awards,
// level-ups). Nothing is persisted; the display is transient.
type Notifier interface {
	Notify(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}

// Tracker owns the loaded progress document and funnels every mutation
// through a whole-document save. There is exactly one writer by construction
// (all mutations run on the event loop), so no locking is needed.
type Tracker struct {
	doc      *domain.ProgressDocument
	repo     repository.ProgressRepo
	notifier Notifier

	// onSave, when set, receives the points/level summary after every
	// persisted mutation so a HUD can refresh immediately.
	onSave func(points, level int)
}

// NewTracker wraps an already-loaded document.
func NewTracker(doc *domain.ProgressDocument, repo repository.ProgressRepo, notifier Notifier) *Tracker {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Tracker{doc: doc, repo: repo, notifier: notifier}
}

// LoadTracker loads the stored document (or the default) and wraps it.
func LoadTracker(ctx context.Context, repo repository.ProgressRepo, notifier Notifier) (*Tracker, error) {
	doc, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	return NewTracker(doc, repo, notifier), nil
}

// Document returns the live document. Callers must not retain it across
// mutations; reads are always current because there is a single instance.
func (t *Tracker) Document() *domain.ProgressDocument {
	return t.doc
}

// SetNotifier swaps the notification sink, typically once the UI exists.
func (t *Tracker) SetNotifier(n Notifier) {
	if n == nil {
		n = NopNotifier{}
	}
	t.notifier = n
}

// OnSave registers the summary listener invoked after every persisted save.
func (t *Tracker) OnSave(fn func(points, level int)) {
	t.onSave = fn
}

// Save persists the whole document and fires the summary listener.
func (t *Tracker) Save(ctx context.Context) error {
	if err := t.repo.Save(ctx, t.doc); err != nil {
		return err
	}
	if t.onSave != nil {
		t.onSave(t.doc.Points, t.doc.Level)
	}
	return nil
}

// LevelThreshold returns the XP needed to leave the given level.
func LevelThreshold(level int) int {
	return 200 + (level-1)*80
}

// AddPoints awards points, accrues XP at 80%, runs the leveling loop, and
// persists. A non-empty reason is included in the notification.
func (t *Tracker) AddPoints(ctx context.Context, amount int, reason string) error {
	t.doc.Points += amount
	if gain := amount * 8 / 10; gain > 0 {
		t.doc.XP += gain
	}
	t.levelUp()

	if err := t.Save(ctx); err != nil {
		return err
	}

	if reason != "" {
		t.notifier.Notify(fmt.Sprintf("%s — +%d poin", reason, amount))
	} else {
		t.notifier.Notify(fmt.Sprintf("+%d poin", amount))
	}
	return nil
}

// levelUp consumes XP while it exceeds the current threshold. A single large
// award can cross several levels, so this loops instead of branching once.
func (t *Tracker) levelUp() {
	for t.doc.XP >= LevelThreshold(t.doc.Level) {
		t.doc.XP -= LevelThreshold(t.doc.Level)
		t.doc.Level++
		t.notifier.Notify(fmt.Sprintf("Naik level! Sekarang Lv %d", t.doc.Level))
	}
}

// GrantBadge inserts the badge and pays the fixed bonus. Idempotent: a badge
// already owned is a no-op.
func (t *Tracker) GrantBadge(ctx context.Context, id domain.BadgeID) error {
	if t.doc.HasBadge(id) {
		return nil
	}
	badge := content.BadgeByID(id)
	if badge == nil {
		return nil
	}
	t.doc.Badges = append(t.doc.Badges, id)
	return t.AddPoints(ctx, BadgeBonus, "Badge: "+badge.Label)
}

// UpdateStreak records a visit on the given day. Must run exactly once per
// session start, before the first render. Idempotent per calendar day:
// a repeat call on the same day changes nothing. A gap of exactly one day
// extends the streak; any other gap (including clock skew) resets it.
func (t *Tracker) UpdateStreak(ctx context.Context, today time.Time) error {
	key := today.Format(domain.DayKeyLayout)
	last := t.doc.Streak.LastVisit

	if last == "" {
		t.doc.Streak = domain.Streak{LastVisit: key, Count: 1}
		return t.Save(ctx)
	}
	if last == key {
		return nil
	}

	prev, err := time.Parse(domain.DayKeyLayout, last)
	if err != nil {
		t.doc.Streak = domain.Streak{LastVisit: key, Count: 1}
		return t.Save(ctx)
	}
	cur, _ := time.Parse(domain.DayKeyLayout, key)

	if int(cur.Sub(prev).Hours()/24) == 1 {
		t.doc.Streak.Count++
	} else {
		t.doc.Streak.Count = 1
	}
	t.doc.Streak.LastVisit = key
	return t.Save(ctx)
}

// CompleteModule marks the module complete, paying the completion bonus and
// its badge. Re-completion is a no-op; unknown ids mutate nothing.
// Returns whether the reward was granted by this call.
func (t *Tracker) CompleteModule(ctx context.Context, id domain.ModuleID) (bool, error) {
	mod := content.ModuleByID(id)
	if mod == nil {
		return false, nil
	}
	if t.doc.ModuleCompleted(id) {
		return false, nil
	}

	t.doc.CompletedModules = append(t.doc.CompletedModules, id)
	if err := t.AddPoints(ctx, ModuleBonus, "Selesai: "+mod.Title); err != nil {
		return false, err
	}
	if badge, ok := content.BadgeForModule(id); ok {
		if err := t.GrantBadge(ctx, badge.ID); err != nil {
			return false, err
		}
	}
	return true, nil
}

// RecordQuizScore stores a new best-if-improved quiz percentage and pays the
// already-computed points. The stored best never decreases.
func (t *Tracker) RecordQuizScore(ctx context.Context, id domain.ModuleID, percentage, points int) error {
	if percentage > t.doc.BestQuizScore[id] {
		t.doc.BestQuizScore[id] = percentage
	}
	return t.AddPoints(ctx, points, fmt.Sprintf("Skor kuis %d%%", percentage))
}

// RecordFraudRun stores a new best-if-improved simulator percentage, grants
// the anti-scam badge at 80 or above, and pays the already-computed points.
func (t *Tracker) RecordFraudRun(ctx context.Context, percentage, points int) error {
	if percentage > t.doc.FraudSimBest {
		t.doc.FraudSimBest = percentage
	}
	if percentage >= 80 {
		if err := t.GrantBadge(ctx, domain.BadgeAntiScam); err != nil {
			return err
		}
	}
	return t.AddPoints(ctx, points, fmt.Sprintf("Fraud simulator %d%%", percentage))
}

// SetChecklistItem toggles one checklist entry and persists without awarding
// points. Unknown keys mutate nothing.
func (t *Tracker) SetChecklistItem(ctx context.Context, key string, checked bool) error {
	if !domain.ValidChecklistKey(key) {
		return nil
	}
	t.doc.SecurityChecklist[key] = checked
	return t.Save(ctx)
}

// SaveChecklist pays the checklist award: a base plus a bonus per checked
// habit. Repeated saves pay again; the habit is the point.
func (t *Tracker) SaveChecklist(ctx context.Context) error {
	checked := 0
	for _, v := range t.doc.SecurityChecklist {
		if v {
			checked++
		}
	}
	return t.AddPoints(ctx, ChecklistBase+checked*ChecklistPerChecked, "Checklist keamanan")
}

// ResetChecklist clears every checklist entry.
func (t *Tracker) ResetChecklist(ctx context.Context) error {
	for k := range t.doc.SecurityChecklist {
		t.doc.SecurityChecklist[k] = false
	}
	return t.Save(ctx)
}
