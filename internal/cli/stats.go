package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/alexanderramin/fincerdas/internal/progression"
)

// renderStats builds the progress summary shown by the "stats" command, both
// inside the TUI and on stdout.
func renderStats(doc *domain.ProgressDocument) string {
	var b strings.Builder

	b.WriteString("\n" + formatter.Header("Progress") + "\n")
	fmt.Fprintf(&b, "  Poin    %s\n", formatter.Bold(fmt.Sprintf("%d", doc.Points)))
	fmt.Fprintf(&b, "  Level   %s  %s\n",
		formatter.Bold(fmt.Sprintf("Lv %d", doc.Level)),
		formatter.RenderXP(doc.XP, progression.LevelThreshold(doc.Level), 16))
	fmt.Fprintf(&b, "  Streak  %s\n", formatter.StreakLabel(doc.Streak.Count))

	b.WriteString("\n" + formatter.Header("Modul") + "\n")
	for _, mod := range content.Modules() {
		best := ""
		if pct, ok := doc.BestQuizScore[mod.ID]; ok {
			best = formatter.Dim(fmt.Sprintf("  kuis terbaik %d%%", pct))
		}
		fmt.Fprintf(&b, "  %s %s%s\n", formatter.CompletionPill(doc.ModuleCompleted(mod.ID)), mod.Title, best)
	}

	b.WriteString("\n" + formatter.Header("Badge") + "\n  ")
	var pills []string
	for _, badge := range content.Badges() {
		pills = append(pills, formatter.BadgePill(badge.Label, doc.HasBadge(badge.ID)))
	}
	b.WriteString(strings.Join(pills, "  ") + "\n")

	if doc.FraudSimBest > 0 {
		fmt.Fprintf(&b, "\n  Simulasi penipuan terbaik: %d%%\n", doc.FraudSimBest)
	}

	return b.String()
}
