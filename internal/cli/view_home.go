package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/progression"
	"github.com/alexanderramin/fincerdas/internal/router"
)

// homeView is the landing screen: progress summary plus jump-off points.
type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID       { return ViewHome }
func (v *homeView) Title() string    { return "Beranda" }
func (v *homeView) Fragment() string { return "#/beranda" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-7", "navigasi")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "mulai belajar")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "keluar")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "b", "enter":
			return v, gotoRoute(router.Route{Page: router.PageLearn, Query: map[string]string{}})
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	doc := v.state.App.Tracker.Document()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold("Belajar keuangan digital dengan aman") + "\n")
	b.WriteString("  " + formatter.Dim("Pinjaman, investasi, keamanan, dan regulasi dalam bahasa sederhana.") + "\n\n")

	completed := 0
	for _, mod := range content.Modules() {
		if doc.ModuleCompleted(mod.ID) {
			completed++
		}
	}

	summary := fmt.Sprintf("%s\n%s\n\nModul selesai  %d/%d\nBadge          %d/%d",
		fmt.Sprintf("Poin  %s    Level %s", formatter.Bold(fmt.Sprintf("%d", doc.Points)), formatter.Bold(fmt.Sprintf("%d", doc.Level))),
		formatter.RenderXP(doc.XP, progression.LevelThreshold(doc.Level), 24),
		completed, len(content.Modules()),
		len(doc.Badges), len(content.Badges()))
	b.WriteString(formatter.RenderBox("Progress kamu", summary))

	b.WriteString("\n\n  " + formatter.Header("Lanjutkan") + "\n")
	for _, mod := range content.Modules() {
		if !doc.ModuleCompleted(mod.ID) {
			fmt.Fprintf(&b, "  %s %s\n", formatter.StyleBlue.Render("▸"), mod.Title)
			b.WriteString("    " + formatter.Dim(formatter.Truncate(mod.Desc, 64)) + "\n")
			break
		}
	}
	b.WriteString("\n  " + formatter.Dim("Tekan b untuk membuka daftar modul, atau : lalu \"go #/kuis\".") + "\n")

	return b.String()
}
