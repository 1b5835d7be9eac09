package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/content"
)

// learnView lists the curriculum modules.
type learnView struct {
	state   *SharedState
	modules []content.Module
	cursor  int
}

func newLearnView(state *SharedState) *learnView {
	return &learnView{state: state, modules: content.Modules()}
}

func (v *learnView) ID() ViewID       { return ViewLearn }
func (v *learnView) Title() string    { return "Belajar" }
func (v *learnView) Fragment() string { return "#/belajar" }

func (v *learnView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "pilih")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buka modul")),
	}
}

func (v *learnView) Init() tea.Cmd { return nil }

func (v *learnView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.modules)-1 {
			v.cursor++
		}
	case "enter":
		mod := v.modules[v.cursor]
		return v, pushView(newModuleView(v.state, &mod, ""))
	}
	return v, nil
}

func (v *learnView) View() string {
	doc := v.state.App.Tracker.Document()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Modul belajar") + "\n")

	for i, mod := range v.modules {
		marker := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			marker = formatter.StylePurple.Render("❯ ")
			titleStyle = formatter.StyleBold
		}

		best := ""
		if pct, ok := doc.BestQuizScore[mod.ID]; ok {
			best = "  " + formatter.Dim(fmt.Sprintf("kuis %d%%", pct))
		}

		fmt.Fprintf(&b, "  %s%s  %s%s\n", marker, titleStyle.Render(mod.Title),
			formatter.CompletionPill(doc.ModuleCompleted(mod.ID)), best)
		fmt.Fprintf(&b, "      %s\n", formatter.Dim(formatter.Truncate(mod.Desc, 70)))
	}

	return b.String()
}
