package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/content"
)

// securityView combines the safety-habit checklist with the entry point to
// the fraud simulator.
type securityView struct {
	state  *SharedState
	items  []content.ChecklistItem
	cursor int
}

func newSecurityView(state *SharedState) *securityView {
	return &securityView{state: state, items: content.ChecklistItems()}
}

func (v *securityView) ID() ViewID       { return ViewSecurity }
func (v *securityView) Title() string    { return "Keamanan" }
func (v *securityView) Fragment() string { return "#/keamanan" }

func (v *securityView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("spasi", "centang")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "simpan checklist")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "kosongkan")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mulai simulasi")),
	}
}

func (v *securityView) Init() tea.Cmd { return nil }

func (v *securityView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	checklist := v.state.App.Tracker.Document().SecurityChecklist

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case " ":
		item := v.items[v.cursor]
		err := v.state.App.Tracker.SetChecklistItem(context.Background(), item.Key, !checklist[item.Key])
		if err != nil {
			return v, commandError(err.Error())
		}
	case "s":
		if err := v.state.App.Tracker.SaveChecklist(context.Background()); err != nil {
			return v, commandError(err.Error())
		}
	case "r":
		if err := v.state.App.Tracker.ResetChecklist(context.Background()); err != nil {
			return v, commandError(err.Error())
		}
	case "m":
		return v, pushView(newFraudSimView(v.state))
	}
	return v, nil
}

func (v *securityView) View() string {
	doc := v.state.App.Tracker.Document()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Checklist keamanan") + "\n")
	b.WriteString("  " + formatter.Dim("Kebiasaan kecil yang menutup celah penipuan paling umum.") + "\n\n")

	for i, item := range v.items {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StylePurple.Render("❯ ")
		}
		fmt.Fprintf(&b, "  %s%s %s\n", marker, formatter.CheckMark(doc.SecurityChecklist[item.Key]), item.Label)
	}

	b.WriteString("\n  " + formatter.Header("Simulasi penipuan") + "\n")
	if doc.FraudSimBest > 0 {
		fmt.Fprintf(&b, "  Skor terbaik: %s\n", formatter.Bold(fmt.Sprintf("%d%%", doc.FraudSimBest)))
	}
	b.WriteString("  " + formatter.Dim("Uji refleks kamu menghadapi modus penipuan. Tekan m untuk mulai.") + "\n")

	return b.String()
}
