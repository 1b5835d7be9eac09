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

var moduleTabs = []string{"artikel", "video", "infografis", "kuis"}

// moduleView shows one module's learning material behind a tab row.
type moduleView struct {
	state  *SharedState
	module *content.Module
	tab    int
}

func newModuleView(state *SharedState, module *content.Module, tab string) *moduleView {
	v := &moduleView{state: state, module: module}
	for i, name := range moduleTabs {
		if name == tab {
			v.tab = i
		}
	}
	return v
}

func (v *moduleView) ID() ViewID    { return ViewModule }
func (v *moduleView) Title() string { return v.module.Title }

func (v *moduleView) Fragment() string {
	if v.tab == 0 {
		return "#/modul/" + string(v.module.ID)
	}
	return fmt.Sprintf("#/modul/%s?tab=%s", v.module.ID, moduleTabs[v.tab])
}

func (v *moduleView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/←→", "ganti tab")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "tandai selesai")),
	}
	if moduleTabs[v.tab] == "kuis" {
		bindings = append(bindings, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mulai kuis")))
	}
	return bindings
}

func (v *moduleView) Init() tea.Cmd { return nil }

func (v *moduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "tab", "right", "l":
		v.tab = (v.tab + 1) % len(moduleTabs)
	case "shift+tab", "left", "h":
		v.tab = (v.tab + len(moduleTabs) - 1) % len(moduleTabs)
	case "s":
		_, err := v.state.App.Tracker.CompleteModule(context.Background(), v.module.ID)
		if err != nil {
			return v, commandError(err.Error())
		}
		return v, refreshViews()
	case "enter":
		if moduleTabs[v.tab] == "kuis" {
			return v, pushView(newQuizRunView(v.state, v.module))
		}
	}
	return v, nil
}

func (v *moduleView) View() string {
	doc := v.state.App.Tracker.Document()

	var b strings.Builder
	b.WriteString("\n  ")
	for i, name := range moduleTabs {
		label := " " + name + " "
		if i == v.tab {
			b.WriteString(formatter.StyleHeader.Render(label))
		} else {
			b.WriteString(formatter.Dim(label))
		}
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "  %s\n\n", formatter.CompletionPill(doc.ModuleCompleted(v.module.ID)))

	switch moduleTabs[v.tab] {
	case "artikel":
		for _, para := range v.module.Article {
			b.WriteString("  " + formatter.StyleFg.Render(para) + "\n\n")
		}
	case "video":
		for _, vid := range v.module.Videos {
			fmt.Fprintf(&b, "  %s %s\n    %s\n",
				formatter.StyleRed.Render("▶"), vid.Title,
				formatter.Dim("youtube.com/watch?v="+vid.YouTubeID))
		}
	case "infografis":
		lines := make([]string, 0, len(v.module.Infographic))
		for _, line := range v.module.Infographic {
			lines = append(lines, formatter.StyleFg.Render(line))
		}
		b.WriteString(formatter.RenderBox(v.module.Title, strings.Join(lines, "\n")) + "\n")
	case "kuis":
		fmt.Fprintf(&b, "  %d pertanyaan pilihan ganda.\n", len(v.module.Quiz))
		if pct, ok := doc.BestQuizScore[v.module.ID]; ok {
			fmt.Fprintf(&b, "  Skor terbaik: %s\n", formatter.Bold(fmt.Sprintf("%d%%", pct)))
		}
		b.WriteString("\n  " + formatter.Dim("Tekan enter untuk mulai.") + "\n")
	}

	return b.String()
}
