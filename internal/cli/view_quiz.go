package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/quiz"
)

// quizHubView lists modules with their best quiz scores.
type quizHubView struct {
	state   *SharedState
	modules []content.Module
	cursor  int
}

func newQuizHubView(state *SharedState) *quizHubView {
	return &quizHubView{state: state, modules: content.Modules()}
}

func (v *quizHubView) ID() ViewID       { return ViewQuizHub }
func (v *quizHubView) Title() string    { return "Kuis" }
func (v *quizHubView) Fragment() string { return "#/kuis" }

func (v *quizHubView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "pilih")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mulai kuis")),
	}
}

func (v *quizHubView) Init() tea.Cmd { return nil }

func (v *quizHubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return v, pushView(newQuizRunView(v.state, &mod))
	}
	return v, nil
}

func (v *quizHubView) View() string {
	doc := v.state.App.Tracker.Document()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Pusat kuis") + "\n")
	b.WriteString("  " + formatter.Dim("Kerjakan ulang kapan saja; bonus poin saat memecahkan rekor.") + "\n\n")

	for i, mod := range v.modules {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StylePurple.Render("❯ ")
		}
		best := formatter.Dim("belum dicoba")
		if pct, ok := doc.BestQuizScore[mod.ID]; ok {
			best = formatter.RenderProgress(float64(pct)/100, 12)
		}
		fmt.Fprintf(&b, "  %s%-34s %s\n", marker, formatter.Truncate(mod.Title, 34), best)
	}

	return b.String()
}

// ── quiz run ─────────────────────────────────────────────────────────────────

// quizRunView steps through one module's questions and grades at the end.
type quizRunView struct {
	state  *SharedState
	module *content.Module

	idx       int
	cursor    int
	responses map[int]int

	finished bool
	result   quiz.Result
}

func newQuizRunView(state *SharedState, module *content.Module) *quizRunView {
	return &quizRunView{
		state:     state,
		module:    module,
		responses: make(map[int]int),
	}
}

func (v *quizRunView) ID() ViewID       { return ViewQuizRun }
func (v *quizRunView) Title() string    { return "Kuis: " + v.module.Title }
func (v *quizRunView) Fragment() string { return "#/modul/" + string(v.module.ID) + "?tab=kuis" }

func (v *quizRunView) ShortHelp() []key.Binding {
	if v.finished {
		return []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "ulangi")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "kembali")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "pilih jawaban")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jawab")),
	}
}

func (v *quizRunView) Init() tea.Cmd { return nil }

func (v *quizRunView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.finished {
		if keyMsg.String() == "r" {
			return v, replaceView(newQuizRunView(v.state, v.module))
		}
		return v, nil
	}

	question := v.module.Quiz[v.idx]
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(question.Answers)-1 {
			v.cursor++
		}
	case "enter":
		v.responses[v.idx] = v.cursor
		v.cursor = 0
		v.idx++
		if v.idx >= len(v.module.Quiz) {
			return v, v.grade()
		}
	}
	return v, nil
}

// grade scores the finished attempt and records it.
func (v *quizRunView) grade() tea.Cmd {
	doc := v.state.App.Tracker.Document()
	v.result = quiz.Grade(v.module.Quiz, v.responses, doc.BestQuizScore[v.module.ID])
	v.finished = true

	err := v.state.App.Tracker.RecordQuizScore(
		context.Background(), v.module.ID, v.result.Percentage, v.result.Points)
	if err != nil {
		return commandError(err.Error())
	}
	return refreshViews()
}

func (v *quizRunView) View() string {
	if v.finished {
		return v.viewResult()
	}

	question := v.module.Quiz[v.idx]

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", formatter.Dim(fmt.Sprintf("Pertanyaan %d/%d", v.idx+1, len(v.module.Quiz))))
	b.WriteString("  " + formatter.Bold(question.Text) + "\n\n")

	for i, ans := range question.Answers {
		if i == v.cursor {
			fmt.Fprintf(&b, "  %s %s\n", formatter.StylePurple.Render("❯"), formatter.StyleFg.Render(ans.Text))
		} else {
			fmt.Fprintf(&b, "    %s\n", formatter.Dim(ans.Text))
		}
	}
	return b.String()
}

func (v *quizRunView) viewResult() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Hasil kuis") + "\n")
	fmt.Fprintf(&b, "  Skor %s  (%d/%d benar)",
		formatter.Bold(fmt.Sprintf("%d%%", v.result.Percentage)),
		v.result.CorrectCount, len(v.result.Questions))
	if v.result.Improved {
		b.WriteString("  " + formatter.StyleYellow.Render("★ rekor baru"))
	}
	b.WriteString("\n\n")

	for i, qr := range v.result.Questions {
		mark := formatter.StyleRed.Render("✘")
		if qr.Correct {
			mark = formatter.StyleGreen.Render("✔")
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, formatter.Truncate(qr.Question.Text, 70))
		fmt.Fprintf(&b, "    %s\n", formatter.StyleGreen.Render("Jawaban benar: "+correctAnswerText(qr.Question)))
		if !qr.Correct {
			if qr.Selected >= 0 {
				fmt.Fprintf(&b, "    %s\n", formatter.StyleRed.Render("Pilihanmu: "+qr.Question.Answers[qr.Selected].Text))
			} else {
				fmt.Fprintf(&b, "    %s\n", formatter.Dim("Tidak dijawab."))
			}
			fmt.Fprintf(&b, "    %s\n", formatter.Dim(qr.Question.Explain))
		}
		if i < len(v.result.Questions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func correctAnswerText(q content.Question) string {
	for _, a := range q.Answers {
		if a.Correct {
			return a.Text
		}
	}
	return ""
}
