package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/fraudsim"
)

// feedbackDelay is how long a scenario's tip stays visible before the run
// auto-advances. The state machine itself is clock-free; the delay lives
// here in the view.
const feedbackDelay = 1500 * time.Millisecond

// fraudAdvanceMsg fires when the feedback pause is over.
type fraudAdvanceMsg struct {
	generation int
}

// fraudSimView drives one run of the fraud scenario machine.
type fraudSimView struct {
	state   *SharedState
	machine *fraudsim.Machine
	cursor  int

	// generation invalidates pending advance ticks after a restart.
	generation int
	recorded   bool
	outcome    fraudsim.Outcome
}

func newFraudSimView(state *SharedState) *fraudSimView {
	return &fraudSimView{
		state:   state,
		machine: fraudsim.NewMachine(content.FraudScenarios()),
	}
}

func (v *fraudSimView) ID() ViewID       { return ViewFraudSim }
func (v *fraudSimView) Title() string    { return "Simulasi penipuan" }
func (v *fraudSimView) Fragment() string { return "#/keamanan" }

func (v *fraudSimView) ShortHelp() []key.Binding {
	switch v.machine.Phase() {
	case fraudsim.PhaseFinished:
		return []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "ulangi")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "kembali")),
		}
	case fraudsim.PhaseFeedback:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "lanjut")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "pilih respon")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jawab")),
		}
	}
}

func (v *fraudSimView) Init() tea.Cmd { return nil }

func (v *fraudSimView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fraudAdvanceMsg:
		// Ignore ticks from before a restart or a manual advance.
		if msg.generation != v.generation {
			return v, nil
		}
		return v, v.advance()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *fraudSimView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch v.machine.Phase() {
	case fraudsim.PhaseChoosing:
		scenario := v.machine.Current()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(scenario.Choices)-1 {
				v.cursor++
			}
		case "enter":
			v.machine.Choose(v.cursor)
			gen := v.generation
			return v, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
				return fraudAdvanceMsg{generation: gen}
			})
		}

	case fraudsim.PhaseFeedback:
		if msg.String() == "enter" {
			return v, v.advance()
		}

	case fraudsim.PhaseFinished:
		if msg.String() == "r" {
			v.machine.Restart()
			v.cursor = 0
			v.generation++
			v.recorded = false
		}
	}
	return v, nil
}

// advance moves past the feedback pause and records the outcome when the run
// just finished.
func (v *fraudSimView) advance() tea.Cmd {
	v.generation++
	v.machine.Advance()
	v.cursor = 0

	if v.machine.Phase() != fraudsim.PhaseFinished || v.recorded {
		return nil
	}
	v.recorded = true
	v.outcome = v.machine.Outcome()

	err := v.state.App.Tracker.RecordFraudRun(context.Background(), v.outcome.Percentage, v.outcome.Points)
	if err != nil {
		return commandError(err.Error())
	}
	return refreshViews()
}

func (v *fraudSimView) View() string {
	var b strings.Builder

	switch v.machine.Phase() {
	case fraudsim.PhaseFinished:
		out := v.outcome
		if !v.recorded {
			out = v.machine.Outcome()
		}
		b.WriteString("\n  " + formatter.Header("Hasil simulasi") + "\n")
		fmt.Fprintf(&b, "  %d dari %d pilihan aman  %s\n\n", out.SafeCount, out.Total,
			formatter.RenderProgress(float64(out.Percentage)/100, 16))
		if out.Percentage >= 80 {
			b.WriteString("  " + formatter.StyleGreen.Render("Refleks kamu bagus. Pertahankan!") + "\n")
		} else {
			b.WriteString("  " + formatter.StyleYellow.Render("Masih ada celah. Coba lagi dengan r.") + "\n")
		}

	default:
		step, total := v.machine.Step()
		scenario := v.machine.Current()
		fmt.Fprintf(&b, "\n  %s\n\n", formatter.Dim(fmt.Sprintf("Situasi %d/%d", step, total)))
		b.WriteString(formatter.RenderBox("", formatter.StyleFg.Render(scenario.Prompt)) + "\n\n")

		if v.machine.Phase() == fraudsim.PhaseFeedback {
			tip, safe := v.machine.Feedback()
			fmt.Fprintf(&b, "  %s\n  %s\n", formatter.SafetyPill(safe), formatter.Dim(tip))
		} else {
			for i, choice := range scenario.Choices {
				if i == v.cursor {
					fmt.Fprintf(&b, "  %s %s\n", formatter.StylePurple.Render("❯"), formatter.StyleFg.Render(choice.Text))
				} else {
					fmt.Fprintf(&b, "    %s\n", formatter.Dim(choice.Text))
				}
			}
		}
	}

	return b.String()
}
