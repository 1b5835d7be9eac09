package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/planner"
)

// plannerView shows the monthly budget and savings goals.
type plannerView struct {
	state  *SharedState
	cursor int // index into the goal list
}

func newPlannerView(state *SharedState) *plannerView {
	return &plannerView{state: state}
}

func (v *plannerView) ID() ViewID       { return ViewPlanner }
func (v *plannerView) Title() string    { return "Planner" }
func (v *plannerView) Fragment() string { return "#/planner" }

func (v *plannerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit budget")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "target baru")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "isi tabungan")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "hapus target")),
	}
}

func (v *plannerView) Init() tea.Cmd { return nil }

func (v *plannerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if goals := v.state.App.Planner.Goals(); v.cursor >= len(goals) && v.cursor > 0 {
			v.cursor = len(goals) - 1
		}
		return v, nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *plannerView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goals := v.state.App.Planner.Goals()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(goals)-1 {
			v.cursor++
		}
	case "e":
		return v, v.openBudgetForm()
	case "n":
		return v, v.openGoalForm()
	case "u":
		if v.cursor < len(goals) {
			return v, v.openSavedForm(goals[v.cursor].ID, goals[v.cursor].Name)
		}
	case "d":
		if v.cursor < len(goals) {
			if err := v.state.App.Planner.DeleteGoal(context.Background(), goals[v.cursor].ID); err != nil {
				return v, commandError(err.Error())
			}
			return v, refreshViews()
		}
	}
	return v, nil
}

func (v *plannerView) openBudgetForm() tea.Cmd {
	budget := v.state.App.Planner.Budget()
	income := blankIfZero(budget.Income)
	needs := blankIfZero(budget.Needs)
	wants := blankIfZero(budget.Wants)
	savings := blankIfZero(budget.Savings)
	auto := false

	form := huh.NewForm(huh.NewGroup(
		rupiahInput("Penghasilan bulanan", "5000000", &income),
		huh.NewConfirm().Title("Bagi otomatis 50/30/20?").Value(&auto),
		rupiahInput("Kebutuhan", "2500000", &needs),
		rupiahInput("Keinginan", "1500000", &wants),
		rupiahInput("Tabungan", "1000000", &savings),
	))

	return pushView(newFormView(v.state, "Budget bulanan", form, func() tea.Cmd {
		incomeVal := parseRupiahOr(income, 0)
		needsVal := parseRupiahOr(needs, 0)
		wantsVal := parseRupiahOr(wants, 0)
		savingsVal := parseRupiahOr(savings, 0)
		if auto {
			alloc := planner.AutoAllocate(incomeVal)
			needsVal, wantsVal, savingsVal = alloc.Needs, alloc.Wants, alloc.Savings
		}
		err := v.state.App.Planner.SaveBudget(context.Background(), incomeVal, needsVal, wantsVal, savingsVal)
		if err != nil {
			return commandError(err.Error())
		}
		return nil
	}))
}

func (v *plannerView) openGoalForm() tea.Cmd {
	name, target, saved := "", "", ""
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nama target").Placeholder("Dana darurat").Value(&name).Validate(validateNonEmpty),
		rupiahInput("Jumlah target", "12000000", &target).Validate(validatePositiveRupiah),
		rupiahInput("Sudah terkumpul", "0", &saved),
	))
	return pushView(newFormView(v.state, "Target tabungan baru", form, func() tea.Cmd {
		_, err := v.state.App.Planner.AddGoal(context.Background(),
			strings.TrimSpace(name), parseRupiahOr(target, 0), parseRupiahOr(saved, 0))
		if err != nil {
			return commandError(err.Error())
		}
		return nil
	}))
}

func (v *plannerView) openSavedForm(goalID, goalName string) tea.Cmd {
	saved := ""
	form := huh.NewForm(huh.NewGroup(
		rupiahInput("Terkumpul untuk "+goalName, "1000000", &saved),
	))
	return pushView(newFormView(v.state, "Isi tabungan", form, func() tea.Cmd {
		err := v.state.App.Planner.UpdateGoalSaved(context.Background(), goalID, parseRupiahOr(saved, 0))
		if err != nil {
			return commandError(err.Error())
		}
		return nil
	}))
}

func (v *plannerView) View() string {
	budget := v.state.App.Planner.Budget()
	goals := v.state.App.Planner.Goals()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Budget bulanan") + "\n")
	if budget.Income == 0 {
		b.WriteString("  " + formatter.Dim("Belum diatur. Tekan e untuk mengisi.") + "\n")
	} else {
		fmt.Fprintf(&b, "  Penghasilan  %s\n", formatter.RupiahStyled(budget.Income))
		fmt.Fprintf(&b, "  Kebutuhan    %s\n", formatter.RupiahStyled(budget.Needs))
		fmt.Fprintf(&b, "  Keinginan    %s\n", formatter.RupiahStyled(budget.Wants))
		fmt.Fprintf(&b, "  Tabungan     %s\n", formatter.RupiahStyled(budget.Savings))
	}

	b.WriteString("\n  " + formatter.Header("Target tabungan") + "\n")
	if len(goals) == 0 {
		b.WriteString("  " + formatter.Dim("Belum ada target. Tekan n untuk menambah.") + "\n")
	}
	for i, goal := range goals {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StylePurple.Render("❯ ")
		}
		fmt.Fprintf(&b, "  %s%-24s %s\n", marker, formatter.Truncate(goal.Name, 24),
			formatter.RenderProgress(float64(goal.ProgressPct())/100, 16))
		fmt.Fprintf(&b, "      %s\n", formatter.Dim(
			formatter.Rupiah(goal.Saved)+" dari "+formatter.Rupiah(goal.Target)))
	}

	return b.String()
}

func blankIfZero(v int64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%d", v)
}
