package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/finance"
)

// simsView hosts the financial calculators. Each calculator opens a small
// form; the result replaces the previous one below the menu.
type simsView struct {
	state  *SharedState
	cursor int
	result string
}

var simEntries = []struct {
	name string
	desc string
}{
	{"Budget 50/30/20", "bagi penghasilan bulanan ke kebutuhan, keinginan, tabungan"},
	{"Cicilan pinjaman", "hitung angsuran bulanan dengan bunga anuitas"},
	{"Dana darurat", "hitung cadangan dari pengeluaran bulanan"},
}

func newSimsView(state *SharedState) *simsView {
	return &simsView{state: state}
}

func (v *simsView) ID() ViewID       { return ViewSims }
func (v *simsView) Title() string    { return "Simulasi" }
func (v *simsView) Fragment() string { return "#/simulasi" }

func (v *simsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "pilih")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "hitung")),
	}
}

func (v *simsView) Init() tea.Cmd { return nil }

func (v *simsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if v.cursor < len(simEntries)-1 {
			v.cursor++
		}
	case "enter":
		switch v.cursor {
		case 0:
			return v, v.openBudgetForm()
		case 1:
			return v, v.openLoanForm()
		case 2:
			return v, v.openEmergencyForm()
		}
	}
	return v, nil
}

func (v *simsView) openBudgetForm() tea.Cmd {
	income := ""
	form := huh.NewForm(huh.NewGroup(
		rupiahInput("Penghasilan bulanan", "5000000", &income),
	))
	return pushView(newFormView(v.state, "Budget 50/30/20", form, func() tea.Cmd {
		split := finance.SplitBudget(parseRupiahOr(income, 0))
		v.result = fmt.Sprintf("Kebutuhan  %s\nKeinginan  %s\nTabungan   %s",
			formatter.Rupiah(split.Needs), formatter.Rupiah(split.Wants), formatter.Rupiah(split.Savings))
		return v.award("Kalkulator budget")
	}))
}

func (v *simsView) openLoanForm() tea.Cmd {
	principal, rate, months := "", "12", "12"
	form := huh.NewForm(huh.NewGroup(
		rupiahInput("Jumlah pinjaman", "12000000", &principal),
		huh.NewInput().Title("Bunga per tahun (%)").Placeholder("12").Value(&rate),
		intInput("Tenor (bulan)", "12", &months),
	))
	return pushView(newFormView(v.state, "Cicilan pinjaman", form, func() tea.Cmd {
		loan := finance.LoanAnnuity(
			parseRupiahOr(principal, 0),
			parseFloatOr(rate, 0),
			parseIntOr(months, 1))
		v.result = fmt.Sprintf("Angsuran per bulan  %s\nTotal bayar         %s\nTotal bunga         %s",
			formatter.Bold(formatter.Rupiah(loan.Payment)),
			formatter.Rupiah(loan.Total),
			formatter.Rupiah(loan.Interest))
		return v.award("Kalkulator pinjaman")
	}))
}

func (v *simsView) openEmergencyForm() tea.Cmd {
	expense, months := "", "6"
	form := huh.NewForm(huh.NewGroup(
		rupiahInput("Pengeluaran bulanan", "2500000", &expense),
		intInput("Cakupan (bulan, 1-12)", "6", &months),
	))
	return pushView(newFormView(v.state, "Dana darurat", form, func() tea.Cmd {
		fund := finance.EmergencyFund(parseRupiahOr(expense, 0), parseIntOr(months, 6))
		v.result = fmt.Sprintf("Dana darurat ideal  %s", formatter.Bold(formatter.Rupiah(fund)))
		return v.award("Kalkulator dana darurat")
	}))
}

func (v *simsView) award(reason string) tea.Cmd {
	if err := v.state.App.Tracker.AddPoints(context.Background(), finance.CalculatorPoints, reason); err != nil {
		return commandError(err.Error())
	}
	return nil
}

func (v *simsView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Simulasi keuangan") + "\n\n")

	for i, entry := range simEntries {
		marker := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			marker = formatter.StylePurple.Render("❯ ")
			nameStyle = formatter.StyleBold
		}
		fmt.Fprintf(&b, "  %s%s\n      %s\n", marker, nameStyle.Render(entry.name), formatter.Dim(entry.desc))
	}

	if v.result != "" {
		b.WriteString("\n" + formatter.RenderBox("Hasil", v.result) + "\n")
	}
	return b.String()
}
