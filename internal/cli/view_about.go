package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/router"
)

// aboutView is a static information page.
type aboutView struct {
	state *SharedState
}

func newAboutView(state *SharedState) *aboutView {
	return &aboutView{state: state}
}

func (v *aboutView) ID() ViewID       { return ViewAbout }
func (v *aboutView) Title() string    { return "Tentang" }
func (v *aboutView) Fragment() string { return "#/tentang" }

func (v *aboutView) ShortHelp() []key.Binding { return nil }

func (v *aboutView) Init() tea.Cmd { return nil }

func (v *aboutView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *aboutView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Tentang FinCerdas ID") + "\n")
	b.WriteString("  " + formatter.StyleFg.Render("Aplikasi edukasi literasi keuangan digital untuk Indonesia.") + "\n\n")
	b.WriteString("  " + formatter.StyleFg.Render("Materi mencakup pinjaman online, investasi, keamanan digital,") + "\n")
	b.WriteString("  " + formatter.StyleFg.Render("dan regulasi OJK. Progresmu tersimpan di perangkat ini saja.") + "\n\n")
	b.WriteString("  " + formatter.Dim("Konten bersifat edukasi, bukan saran keuangan.") + "\n")
	return b.String()
}

// notFoundView renders for addresses that resolve to nothing.
type notFoundView struct {
	state *SharedState
	route router.Route
}

func newNotFoundView(state *SharedState, route router.Route) *notFoundView {
	return &notFoundView{state: state, route: route}
}

func (v *notFoundView) ID() ViewID       { return ViewNotFound }
func (v *notFoundView) Title() string    { return "Tidak ditemukan" }
func (v *notFoundView) Fragment() string { return v.route.Fragment() }

func (v *notFoundView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ke beranda")),
	}
}

func (v *notFoundView) Init() tea.Cmd { return nil }

func (v *notFoundView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return v, gotoRoute(router.Route{Page: router.PageHome, Query: map[string]string{}})
	}
	return v, nil
}

func (v *notFoundView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Halaman tidak ditemukan") + "\n")
	b.WriteString("  " + formatter.Dim("Alamat "+v.route.Fragment()+" tidak mengarah ke halaman mana pun.") + "\n\n")
	b.WriteString("  " + formatter.StyleFg.Render("Tekan enter untuk kembali ke beranda.") + "\n")
	return b.String()
}
