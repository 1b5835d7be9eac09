package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/router"
)

// toastTTL is how long a notification stays on screen.
const toastTTL = 4 * time.Second

type toast struct {
	text     string
	deadline time.Time
}

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack and a persistent command bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	cmdBar    commandBar
	quitting  bool

	// Transient output from the command bar, displayed in content area.
	lastOutput string

	// Notifications from the progress tracker, pruned on a ticker.
	toasts []toast
}

func newAppModel(app *App, start router.Route) appModel {
	state := &SharedState{App: app}

	doc := app.Tracker.Document()
	state.Points = doc.Points
	state.Level = doc.Level

	// The tracker reports into the shared state: notifications feed the
	// toast area, saves refresh the HUD.
	app.Tracker.SetNotifier(state)
	app.Tracker.OnSave(func(points, level int) {
		state.Points = points
		state.Level = level
	})

	m := appModel{
		state:  state,
		cmdBar: newCommandBar(state),
	}
	m.viewStack = []View{viewForRoute(state, start)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		// The first size message arrives right after startup; collect any
		// toasts produced before the program began (the streak update).
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, tea.Batch(cmd, m.collectToasts())
		}
		return m, m.collectToasts()

	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		app := model.(appModel)
		return app, tea.Batch(cmd, app.collectToasts())

	// Navigation messages from views or command bar
	case pushViewMsg:
		m.cmdBar.Blur()
		m.lastOutput = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.cmdBar.Blur()
		m.lastOutput = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case gotoRouteMsg:
		m.cmdBar.Blur()
		m.lastOutput = ""
		v := viewForRoute(m.state, msg.route)
		m.viewStack = []View{v}
		return m, v.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views reload
		// data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case cmdOutputMsg:
		m.lastOutput = msg.output
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.lastOutput = ""
		return m, tea.Batch(msg.nextCmd, refreshViews(), m.collectToasts())

	case toastExpireMsg:
		m.pruneToasts()
		if len(m.toasts) > 0 {
			return m, toastTick()
		}
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward other messages to command bar (e.g., cursor blink)
	if m.cmdBar.Focused() {
		cmd := m.cmdBar.UpdateNonKey(msg)
		return m, cmd
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, tea.Batch(cmd, m.collectToasts())
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If command bar is focused, route keys there
	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.lastOutput = ""
		}
		cmd := m.cmdBar.Update(msg)
		return m, cmd
	}

	// Any key dismisses transient command output, then falls through.
	if m.lastOutput != "" {
		m.lastOutput = ""
	}

	// If active view captures input (has its own text input), forward
	// directly so forms receive all characters including 'q' and ':'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	// Global keys when command bar is NOT focused
	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return m, nil

	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		return m, popView()
	}

	// Digits jump straight to a navigation entry.
	if entries := router.NavEntries(); len(msg.String()) == 1 {
		if i := int(msg.String()[0] - '1'); i >= 0 && i < len(entries) {
			return m, gotoRoute(router.Route{Page: entries[i].Page, Query: map[string]string{}})
		}
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if len(m.toasts) > 0 {
		sections = append(sections, m.renderToasts())
	}

	// Content area: active view or transient command output
	if m.lastOutput != "" {
		sections = append(sections, m.lastOutput)
	} else if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.cmdBar.View())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("fincerdas")

	// Active-page navigation bar
	active := router.PageHome
	if v := m.activeView(); v != nil {
		if f, ok := v.(Fragmenter); ok {
			active = router.Parse(f.Fragment()).NavPage()
		}
	}
	var tabs []string
	for i, entry := range router.NavEntries() {
		label := fmt.Sprintf("%d %s", i+1, entry.Label)
		if entry.Page == active {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}

	// Right-aligned HUD
	doc := m.state.App.Tracker.Document()
	hud := fmt.Sprintf("%s  %s  %s",
		formatter.StyleGreen.Render(fmt.Sprintf("%d poin", m.state.Points)),
		formatter.StyleBlue.Render(fmt.Sprintf("Lv %d", m.state.Level)),
		formatter.StreakLabel(doc.Streak.Count))

	header := title + "  " + strings.Join(tabs, " ") + "  " + hud
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderToasts() string {
	var lines []string
	for _, t := range m.toasts {
		lines = append(lines, "  "+formatter.StyleYellow.Render("• "+t.text))
	}
	return strings.Join(lines, "\n")
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.cmdBar.Focused() {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim(": command"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// collectToasts drains notifications queued during the last Update pass and
// starts the expiry ticker when needed.
func (m *appModel) collectToasts() tea.Cmd {
	queued := m.state.drainToasts()
	if len(queued) == 0 {
		return nil
	}
	wasEmpty := len(m.toasts) == 0
	deadline := time.Now().Add(toastTTL)
	for _, text := range queued {
		m.toasts = append(m.toasts, toast{text: text, deadline: deadline})
	}
	if wasEmpty {
		return toastTick()
	}
	return nil
}

func (m *appModel) pruneToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.deadline.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return toastExpireMsg{} })
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/:/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewForm
}
