package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/cli/formatter"
	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/router"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	// history
	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{
		input: ti,
		state: state,
	}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len("fincerdas > ") - 1
}

// Update handles key messages when the command bar is focused.
// Returns a tea.Cmd that may include navigation or output messages.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		c.Blur()
		return c.executeCommand(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the command bar.
func (c *commandBar) View() string {
	if !c.focused {
		return c.promptPrefix() + formatter.Dim("press : to type a command")
	}
	return c.promptPrefix() + c.input.View()
}

// promptPrefix returns the styled prompt string.
func (c *commandBar) promptPrefix() string {
	return formatter.StylePurple.Render("fincerdas") + " " + formatter.Dim("❯") + " "
}

// executeCommand interprets a typed command. Page names and addresses
// navigate; a few verbs produce transient output.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	fields := strings.Fields(input)
	verb := strings.ToLower(fields[0])

	switch verb {
	case "quit", "exit", "keluar":
		return func() tea.Msg { return quitMsg{} }

	case "go", "buka":
		if len(fields) < 2 {
			return commandError("pakai: go #/<halaman>")
		}
		return gotoRoute(router.Parse(fields[1]))

	case "modul":
		if len(fields) < 2 {
			return gotoRoute(router.Route{Page: router.PageLearn, Query: map[string]string{}})
		}
		return gotoRoute(router.Route{Page: router.PageModule, ResourceID: fields[1], Query: map[string]string{}})

	case "stats", "poin":
		doc := c.state.App.Tracker.Document()
		return func() tea.Msg { return cmdOutputMsg{output: renderStats(doc)} }
	}

	// A bare page name navigates directly.
	route := router.Parse(verb)
	if route.Page != router.PageNotFound && verb != "" {
		return gotoRoute(route)
	}
	return commandError("perintah tidak dikenal: " + input)
}

func commandError(text string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: "\n  " + formatter.StyleRed.Render(text)} }
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	if text == "" {
		c.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) <= 1 && !trailingSpace {
		c.input.SetSuggestions(filterSuggestions(commandNames(), parts[0]))
		return
	}

	verb := strings.ToLower(parts[0])
	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}

	switch verb {
	case "go", "buka":
		c.input.SetSuggestions(filterSuggestions(fragmentSuggestions(), prefix))
	case "modul":
		c.input.SetSuggestions(filterSuggestions(moduleIDSuggestions(), prefix))
	default:
		c.input.SetSuggestions(nil)
	}
}

func commandNames() []string {
	names := []string{"go", "modul", "stats", "quit"}
	for _, entry := range router.NavEntries() {
		names = append(names, string(entry.Page))
	}
	return names
}

func fragmentSuggestions() []string {
	var out []string
	for _, entry := range router.NavEntries() {
		out = append(out, "#/"+string(entry.Page))
	}
	for _, mod := range content.Modules() {
		out = append(out, "#/modul/"+string(mod.ID))
	}
	return out
}

func moduleIDSuggestions() []string {
	var out []string
	for _, mod := range content.Modules() {
		out = append(out, string(mod.ID))
	}
	return out
}

func filterSuggestions(options []string, prefix string) []string {
	if prefix == "" {
		return options
	}
	var out []string
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), strings.ToLower(prefix)) {
			out = append(out, opt)
		}
	}
	return out
}
