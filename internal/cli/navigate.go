package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fincerdas/internal/router"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// gotoRouteMsg resets the stack to the view for a parsed address. It is how
// the command bar's "go" command and the page shortcuts navigate.
type gotoRouteMsg struct {
	route router.Route
}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg tells every view on the stack to re-read its data after a
// mutation made above it.
type refreshViewMsg struct{}

// toastExpireMsg prunes shown notifications past their deadline.
type toastExpireMsg struct{}

// quitMsg requests program exit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// gotoRoute returns a tea.Cmd that navigates to a parsed address.
func gotoRoute(route router.Route) tea.Cmd {
	return func() tea.Msg { return gotoRouteMsg{route: route} }
}

// refreshViews returns a tea.Cmd that broadcasts a data refresh.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
