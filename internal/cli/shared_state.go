package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// HUD summary, refreshed after every persisted save.
	Points int
	Level  int

	// Terminal dimensions
	Width  int
	Height int

	// Notifications queued by the tracker during an Update pass; the
	// appModel drains them into its display list afterwards.
	pendingToasts []string
}

// Notify queues a transient notification. Satisfies progression.Notifier.
func (s *SharedState) Notify(message string) {
	s.pendingToasts = append(s.pendingToasts, message)
}

// drainToasts returns and clears the queued notifications.
func (s *SharedState) drainToasts() []string {
	out := s.pendingToasts
	s.pendingToasts = nil
	return out
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
