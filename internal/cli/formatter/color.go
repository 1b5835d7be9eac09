package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// CompletionPill returns a colored done/in-progress indicator for a module.
func CompletionPill(done bool) string {
	if done {
		return StyleGreen.Render("✔ Selesai")
	}
	return StyleBlue.Render("○ Belum")
}

// CheckMark returns a colored checkbox for checklist rows.
func CheckMark(checked bool) string {
	if checked {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// BadgePill returns a badge label, bright when owned and dim when locked.
func BadgePill(label string, owned bool) string {
	if owned {
		return StyleYellow.Render("★ " + label)
	}
	return StyleDim.Render("☆ " + label)
}

// SafetyPill marks a simulator choice outcome.
func SafetyPill(safe bool) string {
	if safe {
		return StyleGreen.Render("● AMAN")
	}
	return StyleRed.Render("● BERISIKO")
}
