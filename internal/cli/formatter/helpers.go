package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// Rupiah formats a whole-rupiah amount with Indonesian digit grouping,
// like "Rp5.000.000".
func Rupiah(amount int64) string {
	return idPrinter.Sprintf("Rp%d", amount)
}

// RupiahStyled renders a rupiah amount in the foreground style, with
// negative amounts in red.
func RupiahStyled(amount int64) string {
	if amount < 0 {
		return StyleRed.Render(Rupiah(amount))
	}
	return StyleFg.Render(Rupiah(amount))
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// StreakLabel renders the visit streak for the header, dim when cold and
// yellow once it is running.
func StreakLabel(count int) string {
	if count <= 1 {
		return StyleDim.Render("🔥 1 hari")
	}
	return StyleYellow.Render(idPrinter.Sprintf("🔥 %d hari", count))
}

// Truncate shortens s to at most width runes, appending an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
