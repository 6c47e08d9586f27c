// Package dialog renders the one-line text-entry bar used for search terms
// and file paths. It draws only; the session state machine lives with the
// caller.
package dialog

import (
	"github.com/charmbracelet/lipgloss"

	"nib/internal/tui/util"
)

// Height is the rendered height in rows: two border rows around the entry
// line and the key hint.
const Height = 4

// View renders the prompt, the live input view and a key hint inside a
// rounded border spanning the full width.
func View(prompt, input string, width int, pal util.Palette, noColor bool) string {
	if width <= 0 {
		return ""
	}
	promptStyle := lipgloss.NewStyle().Bold(true)
	hintStyle := lipgloss.NewStyle()
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2)
	if !noColor {
		box = box.BorderForeground(pal.Primary)
		hintStyle = hintStyle.Foreground(pal.Muted)
	}
	entry := promptStyle.Render(prompt) + " " + input
	hint := hintStyle.Render("Enter: confirm  Esc: cancel")
	return box.Render(entry + "\n" + hint)
}
