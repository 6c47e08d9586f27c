// Package overlay renders full-pane panels (help, pending changes) that
// temporarily replace the editing area.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"nib/internal/tui/util"
)

// View renders title and body inside a rounded border sized to fill exactly
// width x height. Body lines past the available space are dropped; long
// lines are clipped, never wrapped.
func View(title, body string, width, height int, pal util.Palette, noColor bool) string {
	if width < 6 || height < 4 {
		return ""
	}
	innerWidth := width - 4  // border plus one cell of padding per side
	innerHeight := height - 2

	titleStyle := lipgloss.NewStyle().Bold(true)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(innerHeight)
	if !noColor {
		box = box.BorderForeground(pal.Primary)
		titleStyle = titleStyle.Foreground(pal.Primary)
	}

	lines := make([]string, 0, innerHeight)
	lines = append(lines, titleStyle.Render(util.Truncate(title, innerWidth)))
	for _, l := range strings.Split(body, "\n") {
		if len(lines) >= innerHeight {
			break
		}
		// Body lines may carry color escapes; ansi.Truncate clips by
		// display width without breaking them.
		lines = append(lines, ansi.Truncate(l, innerWidth, "…"))
	}
	return box.Render(strings.Join(lines, "\n"))
}
