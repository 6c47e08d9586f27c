// Package messagebar renders transient notices above the status bar,
// colored by severity.
package messagebar

import (
	"github.com/charmbracelet/lipgloss"

	"nib/internal/tui/state"
	"nib/internal/tui/util"
)

// View renders the notice line, or an empty string when there is nothing
// to show so the caller can keep the row blank.
func View(text string, sev state.Severity, width int, pal util.Palette, noColor bool) string {
	if text == "" || width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Padding(0, 1).Width(width)
	if !noColor {
		style = style.Foreground(severityColor(sev, pal)).Bold(sev != state.Info)
	}
	return style.Render(util.Truncate(text, width-2))
}

func severityColor(sev state.Severity, pal util.Palette) lipgloss.Color {
	switch sev {
	case state.Error:
		return pal.Danger
	case state.Warning:
		return pal.Warning
	default:
		return pal.Success
	}
}
