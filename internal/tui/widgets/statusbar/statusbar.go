package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"nib/internal/tui/util"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View renders the one-line status bar across the full width, truncating
// the text with an ellipsis rather than wrapping.
func (StatusBar) View(text string, width int, pal util.Palette, noColor bool) string {
	if width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Padding(0, 1).Width(width)
	if !noColor {
		style = style.Background(pal.MutedDark).Foreground(lipgloss.Color("#FFFFFF"))
	}
	return style.Render(util.Truncate(text, width-2))
}
