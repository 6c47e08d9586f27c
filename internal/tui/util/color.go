package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor reports whether color output should be disabled, either by an
// explicit flag or by the NO_COLOR convention.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the small set of colors shared across widgets: Primary
// marks the current line and dialog chrome, Success/Danger/Warning color
// notices by severity, Muted draws gutter numbers and hints, MutedDark
// fills the status bar.
type Palette struct {
	Primary   lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#3D6DFF"),
		Success:   lipgloss.Color("#2AA876"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#5A5A5A"),
	}
}
