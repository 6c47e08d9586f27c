package util

import "github.com/mattn/go-runewidth"

// Truncate clips s to the given display width, appending an ellipsis when
// anything was cut. Width is measured in terminal cells, not runes, so
// double-width characters count as two.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
