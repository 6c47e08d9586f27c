// Package gutter renders the line-number column beside the editing surface.
// The current row carries a ">" marker; numbers are right-aligned.
package gutter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nib/internal/tui/util"
	"nib/internal/viewsync"
)

// minDigits keeps short documents from jittering the layout while they grow
// through the first few hundred lines.
const minDigits = 3

// Digits returns the number-column width for a document of lineCount lines.
func Digits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	d := len(fmt.Sprintf("%d", lineCount))
	if d < minDigits {
		d = minDigits
	}
	return d
}

// Width returns the full rendered cell width: marker, number and one space
// of separation from the text.
func Width(lineCount int) int {
	return 1 + Digits(lineCount) + 1
}

// View renders the window of height rows starting at top. Rows past the end
// of the document render blank so the column stays rectangular.
func View(rows []viewsync.GutterRow, top, height int, pal util.Palette, noColor bool) string {
	if height <= 0 {
		return ""
	}
	if top < 0 {
		top = 0
	}
	digits := Digits(len(rows))
	width := 1 + digits + 1

	numStyle := lipgloss.NewStyle().Foreground(pal.Muted)
	curStyle := lipgloss.NewStyle().Foreground(pal.Primary).Bold(true)

	out := make([]string, 0, height)
	for i := top; i < top+height; i++ {
		if i >= len(rows) {
			out = append(out, strings.Repeat(" ", width))
			continue
		}
		marker := " "
		if rows[i].Current {
			marker = ">"
		}
		cell := fmt.Sprintf("%s%*d ", marker, digits, rows[i].Number)
		switch {
		case noColor:
			out = append(out, cell)
		case rows[i].Current:
			out = append(out, curStyle.Render(cell))
		default:
			out = append(out, numStyle.Render(cell))
		}
	}
	return strings.Join(out, "\n")
}
