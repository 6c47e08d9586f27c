package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// changeStyles colors the pending-changes overlay. With color off every
// style is a no-op so the +/- prefixes carry the meaning alone.
type changeStyles struct {
	delLine lipgloss.Style
	addLine lipgloss.Style
	delChar lipgloss.Style
	addChar lipgloss.Style
	context lipgloss.Style
}

func newChangeStyles(noColor bool) changeStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return changeStyles{plain, plain, plain, plain, plain}
	}
	return changeStyles{
		delLine: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}),
		addLine: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}),
		delChar: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true),
		addChar: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true),
		context: lipgloss.NewStyle().Faint(true),
	}
}

// contextRadius is how many unchanged lines stay visible on each side of a
// collapsed context run.
const contextRadius = 2

// renderChanges produces a unified view of everything that differs between
// the saved baseline and the current buffer. The diff runs in line mode;
// replaced line pairs additionally get character-level highlights.
func renderChanges(baseline, content string, st changeStyles) string {
	if baseline == content {
		return "No unsaved changes."
	}
	d := dmp.New()
	a, b, lineIndex := d.DiffLinesToChars(baseline, content)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lineIndex)

	var sb strings.Builder
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			writeContext(&sb, diffLines(df.Text), st)
		case dmp.DiffDelete:
			del := diffLines(df.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				ins := diffLines(diffs[i+1].Text)
				if len(del) == len(ins) {
					for j := range del {
						writeReplacedPair(&sb, del[j], ins[j], st)
					}
					i++
					continue
				}
			}
			for _, l := range del {
				sb.WriteString(st.delLine.Render("- "+l) + "\n")
			}
		case dmp.DiffInsert:
			for _, l := range diffLines(df.Text) {
				sb.WriteString(st.addLine.Render("+ "+l) + "\n")
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// diffLines splits a line-mode diff text into its lines. Each token from the
// line diff carries its trailing newline except possibly the last, so one
// trailing separator is stripped before splitting.
func diffLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// writeContext renders unchanged lines faint, collapsing long runs down to
// their edges with a count of what was skipped.
func writeContext(sb *strings.Builder, lines []string, st changeStyles) {
	if len(lines) <= 2*contextRadius+1 {
		for _, l := range lines {
			sb.WriteString(st.context.Render("  "+l) + "\n")
		}
		return
	}
	for _, l := range lines[:contextRadius] {
		sb.WriteString(st.context.Render("  "+l) + "\n")
	}
	skipped := fmt.Sprintf("  (%d unchanged lines)", len(lines)-2*contextRadius)
	sb.WriteString(st.context.Render(skipped) + "\n")
	for _, l := range lines[len(lines)-contextRadius:] {
		sb.WriteString(st.context.Render("  "+l) + "\n")
	}
}

// writeReplacedPair renders a deleted/added line pair with per-character
// spans marking exactly what changed between them.
func writeReplacedPair(sb *strings.Builder, before, after string, st changeStyles) {
	d := dmp.New()
	diffs := d.DiffCleanupSemantic(d.DiffMain(before, after, false))

	sb.WriteString(st.delLine.Render("- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(st.delChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(st.delLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(st.addLine.Render("+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(st.addChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(st.addLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
}
