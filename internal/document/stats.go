package document

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Stats summarizes pending changes as whole-line insert and delete counts.
type Stats struct {
	Added   int
	Removed int
}

// ChangeStats diffs two texts line-wise and counts added and removed lines.
// A modified line counts once on each side.
func ChangeStats(before, after string) Stats {
	if before == after {
		return Stats{}
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)
	var st Stats
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			st.Added += lineSpan(df.Text)
		case dmp.DiffDelete:
			st.Removed += lineSpan(df.Text)
		}
	}
	return st
}

// lineSpan counts the lines covered by a line-mode diff fragment, where only
// the document's final line may lack a trailing newline.
func lineSpan(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
