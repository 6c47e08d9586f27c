// Package search implements the editor's wrap-around find.
package search

import (
	"strings"
	"unicode/utf8"
)

// Position is a zero-based (line, column) match location. Columns count
// runes so results can be handed straight to the editing surface.
type Position struct {
	Line int
	Col  int
}

// FindNext locates the next case-sensitive literal occurrence of term after
// (fromLine, fromCol). On fromLine itself a match must start strictly after
// fromCol, which is what makes repeated find-next advance instead of
// re-finding the match under the cursor; every later line is searched from
// column 0 and the earliest match on the first matching line wins. When the
// forward pass reaches the end of the document without a hit, the scan wraps
// to line 0 and runs back through fromLine, where only columns at or before
// fromCol are accepted. One call therefore examines every position in the
// document exactly once. An empty term never matches. Pure function: no
// cursor or document state is touched.
func FindNext(content, term string, fromLine, fromCol int) (Position, bool) {
	if term == "" {
		return Position{}, false
	}
	lines := strings.Split(content, "\n")
	if fromLine < 0 {
		fromLine = 0
	}
	if fromLine >= len(lines) {
		fromLine = len(lines) - 1
	}

	if col, ok := indexFrom(lines[fromLine], term, fromCol+1); ok {
		return Position{Line: fromLine, Col: col}, true
	}
	for i := fromLine + 1; i < len(lines); i++ {
		if col, ok := indexFrom(lines[i], term, 0); ok {
			return Position{Line: i, Col: col}, true
		}
	}
	for i := 0; i < fromLine; i++ {
		if col, ok := indexFrom(lines[i], term, 0); ok {
			return Position{Line: i, Col: col}, true
		}
	}
	if col, ok := indexFrom(lines[fromLine], term, 0); ok && col <= fromCol {
		return Position{Line: fromLine, Col: col}, true
	}
	return Position{}, false
}

// indexFrom finds term in line at or after rune index start and returns the
// match's rune column.
func indexFrom(line, term string, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	runes := []rune(line)
	if start > len(runes) {
		return 0, false
	}
	tail := string(runes[start:])
	i := strings.Index(tail, term)
	if i < 0 {
		return 0, false
	}
	return start + utf8.RuneCountInString(tail[:i]), true
}
