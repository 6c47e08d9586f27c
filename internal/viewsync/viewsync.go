// Package viewsync derives the gutter and status-line state that must never
// go stale relative to the document or cursor.
package viewsync

import (
	"fmt"
	"path/filepath"
	"strings"

	"nib/internal/cursor"
	"nib/internal/document"
)

// GutterRow is one line-number cell; Current marks the cursor's row.
type GutterRow struct {
	Number  int
	Current bool
}

// State is everything the chrome widgets render. It is rebuilt from scratch
// on every change; nothing in it survives an event.
type State struct {
	LineCount  int
	GutterRows []GutterRow
	StatusText string
}

// Snapshot is the document-side input to Recompute.
type Snapshot struct {
	Content  string
	Path     string
	Modified bool
	Language string
}

// Recompute derives a State. Pure: equal inputs give equal output.
func Recompute(doc Snapshot, pos cursor.Position) State {
	count := strings.Count(doc.Content, "\n") + 1
	rows := make([]GutterRow, count)
	for i := range rows {
		rows[i] = GutterRow{Number: i + 1, Current: i == pos.Line}
	}
	name := "Untitled"
	if doc.Path != "" {
		name = filepath.Base(doc.Path)
	}
	marker := ""
	if doc.Modified {
		marker = " [●]"
	}
	status := fmt.Sprintf("%s%s | Line %d, Col %d | %s",
		name, marker, pos.Line+1, pos.Col+1, doc.Language)
	return State{LineCount: count, GutterRows: rows, StatusText: status}
}

// Syncer keeps a current State by subscribing to the document and the
// cursor tracker. Recomputation happens synchronously inside each
// notification, before the event that caused it finishes processing.
type Syncer struct {
	doc   *document.Document
	cur   *cursor.Tracker
	state State
}

// New wires a Syncer to its sources and computes the initial State.
func New(doc *document.Document, cur *cursor.Tracker) *Syncer {
	s := &Syncer{doc: doc, cur: cur}
	doc.Subscribe(func(document.Change) { s.refresh() })
	cur.Subscribe(func(cursor.Position) { s.refresh() })
	s.refresh()
	return s
}

func (s *Syncer) refresh() {
	s.state = Recompute(Snapshot{
		Content:  s.doc.Content(),
		Path:     s.doc.Path(),
		Modified: s.doc.Modified(),
		Language: s.doc.Language(),
	}, s.cur.Position())
}

// State returns the most recently recomputed view state.
func (s *Syncer) State() State { return s.state }
