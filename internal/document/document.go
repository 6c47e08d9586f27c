// Package document owns the editor's text: current content, the saved
// baseline it is compared against, the backing path, and the language label.
// Mutations publish change events; the view layer subscribes and recomputes.
package document

import (
	"fmt"
	"os"
	"strings"
)

// DefaultName is adopted as the save target when the document is untitled.
const DefaultName = "untitled.txt"

// ChangeKind tags the mutation that produced a Change event.
type ChangeKind int

const (
	Loaded ChangeKind = iota
	Edited
	Saved
	Rebaselined
)

// Change describes one mutation. LineCount is derived from the new content.
// CursorLine is meaningful on Edited events only: it is whatever line the
// reporting surface had the cursor on, since the document itself never
// tracks keystrokes.
type Change struct {
	Kind       ChangeKind
	LineCount  int
	CursorLine int
}

// Detector resolves a display name for the language of a file path.
type Detector func(path string) string

// Document is created empty, replaced wholesale by Load, and destroyed at
// process exit. Modified state is always derived from content vs baseline,
// never stored.
type Document struct {
	content  string
	baseline string
	path     string
	lang     string
	detect   Detector
	subs     []func(Change)
}

// New returns an empty untitled document. A nil detector labels everything
// with the detector fallback used for empty paths.
func New(detect Detector) *Document {
	if detect == nil {
		detect = func(string) string { return "Text" }
	}
	return &Document{lang: detect(""), detect: detect}
}

// Subscribe registers fn to run synchronously after every change event.
func (d *Document) Subscribe(fn func(Change)) {
	d.subs = append(d.subs, fn)
}

func (d *Document) Content() string  { return d.content }
func (d *Document) Baseline() string { return d.baseline }

// Path is the backing file path; empty means untitled.
func (d *Document) Path() string { return d.path }

// Language is the display label resolved by the detector on load and save.
func (d *Document) Language() string { return d.lang }

// Modified reports whether content has diverged from the baseline.
func (d *Document) Modified() bool { return d.content != d.baseline }

// LineCount counts newline-delimited segments; an empty document has one,
// and a trailing newline still contributes a final empty segment.
func (d *Document) LineCount() int { return strings.Count(d.content, "\n") + 1 }

// Load replaces the document with the contents of path. A read failure is
// deliberately not fatal and not even an error to the caller: the failure
// text becomes the document content so the user sees it in place, the
// requested path is kept, and the baseline is left alone so the placeholder
// text reads as unsaved work.
func (d *Document) Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		d.content = fmt.Sprintf("# Error loading file: %v\n# Starting with empty file", err)
		d.path = path
		d.lang = d.detect(path)
		d.emit(Loaded, 0)
		return
	}
	d.content = string(data)
	d.baseline = d.content
	d.path = path
	d.lang = d.detect(path)
	d.emit(Loaded, 0)
}

// Save writes the content to the backing path, first adopting DefaultName
// when the document is untitled. The baseline synchronizes only on success;
// on failure nothing changes and the error is returned for the caller to
// surface.
func (d *Document) Save() error {
	path := d.path
	if path == "" {
		path = DefaultName
	}
	if err := os.WriteFile(path, []byte(d.content), 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if d.path == "" {
		d.lang = d.detect(path)
	}
	d.path = path
	d.baseline = d.content
	d.emit(Saved, 0)
	return nil
}

// SetContent replaces the content. cursorLine rides along on the event so
// subscribers that window by the current line need not ask anyone else.
func (d *Document) SetContent(text string, cursorLine int) {
	d.content = text
	d.emit(Edited, cursorLine)
}

// Rebaseline declares the current content the new baseline without writing
// anything. The quit protocol uses it so a second quit sees a clean
// document.
func (d *Document) Rebaseline() {
	d.baseline = d.content
	d.emit(Rebaselined, 0)
}

func (d *Document) emit(kind ChangeKind, cursorLine int) {
	ch := Change{Kind: kind, LineCount: d.LineCount(), CursorLine: cursorLine}
	for _, fn := range d.subs {
		fn(ch)
	}
}
