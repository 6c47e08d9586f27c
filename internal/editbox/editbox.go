// Package editbox wraps the bubbles textarea as the editor's editing
// surface and adds the snapshot undo/redo history the textarea itself
// lacks. All cursor coordinates crossing this boundary are zero-based
// logical lines and rune columns.
package editbox

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultHistoryLimit bounds the undo stack when the settings do not.
const DefaultHistoryLimit = 100

// Event reports what a routed message did to the surface.
type Event struct {
	TextChanged bool
	CursorMoved bool
}

// Box is the editing surface. It owns the textarea widget and mirrors its
// last observed text and cursor so each Update can report what changed.
type Box struct {
	ta       textarea.Model
	hist     *history
	lastText string
	lastLine int
	lastCol  int
}

// New builds a surface with editor-appropriate textarea settings: no char,
// line or width limits, no built-in line numbers (the gutter widget owns
// those) and no prompt column.
func New(historyLimit int) *Box {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	return &Box{ta: ta, hist: newHistory(historyLimit)}
}

// Update routes msg to the textarea, records history on text changes, and
// reports what changed so the controller can sync the document model.
func (b *Box) Update(msg tea.Msg) (tea.Cmd, Event) {
	prev := snapshot{text: b.lastText, line: b.lastLine, col: b.lastCol}
	var cmd tea.Cmd
	b.ta, cmd = b.ta.Update(msg)

	text := b.ta.Value()
	line, col := b.CursorPosition()
	var ev Event
	if text != prev.text {
		b.hist.record(prev)
		ev.TextChanged = true
	}
	if line != prev.line || col != prev.col {
		ev.CursorMoved = true
	}
	b.lastText, b.lastLine, b.lastCol = text, line, col
	return cmd, ev
}

// Value returns the buffer text.
func (b *Box) Value() string { return b.ta.Value() }

// SetValue replaces the buffer wholesale, clears the history and homes the
// cursor; used on load, which starts a fresh edit stream.
func (b *Box) SetValue(text string) {
	b.ta.SetValue(text)
	b.hist = newHistory(b.hist.limit)
	b.moveCursor(0, 0)
	b.resync()
}

// CursorPosition returns the zero-based logical line and rune column.
func (b *Box) CursorPosition() (line, col int) {
	li := b.ta.LineInfo()
	return b.ta.Line(), li.StartColumn + li.ColumnOffset
}

// SetCursorPosition moves the cursor, clamping to the buffer. The textarea
// only exposes relative row motion, so the row is walked.
func (b *Box) SetCursorPosition(line, col int) {
	b.moveCursor(line, col)
	b.resync()
}

// LineText returns the text of the cursor's logical line.
func (b *Box) LineText() string {
	lines := strings.Split(b.ta.Value(), "\n")
	row := b.ta.Line()
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

// Undo restores the most recent history snapshot; it reports false when
// there is nothing to undo. The controller is expected to resync the
// document afterwards.
func (b *Box) Undo() bool {
	cur := snapshot{text: b.lastText, line: b.lastLine, col: b.lastCol}
	prev, ok := b.hist.popUndo(cur)
	if !ok {
		return false
	}
	b.restore(prev)
	return true
}

// Redo reverses the most recent Undo; it reports false when the redo stack
// is empty.
func (b *Box) Redo() bool {
	cur := snapshot{text: b.lastText, line: b.lastLine, col: b.lastCol}
	next, ok := b.hist.popRedo(cur)
	if !ok {
		return false
	}
	b.restore(next)
	return true
}

func (b *Box) CanUndo() bool { return b.hist.canUndo() }
func (b *Box) CanRedo() bool { return b.hist.canRedo() }

func (b *Box) Focus() tea.Cmd { return b.ta.Focus() }
func (b *Box) Blur()          { b.ta.Blur() }
func (b *Box) Focused() bool  { return b.ta.Focused() }

func (b *Box) SetSize(width, height int) {
	b.ta.SetWidth(width)
	b.ta.SetHeight(height)
}

func (b *Box) View() string { return b.ta.View() }

// restore swaps in a snapshot without touching history bookkeeping.
func (b *Box) restore(s snapshot) {
	b.ta.SetValue(s.text)
	b.moveCursor(s.line, s.col)
	b.resync()
}

// moveCursor walks the textarea's cursor to the given logical line, then
// sets the column. The walk is over display rows, so wrapped lines may take
// several steps per logical line; Line() still advances monotonically.
func (b *Box) moveCursor(line, col int) {
	if line < 0 {
		line = 0
	}
	if last := b.ta.LineCount() - 1; line > last {
		line = last
	}
	for b.ta.Line() > line {
		b.ta.CursorUp()
	}
	for b.ta.Line() < line {
		b.ta.CursorDown()
	}
	if col < 0 {
		col = 0
	}
	b.ta.SetCursor(col)
	// The textarea repositions its viewport inside Update, not on direct
	// cursor mutation; a nil message forces that pass so the next render
	// already shows the new cursor.
	b.ta, _ = b.ta.Update(nil)
}

// resync refreshes the mirrored text and cursor after programmatic changes
// so the next Update does not misreport them as user edits.
func (b *Box) resync() {
	b.lastText = b.ta.Value()
	b.lastLine, b.lastCol = b.CursorPosition()
}
