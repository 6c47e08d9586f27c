package editbox

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newFocused(t *testing.T) *Box {
	t.Helper()
	b := New(0)
	b.SetSize(80, 10)
	b.Focus()
	return b
}

func typeRunes(b *Box, s string) Event {
	_, ev := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return ev
}

func press(b *Box, k tea.KeyType) Event {
	_, ev := b.Update(tea.KeyMsg{Type: k})
	return ev
}

func TestTypingReportsTextChange(t *testing.T) {
	b := newFocused(t)
	ev := typeRunes(b, "abc")
	if !ev.TextChanged {
		t.Fatal("expected TextChanged after typing")
	}
	if got := b.Value(); got != "abc" {
		t.Fatalf("Value = %q, want %q", got, "abc")
	}
	if line, col := b.CursorPosition(); line != 0 || col != 3 {
		t.Fatalf("cursor = (%d,%d), want (0,3)", line, col)
	}
}

func TestEnterSplitsLine(t *testing.T) {
	b := newFocused(t)
	typeRunes(b, "ab")
	press(b, tea.KeyEnter)
	typeRunes(b, "c")
	if got := b.Value(); got != "ab\nc" {
		t.Fatalf("Value = %q, want %q", got, "ab\nc")
	}
	if line, col := b.CursorPosition(); line != 1 || col != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", line, col)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	b := newFocused(t)
	typeRunes(b, "a")
	typeRunes(b, "b")

	if !b.Undo() {
		t.Fatal("first undo refused")
	}
	if got := b.Value(); got != "a" {
		t.Fatalf("after undo Value = %q, want %q", got, "a")
	}
	if !b.Undo() {
		t.Fatal("second undo refused")
	}
	if got := b.Value(); got != "" {
		t.Fatalf("after second undo Value = %q, want empty", got)
	}
	if b.Undo() {
		t.Fatal("undo on empty history should refuse")
	}

	if !b.Redo() {
		t.Fatal("first redo refused")
	}
	if got := b.Value(); got != "a" {
		t.Fatalf("after redo Value = %q, want %q", got, "a")
	}
	if line, col := b.CursorPosition(); line != 0 || col != 1 {
		t.Fatalf("redo cursor = (%d,%d), want (0,1)", line, col)
	}
	if !b.Redo() {
		t.Fatal("second redo refused")
	}
	if got := b.Value(); got != "ab" {
		t.Fatalf("after second redo Value = %q, want %q", got, "ab")
	}
	if b.Redo() {
		t.Fatal("redo past newest state should refuse")
	}
}

func TestEditAfterUndoClearsRedo(t *testing.T) {
	b := newFocused(t)
	typeRunes(b, "a")
	typeRunes(b, "b")
	b.Undo()
	typeRunes(b, "c")
	if b.CanRedo() {
		t.Fatal("new edit should invalidate redo")
	}
	if got := b.Value(); got != "ac" {
		t.Fatalf("Value = %q, want %q", got, "ac")
	}
}

func TestSetValueResetsHistory(t *testing.T) {
	b := newFocused(t)
	typeRunes(b, "scratch")
	b.SetValue("fresh\ntext")
	if b.CanUndo() || b.CanRedo() {
		t.Fatal("SetValue should clear history")
	}
	if got := b.Value(); got != "fresh\ntext" {
		t.Fatalf("Value = %q, want %q", got, "fresh\ntext")
	}
	if line, col := b.CursorPosition(); line != 0 || col != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", line, col)
	}
}

func TestSetCursorPositionClamps(t *testing.T) {
	b := newFocused(t)
	b.SetValue("one\ntwo\nthree")

	b.SetCursorPosition(99, 99)
	if line, col := b.CursorPosition(); line != 2 || col != 5 {
		t.Fatalf("cursor = (%d,%d), want (2,5)", line, col)
	}
	b.SetCursorPosition(-1, -1)
	if line, col := b.CursorPosition(); line != 0 || col != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", line, col)
	}
	b.SetCursorPosition(1, 2)
	if line, col := b.CursorPosition(); line != 1 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (1,2)", line, col)
	}
}

func TestCursorPositionCountsRunes(t *testing.T) {
	b := newFocused(t)
	b.SetValue("héllo wörld")
	b.SetCursorPosition(0, 6)
	if line, col := b.CursorPosition(); line != 0 || col != 6 {
		t.Fatalf("cursor = (%d,%d), want (0,6)", line, col)
	}
	if got := b.LineText(); got != "héllo wörld" {
		t.Fatalf("LineText = %q", got)
	}
}

func TestLineTextFollowsCursor(t *testing.T) {
	b := newFocused(t)
	b.SetValue("alpha\nbeta")
	b.SetCursorPosition(1, 0)
	if got := b.LineText(); got != "beta" {
		t.Fatalf("LineText = %q, want %q", got, "beta")
	}
}

func TestBlurredBoxIgnoresKeys(t *testing.T) {
	b := newFocused(t)
	typeRunes(b, "a")
	b.Blur()
	ev := typeRunes(b, "b")
	if ev.TextChanged {
		t.Fatal("blurred box should not accept input")
	}
	if got := b.Value(); got != "a" {
		t.Fatalf("Value = %q, want %q", got, "a")
	}
}

func TestHistoryLimitCapsUndoDepth(t *testing.T) {
	b := New(2)
	b.SetSize(80, 10)
	b.Focus()
	typeRunes(b, "a")
	typeRunes(b, "b")
	typeRunes(b, "c")

	if !b.Undo() || !b.Undo() {
		t.Fatal("two undos should fit the limit")
	}
	if b.Undo() {
		t.Fatal("third undo should fall off the capped stack")
	}
	if got := b.Value(); got != "a" {
		t.Fatalf("Value = %q, want %q", got, "a")
	}
}
