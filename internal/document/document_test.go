package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fakeDetect(path string) string {
	if strings.HasSuffix(path, ".go") {
		return "Go"
	}
	return "Text"
}

// chdirTemp moves the process into a fresh temp dir for untitled-save tests.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestModifiedTracksContentVsBaseline(t *testing.T) {
	chdirTemp(t)
	d := New(fakeDetect)
	if d.Modified() {
		t.Fatalf("fresh document reports modified")
	}
	d.SetContent("hello", 0)
	if !d.Modified() {
		t.Fatalf("expected modified after SetContent")
	}
	if err := d.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if d.Modified() {
		t.Fatalf("expected clean document after save")
	}
	d.SetContent("hello", 0) // same text again
	if d.Modified() {
		t.Fatalf("identical content must not read as modified")
	}
	d.SetContent("hello!", 0)
	if !d.Modified() {
		t.Fatalf("expected modified after divergence")
	}
}

func TestLineCount(t *testing.T) {
	d := New(nil)
	cases := []struct {
		content string
		want    int
	}{
		{"", 1},
		{"a", 1},
		{"a\n", 2},
		{"a\nb\nbb\n", 4},
	}
	for _, tc := range cases {
		d.SetContent(tc.content, 0)
		if got := d.LineCount(); got != tc.want {
			t.Fatalf("LineCount(%q)=%d, want %d", tc.content, got, tc.want)
		}
	}
}

func TestSaveUntitledAdoptsDefaultName(t *testing.T) {
	dir := chdirTemp(t)
	d := New(fakeDetect)
	if err := d.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, want := d.Path(), DefaultName; got != want {
		t.Fatalf("path=%q, want %q", got, want)
	}
	data, err := os.ReadFile(filepath.Join(dir, DefaultName))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("file content=%q, want empty", data)
	}
	if d.Modified() {
		t.Fatalf("expected clean document after save")
	}
}

func TestSaveFailureLeavesStateUntouched(t *testing.T) {
	dir := t.TempDir()
	d := New(fakeDetect)
	d.SetContent("body", 0)
	// Point the document at a directory so the write fails.
	sub := filepath.Join(dir, "as-dir")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	d.path = sub
	if err := d.Save(); err == nil {
		t.Fatalf("expected save error when target is a directory")
	}
	if got, want := d.Content(), "body"; got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}
	if !d.Modified() {
		t.Fatalf("failed save must not synchronize the baseline")
	}
}

func TestLoadReadsFileAndResolvesLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	d := New(fakeDetect)
	var events []Change
	d.Subscribe(func(c Change) { events = append(events, c) })
	d.Load(path)
	if got, want := d.Content(), "package main\n"; got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}
	if d.Modified() {
		t.Fatalf("freshly loaded document reports modified")
	}
	if got, want := d.Language(), "Go"; got != want {
		t.Fatalf("language=%q, want %q", got, want)
	}
	if len(events) != 1 || events[0].Kind != Loaded || events[0].LineCount != 2 {
		t.Fatalf("events=%+v, want one Loaded with LineCount 2", events)
	}
}

func TestLoadFailureEmbedsErrorText(t *testing.T) {
	d := New(fakeDetect)
	missing := filepath.Join(t.TempDir(), "nope.txt")
	d.Load(missing)
	if !strings.HasPrefix(d.Content(), "# Error loading file:") {
		t.Fatalf("content=%q, want a load-error placeholder", d.Content())
	}
	if !strings.Contains(d.Content(), "# Starting with empty file") {
		t.Fatalf("placeholder missing second line: %q", d.Content())
	}
	if got, want := d.Path(), missing; got != want {
		t.Fatalf("path=%q, want requested path %q", got, want)
	}
	if !d.Modified() {
		t.Fatalf("placeholder content should read as unsaved")
	}
}

func TestRebaselineClearsModified(t *testing.T) {
	d := New(nil)
	d.SetContent("x", 0)
	if !d.Modified() {
		t.Fatalf("expected modified before rebaseline")
	}
	var kinds []ChangeKind
	d.Subscribe(func(c Change) { kinds = append(kinds, c.Kind) })
	d.Rebaseline()
	if d.Modified() {
		t.Fatalf("expected clean document after rebaseline")
	}
	if len(kinds) != 1 || kinds[0] != Rebaselined {
		t.Fatalf("kinds=%v, want [Rebaselined]", kinds)
	}
}

func TestSetContentEventCarriesLineCountAndCursor(t *testing.T) {
	d := New(nil)
	var got Change
	d.Subscribe(func(c Change) { got = c })
	d.SetContent("a\nb\nc", 2)
	want := Change{Kind: Edited, LineCount: 3, CursorLine: 2}
	if got != want {
		t.Fatalf("change=%+v, want %+v", got, want)
	}
}

func TestChangeStats(t *testing.T) {
	cases := []struct {
		name          string
		before, after string
		added, removed int
	}{
		{"no changes", "a\nb\n", "a\nb\n", 0, 0},
		{"pure insert", "a\n", "a\nb\nc\n", 2, 0},
		{"pure delete", "a\nb\nc\n", "a\n", 0, 2},
		{"replace line", "a\nb\n", "a\nc\n", 1, 1},
		{"from empty", "", "x\ny", 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := ChangeStats(tc.before, tc.after)
			if st.Added != tc.added || st.Removed != tc.removed {
				t.Fatalf("stats=%+v, want +%d -%d", st, tc.added, tc.removed)
			}
		})
	}
}
