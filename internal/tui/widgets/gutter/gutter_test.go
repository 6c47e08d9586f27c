package gutter

import (
	"strings"
	"testing"

	"nib/internal/tui/util"
	"nib/internal/viewsync"
)

func makeRows(n, current int) []viewsync.GutterRow {
	rows := make([]viewsync.GutterRow, n)
	for i := range rows {
		rows[i] = viewsync.GutterRow{Number: i + 1, Current: i == current}
	}
	return rows
}

func TestViewMarksCurrentRow(t *testing.T) {
	got := View(makeRows(3, 1), 0, 3, util.DefaultPalette(), true)
	want := "   1 \n>  2 \n   3 "
	if got != want {
		t.Fatalf("View =\n%q\nwant\n%q", got, want)
	}
}

func TestViewWindowsAndPadsPastEnd(t *testing.T) {
	got := View(makeRows(5, 0), 3, 4, util.DefaultPalette(), true)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4", len(lines))
	}
	if lines[0] != "   4 " || lines[1] != "   5 " {
		t.Fatalf("window starts with %q, %q", lines[0], lines[1])
	}
	for _, blank := range lines[2:] {
		if strings.TrimSpace(blank) != "" {
			t.Fatalf("expected blank fill line, got %q", blank)
		}
	}
}

func TestDigitsHasFloorOfThree(t *testing.T) {
	cases := []struct {
		lines int
		want  int
	}{
		{1, 3},
		{999, 3},
		{1000, 4},
		{0, 3},
	}
	for _, tc := range cases {
		if got := Digits(tc.lines); got != tc.want {
			t.Fatalf("Digits(%d) = %d, want %d", tc.lines, got, tc.want)
		}
	}
	if got := Width(1000); got != 6 {
		t.Fatalf("Width(1000) = %d, want 6", got)
	}
}
