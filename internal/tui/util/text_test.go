package util

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "status", 10, "status"},
		{"exact", "status", 6, "status"},
		{"clipped", "a long status line", 7, "a long…"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
		{"zero width", "anything", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.width); got != tc.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if NoColor(false) {
		t.Fatal("expected color with empty NO_COLOR and no flag")
	}
	if !NoColor(true) {
		t.Fatal("explicit flag should disable color")
	}
	t.Setenv("NO_COLOR", "1")
	if !NoColor(false) {
		t.Fatal("NO_COLOR in the environment should disable color")
	}
}
