package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if c != Default() {
		t.Fatalf("got %+v, want defaults %+v", c, Default())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"noticeMillis": 3500}`), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.NoticeMillis != 3500 {
		t.Fatalf("NoticeMillis = %d, want 3500", c.NoticeMillis)
	}
	if !c.Gutter || c.HistoryLimit != Default().HistoryLimit {
		t.Fatalf("unset keys lost their defaults: %+v", c)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{gutter`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadSanitizesNonPositiveLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"historyLimit": -5, "noticeMillis": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HistoryLimit != Default().HistoryLimit || c.NoticeMillis != Default().NoticeMillis {
		t.Fatalf("limits not sanitized: %+v", c)
	}
}

func TestSaveCreatesParentsAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.json")
	in := Config{Gutter: false, HistoryLimit: 42, NoticeMillis: 1200, NoColor: true}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != in {
		t.Fatalf("round trip: got %+v, want %+v", out, in)
	}
}
