// Package config loads and stores editor settings as a small JSON file,
// kept by default under the user config directory (nib/config.json).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config holds the user-tunable editor settings. Load layers the file over
// Default, so files carrying only some keys work.
type Config struct {
	Gutter       bool `json:"gutter"`
	HistoryLimit int  `json:"historyLimit"`
	NoticeMillis int  `json:"noticeMillis"`
	NoColor      bool `json:"noColor"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Gutter:       true,
		HistoryLimit: 100,
		NoticeMillis: 2000,
		NoColor:      false,
	}
}

// DefaultPath returns the per-user settings location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "nib", "config.json"), nil
}

// Load reads settings from path, layered over the defaults. A missing file
// is not an error; the defaults come back untouched.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config JSON: %w", err)
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = Default().HistoryLimit
	}
	if c.NoticeMillis <= 0 {
		c.NoticeMillis = Default().NoticeMillis
	}
	return c, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
