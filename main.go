// Copyright
// SPDX-License-Identifier: MIT
// nib: minimal terminal text editor with undo history, search, and unsaved-change review
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"nib/internal/config"
	"nib/internal/tui"
)

const Version = "0.3.0"

func main() {
	fs := flag.NewFlagSet("nib", flag.ExitOnError)
	fs.Usage = usage
	configPath := fs.String("config", "", "Settings file (default: per-user config dir)")
	initConfig := fs.Bool("init-config", false, "Write the default settings file and exit")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	noColor := fs.Bool("no-color", false, "Disable colors regardless of settings")
	showVersion := fs.Bool("version", false, "Print version and exit")
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println("nib", Version)
		return
	}

	settingsPath := *configPath
	if settingsPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Println("Could not resolve settings path:", err)
			return
		}
		settingsPath = p
	}

	if *initConfig {
		if err := config.Save(settingsPath, config.Default()); err != nil {
			fmt.Println("Could not write settings:", err)
			return
		}
		fmt.Println("Wrote", settingsPath)
		return
	}

	cfg, err := config.Load(settingsPath)
	if err != nil {
		// Load already fell back to defaults; mention it and keep going.
		fmt.Println("Could not read settings:", err)
	}
	if *noColor {
		cfg.NoColor = true
	}

	logger := log.New(io.Discard, "", 0)
	lf, err := openLogFile(*logPath)
	if err != nil {
		fmt.Println("Could not open log file:", err)
	}
	defer func() {
		if lf != nil {
			_ = lf.Close()
		}
	}()
	if lf != nil {
		logger = log.New(lf, "", log.LstdFlags)
	}

	if err := tui.Run(cfg, fs.Arg(0), logger); err != nil {
		fmt.Println("Editor error:", err)
	}
}

func usage() {
	fmt.Print(`nib ` + Version + `
Small terminal editor: one file at a time, undo history, search, and a review of unsaved changes.

USAGE
  nib [options] [FILE]

  FILE is opened if it exists; otherwise the editor starts with an empty
  untitled buffer (a missing FILE is not created until you save).

OPTIONS
  -config PATH    Settings file (default: <user config dir>/nib/config.json)
  -init-config    Write the default settings file and exit
  -log-file PATH  Append logs to file (created if missing)
  -no-color       Disable colors regardless of settings
  -version        Print version

KEYS
  ctrl+s  save              ctrl+f  search
  ctrl+q  quit              ctrl+o  open file
  ctrl+z  undo              ctrl+l  copy line
  ctrl+y  redo              ctrl+g  pending changes
  f1      help

NOTES
  • Ctrl+Q warns once when the buffer has unsaved changes; pressing it again quits.
  • Ctrl+C always quits immediately, skipping the warning.

`)
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== nib %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
	return f, nil
}
