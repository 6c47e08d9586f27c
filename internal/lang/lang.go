// Package lang resolves the display name shown in the status bar for a
// file's language.
package lang

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Fallback is the label used when nothing matches.
const Fallback = "Text"

// extNames covers common extensions for paths the lexer registry has no
// filename pattern for.
var extNames = map[string]string{
	".txt":  "Text",
	".md":   "Markdown",
	".py":   "Python",
	".go":   "Go",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".json": "JSON",
	".yaml": "YAML",
	".yml":  "YAML",
	".toml": "TOML",
	".sh":   "Bash",
	".c":    "C",
	".h":    "C",
	".rs":   "Rust",
	".html": "HTML",
	".css":  "CSS",
}

// Detect maps a path to a language display name: lexer registry match
// first, then the static extension table, then Fallback. The registry's
// plaintext lexer is not a real detection, so it falls through to the table
// and .txt files read as Fallback either way.
func Detect(path string) string {
	if path == "" {
		return Fallback
	}
	if lx := lexers.Match(filepath.Base(path)); lx != nil {
		if name := lx.Config().Name; name != "" && name != "plaintext" {
			return name
		}
	}
	if name, ok := extNames[strings.ToLower(filepath.Ext(path))]; ok {
		return name
	}
	return Fallback
}
