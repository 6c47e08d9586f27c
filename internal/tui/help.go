package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHelp lays out the key reference shown by the help overlay, grouped
// the way users think about the commands.
func renderHelp(k KeyMap) string {
	sections := []struct {
		title string
		binds []key.Binding
	}{
		{"File", []key.Binding{k.Save, k.Open, k.Quit, k.ForceQuit}},
		{"Edit", []key.Binding{k.Undo, k.Redo, k.CopyLine}},
		{"Find", []key.Binding{k.Search, k.Changes}},
		{"Dialogs", []key.Binding{k.Submit, k.Cancel}},
	}
	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", sec.title)
		for _, bind := range sec.binds {
			h := bind.Help()
			fmt.Fprintf(&b, "  %-8s %s\n", h.Key, h.Desc)
		}
	}
	fmt.Fprintf(&b, "\n%s or %s closes this panel.", k.Help.Help().Key, k.Cancel.Help().Key)
	return b.String()
}
