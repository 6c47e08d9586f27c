// Package tui is the interactive editor: one bubbletea program wiring the
// document model, cursor tracking, view synchronization, search and the
// modal dialogs into a single-threaded event loop. Every input event is
// fully processed, including the view recompute, before the next one is
// read.
package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nib/internal/config"
	"nib/internal/cursor"
	"nib/internal/document"
	"nib/internal/editbox"
	"nib/internal/lang"
	"nib/internal/modal"
	"nib/internal/search"
	"nib/internal/tui/state"
	"nib/internal/tui/util"
	"nib/internal/tui/widgets/dialog"
	"nib/internal/tui/widgets/gutter"
	"nib/internal/tui/widgets/messagebar"
	"nib/internal/tui/widgets/overlay"
	"nib/internal/tui/widgets/statusbar"
	"nib/internal/viewsync"
)

// Run starts the editor on the terminal's alternate screen and blocks until
// the user quits. path may be empty for a fresh untitled document.
func Run(cfg config.Config, path string, logger *log.Logger) error {
	m := NewModel(cfg, path, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ===== Messages =====

// noticeExpiredMsg dismisses the notice identified by seq. Notices pushed
// later carry higher sequence numbers, which turns timers armed for earlier
// notices into no-ops.
type noticeExpiredMsg struct{ seq int }

// ===== Model =====

type Model struct {
	cfg     config.Config
	keys    KeyMap
	pal     util.Palette
	noColor bool
	diff    changeStyles
	logger  *log.Logger

	doc  *document.Document
	cur  *cursor.Tracker
	sync *viewsync.Syncer
	box  *editbox.Box

	searchSession modal.Session[string]
	openSession   modal.Session[string]
	input         textinput.Model

	ui          state.UIState
	status      statusbar.StatusBar
	gutterTop   int
	gutterWidth int

	// queued collects commands produced inside modal completion callbacks,
	// which cannot return them; the dialog key handler drains it.
	queued []tea.Cmd
}

// NewModel wires the editor together. When path names an existing file it
// is loaded before the first frame; a missing path starts untitled.
func NewModel(cfg config.Config, path string, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	doc := document.New(lang.Detect)
	cur := cursor.NewTracker()

	in := textinput.New()
	in.Prompt = "" // the dialog frame draws its own prompt

	m := &Model{
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		pal:     util.DefaultPalette(),
		noColor: util.NoColor(cfg.NoColor),
		logger:  logger,
		doc:     doc,
		cur:     cur,
		sync:    viewsync.New(doc, cur),
		box:     editbox.New(cfg.HistoryLimit),
		input:   in,
		status:  statusbar.NewStatusBar(),
	}
	m.diff = newChangeStyles(m.noColor)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			doc.Load(path)
			m.box.SetValue(doc.Content())
			m.logger.Printf("opened %s (%d lines, %s)", path, doc.LineCount(), doc.Language())
		} else {
			m.logger.Printf("path %s does not exist, starting untitled", path)
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd { return m.box.Focus() }

// Update handles one event completely before the next is delivered.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		return m, nil

	case noticeExpiredMsg:
		m.ui = state.ExpireNotice(m.ui, msg.seq)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.ui.Focus {
		case state.FocusDialog:
			return m.updateDialog(msg)
		case state.FocusOverlay:
			return m.updateOverlay(msg)
		default:
			return m.updateEditor(msg)
		}

	default:
		// Non-key messages (cursor blinks, paste results) go to both
		// inputs; each ignores what it does not recognize.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, tea.Batch(cmd, m.routeToBox(msg))
	}
}

// ===== Key routing =====

// updateEditor handles keys while the editing surface owns input.
func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	case key.Matches(msg, m.keys.Undo):
		if m.box.Undo() {
			m.syncAfterRestore()
		}
		return m, nil
	case key.Matches(msg, m.keys.Redo):
		if m.box.Redo() {
			m.syncAfterRestore()
		}
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m, m.openSearchDialog()
	case key.Matches(msg, m.keys.Open):
		return m, m.openFileDialog()
	case key.Matches(msg, m.keys.CopyLine):
		return m, m.copyLine()
	case key.Matches(msg, m.keys.Changes):
		m.ui = state.ShowOverlay(m.ui, state.OverlayChanges)
		m.box.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ShowOverlay(m.ui, state.OverlayHelp)
		m.box.Blur()
		return m, nil
	}
	return m, m.routeToBox(msg)
}

// updateDialog routes keys while a dialog owns input: submit and cancel
// close it, everything else edits the dialog's one-line buffer. Document
// commands stay dead until the dialog is gone.
func (m *Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		sess := m.activeSession()
		value := m.input.Value()
		focusCmd := m.closeDialogUI()
		sess.Submit(value)
		return m, m.drainQueued(focusCmd)
	case key.Matches(msg, m.keys.Cancel):
		sess := m.activeSession()
		focusCmd := m.closeDialogUI()
		sess.Cancel()
		return m, m.drainQueued(focusCmd)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.activeSession().SetInput(m.input.Value())
	return m, cmd
}

// updateOverlay dismisses full-pane panels. The key that opened a panel
// also closes it, as do the usual submit/cancel keys.
func (m *Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Submit):
		return m, m.closeOverlay()
	case key.Matches(msg, m.keys.Help) && m.ui.Overlay == state.OverlayHelp:
		return m, m.closeOverlay()
	case key.Matches(msg, m.keys.Changes) && m.ui.Overlay == state.OverlayChanges:
		return m, m.closeOverlay()
	}
	return m, nil
}

// routeToBox forwards msg to the editing surface and keeps the document and
// cursor models synchronized with whatever it did.
func (m *Model) routeToBox(msg tea.Msg) tea.Cmd {
	cmd, ev := m.box.Update(msg)
	if ev.TextChanged {
		line, col := m.box.CursorPosition()
		m.doc.SetContent(m.box.Value(), line)
		m.cur.Update(line, col)
		if m.ui.QuitArmed {
			m.ui = state.DisarmQuit(m.ui)
		}
		if gutter.Width(m.sync.State().LineCount) != m.gutterWidth {
			m.layout()
		}
	} else if ev.CursorMoved {
		m.cur.Update(m.box.CursorPosition())
	}
	if ev.TextChanged || ev.CursorMoved {
		m.scrollGutter()
	}
	return cmd
}

// syncAfterRestore pushes the surface state back into the models after an
// undo or redo replaced the buffer wholesale.
func (m *Model) syncAfterRestore() {
	line, col := m.box.CursorPosition()
	m.doc.SetContent(m.box.Value(), line)
	m.cur.Update(line, col)
	m.scrollGutter()
}

// ===== Commands =====

// quit implements the two-press protocol: the first press on a modified
// document warns and re-baselines, so the second press sees a clean
// document and exits. Any edit in between re-arms the warning.
func (m *Model) quit() tea.Cmd {
	if !m.doc.Modified() {
		m.logger.Printf("quit")
		return tea.Quit
	}
	stats := document.ChangeStats(m.doc.Baseline(), m.doc.Content())
	m.doc.Rebaseline()
	m.ui = state.ArmQuit(m.ui)
	text := fmt.Sprintf("Unsaved changes! (+%d -%d) Press %s again to quit.",
		stats.Added, stats.Removed, m.keys.Quit.Help().Key)
	return m.notify(text, state.Warning)
}

func (m *Model) save() tea.Cmd {
	if err := m.doc.Save(); err != nil {
		m.logger.Printf("save failed: %v", err)
		return m.notify(fmt.Sprintf("Error saving: %v", err), state.Error)
	}
	m.logger.Printf("saved %s", m.doc.Path())
	return m.notify("Saved: "+m.doc.Path(), state.Info)
}

func (m *Model) openSearchDialog() tea.Cmd {
	m.searchSession.Open("Search:", func(term string, ok bool) {
		if !ok {
			return
		}
		m.findNext(term)
	})
	return m.focusDialog(state.DialogSearch)
}

func (m *Model) openFileDialog() tea.Cmd {
	m.openSession.Open("Open file:", func(path string, ok bool) {
		if !ok {
			return
		}
		m.openFile(path)
	})
	return m.focusDialog(state.DialogOpen)
}

// findNext runs one wrap-around search from the current cursor and either
// jumps to the match or reports the miss.
func (m *Model) findNext(term string) {
	pos := m.cur.Position()
	hit, ok := search.FindNext(m.doc.Content(), term, pos.Line, pos.Col)
	if !ok {
		m.queue(m.notify("Not found: "+term, state.Info))
		return
	}
	m.box.SetCursorPosition(hit.Line, hit.Col)
	m.cur.Update(hit.Line, hit.Col)
	m.scrollGutter()
}

// openFile validates and loads path into the editor; a missing file leaves
// the current document untouched.
func (m *Model) openFile(path string) {
	if _, err := os.Stat(path); err != nil {
		m.queue(m.notify("File not found: "+path, state.Error))
		return
	}
	m.doc.Load(path)
	m.box.SetValue(m.doc.Content())
	m.cur.Update(0, 0)
	m.gutterTop = 0
	m.layout()
	m.logger.Printf("opened %s (%d lines, %s)", path, m.doc.LineCount(), m.doc.Language())
}

// copyLine puts the cursor's line on the system clipboard.
func (m *Model) copyLine() tea.Cmd {
	if err := clipboard.WriteAll(m.box.LineText()); err != nil {
		return m.notify("Clipboard unavailable", state.Error)
	}
	return m.notify("Copied line to clipboard", state.Info)
}

// ===== Dialog and overlay plumbing =====

// activeSession resolves which modal session the open dialog belongs to.
// Callers closing the dialog must grab it before the state reducer resets
// the dialog kind.
func (m *Model) activeSession() *modal.Session[string] {
	if m.ui.Dialog == state.DialogOpen {
		return &m.openSession
	}
	return &m.searchSession
}

func (m *Model) focusDialog(kind state.DialogKind) tea.Cmd {
	m.ui = state.OpenDialog(m.ui, kind)
	m.box.Blur()
	m.input.Reset()
	m.layout()
	return m.input.Focus()
}

// closeDialogUI restores editor focus before the session outcome is
// delivered, so completion callbacks find the surface ready for cursor
// moves.
func (m *Model) closeDialogUI() tea.Cmd {
	m.ui = state.CloseDialog(m.ui)
	m.input.Blur()
	m.input.Reset()
	m.layout()
	return m.box.Focus()
}

func (m *Model) closeOverlay() tea.Cmd {
	m.ui = state.CloseOverlay(m.ui)
	return m.box.Focus()
}

// notify replaces the visible notice and arms its expiry timer. Errors
// linger a second longer than the configured duration.
func (m *Model) notify(text string, sev state.Severity) tea.Cmd {
	m.ui = state.PushNotice(m.ui, text, sev)
	d := time.Duration(m.cfg.NoticeMillis) * time.Millisecond
	if sev == state.Error {
		d += time.Second
	}
	seq := m.ui.NoticeSeq
	return tea.Tick(d, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) drainQueued(cmds ...tea.Cmd) tea.Cmd {
	all := append(m.queued, cmds...)
	m.queued = nil
	return tea.Batch(all...)
}

// ===== Layout =====

// layout sizes the editing surface for the current terminal and dialog
// state: one row each for the message and status bars, plus the dialog rows
// while one is open, and the gutter column on the left.
func (m *Model) layout() {
	w, h := m.ui.Width, m.ui.Height
	if w <= 0 || h <= 0 {
		return
	}
	m.gutterWidth = 0
	if m.cfg.Gutter {
		m.gutterWidth = gutter.Width(m.sync.State().LineCount)
	}
	m.box.SetSize(w-m.gutterWidth, m.editorHeight())

	iw := w - 18
	if iw < 10 {
		iw = 10
	}
	m.input.Width = iw
	m.scrollGutter()
}

func (m *Model) editorHeight() int {
	h := m.ui.Height - 2 // message bar and status bar
	if m.ui.Focus == state.FocusDialog {
		h -= dialog.Height
	}
	if h < 1 {
		h = 1
	}
	return h
}

// scrollGutter keeps the cursor's line inside the gutter window, mirroring
// the surface's own vertical scrolling in logical lines.
func (m *Model) scrollGutter() {
	h := m.editorHeight()
	if h <= 0 {
		return
	}
	line := m.cur.Line()
	if line < m.gutterTop {
		m.gutterTop = line
	}
	if line >= m.gutterTop+h {
		m.gutterTop = line - h + 1
	}
}

// ===== View =====

func (m *Model) View() string {
	if m.ui.Width <= 0 || m.ui.Height <= 0 {
		return ""
	}
	st := m.sync.State()

	var pane string
	switch m.ui.Overlay {
	case state.OverlayHelp:
		pane = overlay.View("Key bindings", renderHelp(m.keys),
			m.ui.Width, m.editorHeight(), m.pal, m.noColor)
	case state.OverlayChanges:
		stats := document.ChangeStats(m.doc.Baseline(), m.doc.Content())
		title := fmt.Sprintf("Pending changes (+%d -%d)", stats.Added, stats.Removed)
		pane = overlay.View(title, renderChanges(m.doc.Baseline(), m.doc.Content(), m.diff),
			m.ui.Width, m.editorHeight(), m.pal, m.noColor)
	default:
		if m.gutterWidth > 0 {
			g := gutter.View(st.GutterRows, m.gutterTop, m.editorHeight(), m.pal, m.noColor)
			pane = lipgloss.JoinHorizontal(lipgloss.Top, g, m.box.View())
		} else {
			pane = m.box.View()
		}
	}

	rows := []string{pane}
	if m.ui.Focus == state.FocusDialog {
		rows = append(rows, dialog.View(m.activeSession().Prompt(), m.input.View(),
			m.ui.Width, m.pal, m.noColor))
	}
	rows = append(rows, messagebar.View(m.ui.Notice, m.ui.NoticeSeverity, m.ui.Width, m.pal, m.noColor))
	rows = append(rows, m.status.View(st.StatusText, m.ui.Width, m.pal, m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
