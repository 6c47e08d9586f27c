package state

// Focus identifies which surface currently owns key input.
type Focus int

const (
	FocusEditor Focus = iota
	FocusDialog
	FocusOverlay
)

// DialogKind identifies which modal dialog is open, if any.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogSearch
	DialogOpen
)

// OverlayKind identifies which full-pane overlay is showing, if any.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayHelp
	OverlayChanges
)

// Severity ranks a notice for styling and display duration.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// UIState holds cross-widget UI state used by the editor pane, the status
// and message bars, dialogs and overlays.
type UIState struct {
	// Focus routing
	Focus   Focus
	Dialog  DialogKind
	Overlay OverlayKind

	// Notices and ephemeral messages
	Notice         string
	NoticeSeverity Severity
	NoticeSeq      int

	// Quit protocol
	QuitArmed bool

	// Layout
	Width  int
	Height int
}
