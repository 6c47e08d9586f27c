package state

// OpenDialog hands input focus to a dialog and returns a new state copy.
// Editor key routing stays suspended until CloseDialog.
func OpenDialog(s UIState, kind DialogKind) UIState {
	s.Focus = FocusDialog
	s.Dialog = kind
	return s
}

// CloseDialog returns input focus to the editor pane.
func CloseDialog(s UIState) UIState {
	s.Focus = FocusEditor
	s.Dialog = DialogNone
	return s
}

// ShowOverlay hands input focus to a full-pane overlay.
func ShowOverlay(s UIState, kind OverlayKind) UIState {
	s.Focus = FocusOverlay
	s.Overlay = kind
	return s
}

// CloseOverlay returns input focus to the editor pane.
func CloseOverlay(s UIState) UIState {
	s.Focus = FocusEditor
	s.Overlay = OverlayNone
	return s
}

// PushNotice replaces the visible notice and bumps the sequence number so
// expiry timers armed for older notices turn stale.
func PushNotice(s UIState, text string, sev Severity) UIState {
	s.Notice = text
	s.NoticeSeverity = sev
	s.NoticeSeq++
	return s
}

// ExpireNotice clears the notice only while seq still identifies it. A stale
// timer firing after a newer notice replaced its target is a no-op.
func ExpireNotice(s UIState, seq int) UIState {
	if seq != s.NoticeSeq {
		return s
	}
	s.Notice = ""
	return s
}

// ArmQuit sets the confirm-quit flag after the first quit press on a
// modified document.
func ArmQuit(s UIState) UIState {
	s.QuitArmed = true
	return s
}

// DisarmQuit clears the confirm-quit flag; any edit between the two quit
// presses lands here so the warning fires again.
func DisarmQuit(s UIState) UIState {
	s.QuitArmed = false
	return s
}

// Resize records the terminal size.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}
