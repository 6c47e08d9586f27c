package editbox

// snapshot is one history entry: the full buffer text plus the cursor that
// produced it.
type snapshot struct {
	text string
	line int
	col  int
}

// history holds bounded undo/redo stacks of whole-buffer snapshots.
// Granularity follows the surface's change events rather than individual
// keystrokes: one snapshot per reported text change.
type history struct {
	undo  []snapshot
	redo  []snapshot
	limit int
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &history{limit: limit}
}

// record pushes the pre-change snapshot onto the undo stack. Any new edit
// invalidates the redo stack, and a snapshot textually identical to the top
// of the stack is not pushed twice.
func (h *history) record(prev snapshot) {
	h.redo = h.redo[:0]
	if n := len(h.undo); n > 0 && h.undo[n-1].text == prev.text {
		return
	}
	h.undo = append(h.undo, prev)
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
}

func (h *history) canUndo() bool { return len(h.undo) > 0 }
func (h *history) canRedo() bool { return len(h.redo) > 0 }

// popUndo exchanges cur for the most recent undo snapshot.
func (h *history) popUndo(cur snapshot) (snapshot, bool) {
	if !h.canUndo() {
		return snapshot{}, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cur)
	return top, true
}

// popRedo exchanges cur for the most recently undone snapshot.
func (h *history) popRedo(cur snapshot) (snapshot, bool) {
	if !h.canRedo() {
		return snapshot{}, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cur)
	return top, true
}
