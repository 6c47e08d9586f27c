// Package modal implements the blocking one-line dialog state machine.
package modal

// Session collects a single value of type T from the user. While a session
// is open the editor's own key handling is suspended by the caller; the
// session closes again through exactly one Submit or Cancel, which reports
// the outcome to the callback installed by Open. Dismissing an already
// closed session is a no-op rather than an error, so duplicate close events
// are harmless.
//
// The zero value is a closed session ready for Open.
type Session[T any] struct {
	active   bool
	prompt   string
	input    string
	complete func(value T, ok bool)
}

// Open transitions the session from Closed to Open, resets the input buffer
// and installs the completion callback. Any callback left over from an
// earlier Open is discarded.
func (s *Session[T]) Open(prompt string, onComplete func(value T, ok bool)) {
	s.active = true
	s.prompt = prompt
	s.input = ""
	s.complete = onComplete
}

// Submit closes the session and hands value to the callback with ok=true.
func (s *Session[T]) Submit(value T) {
	if !s.active {
		return
	}
	s.finish(value, true)
}

// Cancel closes the session and invokes the callback with ok=false.
func (s *Session[T]) Cancel() {
	if !s.active {
		return
	}
	var zero T
	s.finish(zero, false)
}

// finish clears the session before invoking the callback, so a callback may
// immediately Open the session again without tripping the exactly-once
// guard.
func (s *Session[T]) finish(value T, ok bool) {
	cb := s.complete
	s.active = false
	s.prompt = ""
	s.input = ""
	s.complete = nil
	if cb != nil {
		cb(value, ok)
	}
}

func (s *Session[T]) Active() bool   { return s.active }
func (s *Session[T]) Prompt() string { return s.prompt }

// Input returns the dialog's one-line buffer.
func (s *Session[T]) Input() string { return s.input }

// SetInput mirrors the rendering layer's text input into the session; it is
// ignored while the session is closed.
func (s *Session[T]) SetInput(in string) {
	if !s.active {
		return
	}
	s.input = in
}
