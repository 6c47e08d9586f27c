package cursor

// Position is a zero-based (line, column) pair as last reported by the
// editing surface. Columns count runes, not bytes or display cells.
type Position struct {
	Line int
	Col  int
}

// Tracker mirrors the position the editing surface reports. It never clamps
// or validates; the surface owns where the cursor may legally be.
type Tracker struct {
	pos  Position
	subs []func(Position)
}

func NewTracker() *Tracker { return &Tracker{} }

// Subscribe registers fn to run synchronously after every Update.
func (t *Tracker) Subscribe(fn func(Position)) {
	t.subs = append(t.subs, fn)
}

// Update stores the reported position and notifies subscribers.
func (t *Tracker) Update(line, col int) {
	t.pos = Position{Line: line, Col: col}
	for _, fn := range t.subs {
		fn(t.pos)
	}
}

func (t *Tracker) Position() Position { return t.pos }
func (t *Tracker) Line() int          { return t.pos.Line }
func (t *Tracker) Col() int           { return t.pos.Col }
