package input

// Recorder is an in-memory Source. Frontends feed it once per tick and the
// simulation reads from it; tests script it directly.
type Recorder struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Begin clears the edge-triggered state for a new tick.
// Held state persists until SetHeld(a, false).
func (r *Recorder) Begin() {
	for a := range r.pressed {
		delete(r.pressed, a)
	}
}

// SetHeld records the level-triggered state of an action.
func (r *Recorder) SetHeld(a Action, held bool) {
	if held {
		r.held[a] = true
	} else {
		delete(r.held, a)
	}
}

// Press records an edge-triggered activation for this tick. A pressed key
// is also held.
func (r *Recorder) Press(a Action) {
	r.pressed[a] = true
	r.held[a] = true
}

// Held reports whether the action is currently held.
func (r *Recorder) Held(a Action) bool {
	return r.held[a]
}

// Pressed reports whether the action was pressed this tick.
func (r *Recorder) Pressed(a Action) bool {
	return r.pressed[a]
}
