package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - nudge target up
	ActionDown         // S, Down arrow - nudge target down
	ActionLeft         // A, Left arrow - nudge target left
	ActionRight        // D, Right arrow - nudge target right
	ActionQuit         // Q, Ctrl+C - exit game/session
	ActionPause        // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is a pointer release location in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// pointer is the last pointer release seen during this frame, if any.
	pointer    Pointer
	hasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records a pointer release. Later releases in the same frame win.
func (f *InputFrame) SetPointer(x, y int) {
	f.pointer = Pointer{X: x, Y: y}
	f.hasPointer = true
}

// PointerRelease returns the pointer release recorded this frame, if any.
func (f InputFrame) PointerRelease() (Pointer, bool) {
	return f.pointer, f.hasPointer
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointer = Pointer{}
	f.hasPointer = false
}
