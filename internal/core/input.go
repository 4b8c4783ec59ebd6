package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move tile cursor / menu up
	ActionDown             // S, Down arrow - move tile cursor / menu down
	ActionLeft             // A, Left arrow - move tile cursor left
	ActionRight            // D, Right arrow - move tile cursor right
	ActionNext             // Tab - cycle tile cursor through clickable tiles
	ActionConfirm          // Enter, Space - click tile under cursor / confirm menu
	ActionPop              // X - return the oldest queued tile to the board
	ActionUndo             // U - return the newest queued tile to the board
	ActionWash             // F - shuffle the remaining tiles
	ActionLevelUp          // ] - skip to the next level
	ActionLevelDown        // [ - skip to the previous level
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart from the first level
	ActionQuit             // Q, Ctrl+C - exit game/session
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
	case ActionNext:
		return "Next"
	case ActionConfirm:
		return "Confirm"
	case ActionPop:
		return "Pop"
	case ActionUndo:
		return "Undo"
	case ActionWash:
		return "Wash"
	case ActionLevelUp:
		return "LevelUp"
	case ActionLevelDown:
		return "LevelDown"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse press in screen cell coordinates.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame plus
// at most one pointer press.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Press is the last mouse press of the frame, nil if there was none.
	Press *Pointer
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

// PressAt records a mouse press at screen cell (x, y).
func (f *InputFrame) PressAt(x, y int) {
	f.Press = &Pointer{X: x, Y: y}
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Press == nil
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Press = nil
}
