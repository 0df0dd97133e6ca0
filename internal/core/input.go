package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys (and the gravity timer) onto these; the
// game consumes a single ordered stream of them per tick.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, a, h - shift piece left
	ActionRight           // Right arrow, d, l - shift piece right
	ActionSoftDrop        // Down arrow, s, j - drop one row immediately
	ActionRotate          // Up arrow, w, x - rotate piece clockwise
	ActionHardDrop        // Space - drop piece to the bottom
	ActionPause           // P, Esc - pause/unpause
	ActionRestart         // R - restart after game over
	ActionConfirm         // Enter - confirm in menus
	ActionBack            // B - back in menus / scoreboard
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame; the game
// drains it in a fixed order so simultaneous key presses apply
// deterministically.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
