package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the kitchen only ever sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, W
	ActionDown             // Down arrow, S
	ActionLeft             // Left arrow, A
	ActionRight            // Right arrow, D
	ActionPrimary          // F - interact (pick up, insert, trash, serve)
	ActionSecondary        // G - put down
	ActionProcess          // Space - chop
	ActionPause            // P, Esc
	ActionRestart          // R
	ActionBack             // B - back to scoreboard after round over
	ActionQuit             // Q, Ctrl+C
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
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionProcess:
		return "Process"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one movement tick.
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
