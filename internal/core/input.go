package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - held while moving left
	ActionRight          // Right arrow, D, L - held while moving right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
	ActionMusic          // M - toggle background music
	ActionStop           // Space - release held directions
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMusic:
		return "Music"
	case ActionStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// Left and Right are level-triggered (present while the key is held);
// every other action is edge-triggered (present on the tick it was pressed).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		if v {
			clone.Actions[k] = true
		}
	}
	return clone
}

// Mask packs the frame into a bitmask, one bit per Action.
// Used to store compact input logs for replays.
func (f InputFrame) Mask() uint16 {
	var m uint16
	for a, on := range f.Actions {
		if on && a > ActionNone && a < 16 {
			m |= 1 << uint(a)
		}
	}
	return m
}

// FrameFromMask rebuilds an input frame from a bitmask produced by Mask.
func FrameFromMask(m uint16) InputFrame {
	f := NewInputFrame()
	for a := ActionLeft; a <= ActionStop; a++ {
		if m&(1<<uint(a)) != 0 {
			f.Set(a)
		}
	}
	return f
}
