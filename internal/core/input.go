package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - walk left
	ActionRight          // Right arrow, D - walk right
	ActionJump           // Up arrow, W, Space - jump
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart from the initial world
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is the single movement command the simulation applies in one tick.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandJump
)

// String returns the command name used in logs and scripts.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveLeft:
		return "move-left"
	case CommandMoveRight:
		return "move-right"
	case CommandJump:
		return "jump"
	default:
		return "unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf creates an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// Command resolves the frame to at most one movement command.
// Left wins over right, and both win over jump.
func (f InputFrame) Command() Command {
	switch {
	case f.Has(ActionLeft):
		return CommandMoveLeft
	case f.Has(ActionRight):
		return CommandMoveRight
	case f.Has(ActionJump):
		return CommandJump
	default:
		return CommandNone
	}
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
		clone.Actions[k] = v
	}
	return clone
}
