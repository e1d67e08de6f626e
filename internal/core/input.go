package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - run left
	ActionRight        // D, Right arrow - run right
	ActionJump         // W, Space, Up arrow - jump; also restarts from the end screens
	ActionQuit         // Q, Ctrl+C - exit game
	ActionBack         // Esc - back to level menu
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
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// An action present in the frame is held for the whole tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
		clone.Actions[k] = v
	}
	return clone
}

// Controls returns the movement record sampled from this frame.
func (f InputFrame) Controls() Controls {
	return Controls{
		Left:  f.Has(ActionLeft),
		Right: f.Has(ActionRight),
		Jump:  f.Has(ActionJump),
	}
}

// Controls is the tri-state movement record consumed by the simulation.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// Frame converts the record back into an input frame.
func (c Controls) Frame() InputFrame {
	f := NewInputFrame()
	if c.Left {
		f.Set(ActionLeft)
	}
	if c.Right {
		f.Set(ActionRight)
	}
	if c.Jump {
		f.Set(ActionJump)
	}
	return f
}

// DefaultHoldTicks is how long a KeyLatch keeps an action held after a press.
// Terminals repeat a held key roughly every 30-50ms, which is 2-3 ticks at 60 Hz.
// The first-repeat delay is longer; raise input.hold_ticks in the config if movement stutters.
const DefaultHoldTicks = 9

// KeyLatch turns press-only key events (all a terminal delivers) into held
// actions. A pressed action stays held until holdTicks ticks pass without a
// new press, or until it is released explicitly.
type KeyLatch struct {
	holdTicks int
	remaining map[Action]int
}

// NewKeyLatch creates a latch that holds each press for holdTicks ticks.
func NewKeyLatch(holdTicks int) *KeyLatch {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyLatch{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press marks an action as held, restarting its hold window.
func (l *KeyLatch) Press(a Action) {
	if a == ActionNone {
		return
	}
	l.remaining[a] = l.holdTicks

	// Opposite directions cancel each other, so a quick turn is not blurred.
	switch a {
	case ActionLeft:
		delete(l.remaining, ActionRight)
	case ActionRight:
		delete(l.remaining, ActionLeft)
	}
}

// Release drops an action immediately.
func (l *KeyLatch) Release(a Action) {
	delete(l.remaining, a)
}

// Held reports whether an action is currently held.
func (l *KeyLatch) Held(a Action) bool {
	return l.remaining[a] > 0
}

// Sample returns the frame of held actions and advances the hold windows by one tick.
func (l *KeyLatch) Sample() InputFrame {
	f := NewInputFrame()
	for a, n := range l.remaining {
		if n > 0 {
			f.Set(a)
		}
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	return f
}

// Reset releases every action.
func (l *KeyLatch) Reset() {
	for k := range l.remaining {
		delete(l.remaining, k)
	}
}
