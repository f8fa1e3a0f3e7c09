package core

import "time"

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, W, K
	ActionDown               // Down arrow, S, J
	ActionLeft               // Left arrow, A, H
	ActionRight              // Right arrow, D, L
	ActionUndo               // Space, U
	ActionAcknowledge        // Any other key; dismisses the loss screen
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
	case ActionUndo:
		return "Undo"
	case ActionAcknowledge:
		return "Acknowledge"
	default:
		return "Unknown"
	}
}

// InputEvent is a single action stamped with its arrival time.
type InputEvent struct {
	Action Action
	At     time.Time
}

// InputFrame holds everything a game needs for one tick: the events that
// arrived since the previous tick, in arrival order, and the time the tick
// was sampled.
type InputFrame struct {
	Events []InputEvent
	Now    time.Time
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event. Events must be pushed in arrival order.
func (f *InputFrame) Push(a Action, at time.Time) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, InputEvent{Action: a, At: at})
}

// Clear drops all events for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	f.Now = time.Time{}
}
