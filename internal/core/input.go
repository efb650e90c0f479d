package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionRotateCCW        // Q - counter-clockwise rotation
	ActionPad1             // Q, L - first pad (red)
	ActionPad2             // W, ; - second pad (blue)
	ActionPad3             // A, . - third pad (green)
	ActionPad4             // S, / - fourth pad (yellow)
	ActionConfirm          // Enter
	ActionPause            // Space, P
	ActionRestart          // R
	ActionBack             // B - back to menu
	ActionQuit             // Escape, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionRotateCCW: "RotateCCW",
	ActionPad1:      "Pad1",
	ActionPad2:      "Pad2",
	ActionPad3:      "Pad3",
	ActionPad4:      "Pad4",
	ActionConfirm:   "Confirm",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Pointer is the mouse state for one frame, in pixel coordinates of the
// screen's pixel layer.
type Pointer struct {
	X, Y    int
	Valid   bool // a position has been seen at least once
	Moved   bool // the pointer moved this frame
	Clicked bool // a button was released this frame
}

// Pos returns the pointer position.
func (p Pointer) Pos() Point {
	return Point{X: p.X, Y: p.Y}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	Pointer Pointer
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

// AnyKey reports whether any key action fired this frame. Used by
// "press any key" screens.
func (f InputFrame) AnyKey() bool {
	for a, on := range f.Actions {
		if on && a != ActionNone && a != ActionQuit && a != ActionBack {
			return true
		}
	}
	return false
}

// Clicked reports whether the pointer was released this frame.
func (f InputFrame) Clicked() bool {
	return f.Pointer.Clicked
}

// Clear resets actions and the per-frame pointer flags. The last pointer
// position is kept so hover effects survive frames without motion.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Moved = false
	f.Pointer.Clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
