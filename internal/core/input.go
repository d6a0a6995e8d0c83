package core

// Action is a semantic player intent, abstracted from keys, clicks and taps.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // Menu navigation
	ActionDown           // Menu navigation
	ActionJump           // Flap
	ActionConfirm        // Confirm selection / next level
	ActionBack           // Back to level select
	ActionRestart        // Restart after a run ends
	ActionQuit           // Exit
	ActionPause          // Pause/unpause
)

// InputFrame is the set of actions collected between two frames.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.bits&(1<<a) != 0
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}
