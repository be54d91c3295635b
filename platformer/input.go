package platformer

// Action is a logical movement action a key can be bound to.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionLeft
	ActionRight
	ActionDown
)

// Key is a physical key code. The frontend decides the numbering; the
// tracker only looks it up in a Keymap.
type Key int

// Keymap binds physical keys to actions. Several keys may share an action.
type Keymap map[Key]Action

// InputState is the pressed/released state of the movement actions.
// JumpLatched is set when a jump fires and cleared when Up is released,
// so holding Up never triggers a second jump.
type InputState struct {
	Up          bool
	Left        bool
	Right       bool
	Down        bool
	JumpLatched bool
}

// InputTracker applies key events to an InputState through a Keymap.
type InputTracker struct {
	State  InputState
	keymap Keymap
}

func NewInputTracker(keymap Keymap) *InputTracker {
	return &InputTracker{keymap: keymap}
}

// KeyDown marks the key's action as pressed. It reports whether the key
// is bound; unbound keys are ignored.
func (t *InputTracker) KeyDown(key Key) bool {
	action, ok := t.keymap[key]
	if !ok {
		return false
	}
	t.set(action, true)
	return true
}

// KeyUp marks the key's action as released. Releasing Up re-arms the jump.
func (t *InputTracker) KeyUp(key Key) bool {
	action, ok := t.keymap[key]
	if !ok {
		return false
	}
	t.set(action, false)
	if action == ActionUp {
		t.State.JumpLatched = false
	}
	return true
}

func (t *InputTracker) set(action Action, pressed bool) {
	switch action {
	case ActionUp:
		t.State.Up = pressed
	case ActionLeft:
		t.State.Left = pressed
	case ActionRight:
		t.State.Right = pressed
	case ActionDown:
		t.State.Down = pressed
	}
}
