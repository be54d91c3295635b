package platformer

import "testing"

const (
	keyArrowUp Key = iota + 1
	keyW
	keyArrowLeft
	keyA
	keyArrowRight
	keyD
	keyArrowDown
	keyEscape
)

func testKeymap() Keymap {
	return Keymap{
		keyArrowUp:    ActionUp,
		keyW:          ActionUp,
		keyArrowLeft:  ActionLeft,
		keyA:          ActionLeft,
		keyArrowRight: ActionRight,
		keyD:          ActionRight,
		keyArrowDown:  ActionDown,
	}
}

func TestInputTrackerKeyMapping(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		want InputState
	}{
		{"arrow_up", keyArrowUp, InputState{Up: true}},
		{"w", keyW, InputState{Up: true}},
		{"arrow_left", keyArrowLeft, InputState{Left: true}},
		{"a", keyA, InputState{Left: true}},
		{"arrow_right", keyArrowRight, InputState{Right: true}},
		{"d", keyD, InputState{Right: true}},
		{"down", keyArrowDown, InputState{Down: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := NewInputTracker(testKeymap())
			if !tr.KeyDown(c.key) {
				t.Fatalf("KeyDown(%d) should report a bound key", c.key)
			}
			if tr.State != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, tr.State)
			}
			tr.KeyUp(c.key)
			if tr.State != (InputState{}) {
				t.Fatalf("expected zero state after release, got %+v", tr.State)
			}
		})
	}
}

func TestInputTrackerIgnoresUnboundKeys(t *testing.T) {
	tr := NewInputTracker(testKeymap())
	tr.KeyDown(keyD)

	if tr.KeyDown(keyEscape) {
		t.Fatalf("unbound key should not be reported as handled")
	}
	if tr.KeyUp(keyEscape) {
		t.Fatalf("unbound key release should not be reported as handled")
	}
	if tr.State != (InputState{Right: true}) {
		t.Fatalf("unbound key changed state: %+v", tr.State)
	}
}

func TestInputTrackerUpReleaseClearsLatch(t *testing.T) {
	tr := NewInputTracker(testKeymap())
	tr.KeyDown(keyW)
	tr.State.JumpLatched = true

	// Releasing another key leaves the latch alone.
	tr.KeyUp(keyA)
	if !tr.State.JumpLatched {
		t.Fatalf("latch cleared by unrelated key")
	}

	// Either Up key re-arms the jump.
	tr.KeyUp(keyArrowUp)
	if tr.State.Up || tr.State.JumpLatched {
		t.Fatalf("expected Up released and latch cleared, got %+v", tr.State)
	}
}
