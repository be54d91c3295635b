package platformer

import "testing"

var testMotion = Motion{MoveSpeed: 7, JumpSpeed: 21, JumpTolerance: 10}

func grounded(tolerance float64) bool { return true }

func airborne(tolerance float64) bool { return false }

func TestResolveHorizontal(t *testing.T) {
	cases := []struct {
		name  string
		left  bool
		right bool
		want  float64
	}{
		{"neither", false, false, 0},
		{"right", false, true, 7},
		{"left", true, false, -7},
		{"both_cancel", true, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := InputState{Left: c.left, Right: c.right}
			p := &Player{VelocityX: 99, VelocityY: -3}
			testMotion.Resolve(&in, p, grounded)
			if p.VelocityX != c.want {
				t.Fatalf("expected VelocityX %v, got %v", c.want, p.VelocityX)
			}
			if p.VelocityY != -3 {
				t.Fatalf("VelocityY changed without a jump: %v", p.VelocityY)
			}
		})
	}
}

func TestResolveJumpFiresOncePerPress(t *testing.T) {
	in := InputState{Up: true}
	p := &Player{}

	if !testMotion.Resolve(&in, p, grounded) {
		t.Fatalf("expected first resolve to jump")
	}
	if p.VelocityY != 21 || !in.JumpLatched {
		t.Fatalf("expected VelocityY 21 and latch set, got %v / %v", p.VelocityY, in.JumpLatched)
	}

	// Gravity pulls the velocity down; the held key must not re-trigger.
	p.VelocityY = 5
	if testMotion.Resolve(&in, p, grounded) {
		t.Fatalf("jump fired again while Up was held")
	}
	if p.VelocityY != 5 {
		t.Fatalf("expected VelocityY untouched, got %v", p.VelocityY)
	}
}

func TestResolveNoJumpWhenAirborne(t *testing.T) {
	in := InputState{Up: true}
	p := &Player{VelocityY: -4}

	if testMotion.Resolve(&in, p, airborne) {
		t.Fatalf("jump fired without ground contact")
	}
	if p.VelocityY != -4 {
		t.Fatalf("expected VelocityY -4, got %v", p.VelocityY)
	}
	if in.JumpLatched {
		t.Fatalf("latch set without a jump")
	}
}

func TestResolvePassesTolerance(t *testing.T) {
	in := InputState{Up: true}
	var got float64
	testMotion.Resolve(&in, &Player{}, func(tolerance float64) bool {
		got = tolerance
		return false
	})
	if got != 10 {
		t.Fatalf("expected tolerance 10, got %v", got)
	}
}

func TestResolveRightPressThenRelease(t *testing.T) {
	tr := NewInputTracker(testKeymap())
	p := &Player{}

	tr.KeyDown(keyArrowRight)
	testMotion.Resolve(&tr.State, p, grounded)
	if p.VelocityX != 7 {
		t.Fatalf("expected VelocityX 7, got %v", p.VelocityX)
	}

	tr.KeyUp(keyArrowRight)
	testMotion.Resolve(&tr.State, p, grounded)
	if p.VelocityX != 0 {
		t.Fatalf("expected VelocityX 0, got %v", p.VelocityX)
	}
}
