package platformer

import "testing"

func TestSelectFacing(t *testing.T) {
	cases := []struct {
		name    string
		current Facing
		vx      float64
		want    Facing
	}{
		{"right_stays_right_at_rest", FacingRight, 0, FacingRight},
		{"left_stays_left_at_rest", FacingLeft, 0, FacingLeft},
		{"flip_to_left", FacingRight, -7, FacingLeft},
		{"flip_to_right", FacingLeft, 7, FacingRight},
		{"already_left", FacingLeft, -0.5, FacingLeft},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SelectFacing(c.current, c.vx); got != c.want {
				t.Fatalf("SelectFacing(%v, %v) = %v, want %v", c.current, c.vx, got, c.want)
			}
		})
	}
}

func TestFacingSticksAfterStop(t *testing.T) {
	f := FacingRight
	f = SelectFacing(f, -7)
	if f != FacingLeft {
		t.Fatalf("expected left after moving left, got %v", f)
	}
	f = SelectFacing(f, 0)
	if f != FacingLeft {
		t.Fatalf("expected left to stick at rest, got %v", f)
	}
}
