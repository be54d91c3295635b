package platformer

import "testing"

func TestComputeOffset(t *testing.T) {
	cases := []struct {
		name         string
		px, py, w, h float64
		wantX, wantY float64
	}{
		{"origin", 0, 0, 1664, 896, 0, 0},
		{"inside_half_viewport", 800, 400, 1664, 896, 0, 0},
		{"exactly_half", 832, 448, 1664, 896, 0, 0},
		{"scrolled", 1000, 600, 1664, 896, 168, 152},
		{"x_only", 2000, 100, 1664, 896, 1168, 0},
		{"past_world_edge", 99999, 448, 1664, 896, 99999 - 832, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := ComputeOffset(c.px, c.py, c.w, c.h)
			if x != c.wantX || y != c.wantY {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.wantX, c.wantY, x, y)
			}
		})
	}
}

func TestCameraNeverNegative(t *testing.T) {
	for px := 0.0; px < 832; px += 37 {
		for py := 0.0; py < 448; py += 29 {
			x, y := ComputeOffset(px, py, 1664, 896)
			if x != 0 || y != 0 {
				t.Fatalf("ComputeOffset(%v, %v) = (%v, %v), want (0, 0)", px, py, x, y)
			}
		}
	}
}

func TestCameraToScreenFlipsY(t *testing.T) {
	c := NewCamera(640, 360)
	c.OffsetX, c.OffsetY = 100, 50

	x, y := c.ToScreen(100, 50)
	if x != 0 || y != 360 {
		t.Fatalf("bottom-left of viewport should map to (0, 360), got (%v, %v)", x, y)
	}
	x, y = c.ToScreen(740, 410)
	if x != 640 || y != 0 {
		t.Fatalf("top-right of viewport should map to (640, 0), got (%v, %v)", x, y)
	}
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera(640, 360)
	c.OffsetX = 1000

	if c.Visible(0, 0, 64, 64) {
		t.Fatalf("tile left of the viewport reported visible")
	}
	if !c.Visible(990, 0, 64, 64) {
		t.Fatalf("tile straddling the left edge reported hidden")
	}
}
