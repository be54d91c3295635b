package platformer

import "math"

// Camera is the viewport offset into the world, recomputed every frame.
type Camera struct {
	OffsetX        float64
	OffsetY        float64
	ViewportWidth  float64
	ViewportHeight float64
}

func NewCamera(viewportWidth, viewportHeight float64) Camera {
	return Camera{ViewportWidth: viewportWidth, ViewportHeight: viewportHeight}
}

// ComputeOffset centres the viewport on the player and keeps the offset
// from going below the world origin. There is no clamp at the far edges.
func ComputeOffset(playerX, playerY, viewportWidth, viewportHeight float64) (float64, float64) {
	x := math.Max(0, playerX-viewportWidth/2)
	y := math.Max(0, playerY-viewportHeight/2)
	return x, y
}

// Follow moves the camera onto the player.
func (c *Camera) Follow(p *Player) {
	c.OffsetX, c.OffsetY = ComputeOffset(p.X, p.Y, c.ViewportWidth, c.ViewportHeight)
}

// ToScreen converts a y-up world point into y-down screen coordinates.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.OffsetX, c.ViewportHeight - (y - c.OffsetY)
}

// Visible reports whether the world rectangle (bottom-left x, y) overlaps
// the viewport.
func (c *Camera) Visible(x, y, w, h float64) bool {
	return x+w >= c.OffsetX && x <= c.OffsetX+c.ViewportWidth &&
		y+h >= c.OffsetY && y <= c.OffsetY+c.ViewportHeight
}
