package game

import "math"

// Camera follows the player over the map. World y points up and screen y
// points down, so WorldToScreen flips the vertical axis.
type Camera struct {
	X, Y float64 // world position of the view centre

	screenW, screenH float64
	worldW, worldH   float64
}

// NewCamera creates a camera for a screen and a world, both in pixels.
func NewCamera(screenW, screenH int, worldW, worldH float64) *Camera {
	return &Camera{
		screenW: float64(screenW),
		screenH: float64(screenH),
		worldW:  worldW,
		worldH:  worldH,
	}
}

// Follow centres the view on (x, y), keeping the map edge on screen when the
// map is larger than the view.
func (c *Camera) Follow(x, y float64) {
	c.X = clampAxis(x, c.screenW, c.worldW)
	c.Y = clampAxis(y, c.screenH, c.worldH)
}

func clampAxis(v, view, world float64) float64 {
	if world <= view {
		return world / 2
	}
	return math.Max(view/2, math.Min(v, world-view/2))
}

// WorldToScreen maps a world point to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float32, float32) {
	sx := x - c.X + c.screenW/2
	sy := c.screenH/2 - (y - c.Y)
	return float32(sx), float32(sy)
}

// Visible reports whether a world rectangle anchored at its bottom-left
// corner overlaps the screen.
func (c *Camera) Visible(x, y, w, h float64) bool {
	left := c.X - c.screenW/2
	bottom := c.Y - c.screenH/2
	return x+w > left && x < left+c.screenW && y+h > bottom && y < bottom+c.screenH
}
