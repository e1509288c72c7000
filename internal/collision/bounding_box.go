package collision

// BoundingBox is an axis-aligned rectangle anchored at its bottom-left corner.
// Bodies in the round are positioned by that corner.
type BoundingBox struct {
	X      float64 // Left edge
	Y      float64 // Bottom edge
	Width  float64
	Height float64
}

// NewBoundingBox creates a box with its corner at (x, y).
func NewBoundingBox(x, y, width, height float64) BoundingBox {
	return BoundingBox{X: x, Y: y, Width: width, Height: height}
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	return bb.X, bb.Y, bb.X + bb.Width, bb.Y + bb.Height
}

// Center returns the middle of the box.
func (bb BoundingBox) Center() (float64, float64) {
	return bb.X + bb.Width/2, bb.Y + bb.Height/2
}

// Intersects reports whether the boxes overlap with positive area.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	minX1, minY1, maxX1, maxY1 := bb.GetBounds()
	minX2, minY2, maxX2, maxY2 := other.GetBounds()

	return minX1 < maxX2 && minX2 < maxX1 && minY1 < maxY2 && minY2 < maxY1
}

// Sweep returns the box covering every position from bb to bb moved by (dx, dy).
func (bb BoundingBox) Sweep(dx, dy float64) BoundingBox {
	swept := bb
	if dx < 0 {
		swept.X += dx
		swept.Width -= dx
	} else {
		swept.Width += dx
	}
	if dy < 0 {
		swept.Y += dy
		swept.Height -= dy
	} else {
		swept.Height += dy
	}
	return swept
}
