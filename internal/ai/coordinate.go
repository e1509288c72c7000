package ai

import (
	"fmt"
	"math"

	"superduck/internal/mathutil"
)

// Coordinate is an integer world position in pixels. It is comparable, so it
// serves directly as a map key.
type Coordinate struct {
	X, Y int
}

// DistanceTo returns the Euclidean distance from c to (x, y).
func (c Coordinate) DistanceTo(x, y float64) float64 {
	return math.Hypot(float64(c.X)-x, float64(c.Y)-y)
}

// InSameTile reports whether both coordinates fall in the same map tile.
func (c Coordinate) InSameTile(o Coordinate, tileWidth, tileHeight int) bool {
	return mathutil.FloorDiv(c.X, tileWidth) == mathutil.FloorDiv(o.X, tileWidth) &&
		mathutil.FloorDiv(c.Y, tileHeight) == mathutil.FloorDiv(o.Y, tileHeight)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Compare orders a and b by distance to the reference point (refX, refY):
// negative when a is closer, positive when b is closer, zero on a tie.
// The ordering is only meaningful while the reference point stays fixed.
func Compare(a, b Coordinate, refX, refY float64) int {
	da, db := a.DistanceTo(refX, refY), b.DistanceTo(refX, refY)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}
