package collision

import (
	"math"

	"superduck/internal/mathutil"
)

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// CollisionSystem answers movement queries against the tile map. Tiles outside
// the map count as blocking.
type CollisionSystem struct {
	tileChecker TileChecker
	tileWidth   float64
	tileHeight  float64
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker, tileWidth, tileHeight int) *CollisionSystem {
	return &CollisionSystem{
		tileChecker: tileChecker,
		tileWidth:   float64(tileWidth),
		tileHeight:  float64(tileHeight),
	}
}

// UpdateTileChecker updates the tile checker (used when switching maps)
func (cs *CollisionSystem) UpdateTileChecker(tileChecker TileChecker) {
	cs.tileChecker = tileChecker
}

// TileSize returns the tile dimensions in pixels.
func (cs *CollisionSystem) TileSize() (int, int) {
	return int(cs.tileWidth), int(cs.tileHeight)
}

// SweepX reports whether a w×h body at (atX, atY) hits anything moving dx along X.
// A zero move never collides.
func (cs *CollisionSystem) SweepX(w, h, dx, atX, atY float64) bool {
	if dx == 0 {
		return false
	}
	return cs.Blocked(NewBoundingBox(atX, atY, w, h).Sweep(dx, 0))
}

// SweepY is SweepX along the Y axis.
func (cs *CollisionSystem) SweepY(w, h, dy, atX, atY float64) bool {
	if dy == 0 {
		return false
	}
	return cs.Blocked(NewBoundingBox(atX, atY, w, h).Sweep(0, dy))
}

// Blocked reports whether the box overlaps any blocking or out-of-bounds tile.
// Edges are half-open, so a box ending exactly on a tile boundary does not
// touch the next tile.
func (cs *CollisionSystem) Blocked(box BoundingBox) bool {
	width, height := cs.tileChecker.GetWorldBounds()
	minX, minY, maxX, maxY := box.GetBounds()

	startTileX := mathutil.FloorToTile(minX, cs.tileWidth)
	startTileY := mathutil.FloorToTile(minY, cs.tileHeight)
	endTileX := int(math.Ceil(maxX/cs.tileWidth)) - 1
	endTileY := int(math.Ceil(maxY/cs.tileHeight)) - 1

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if tileX < 0 || tileX >= width || tileY < 0 || tileY >= height {
				return true
			}
			if cs.tileChecker.IsTileBlocking(tileX, tileY) {
				return true
			}
		}
	}
	return false
}

// CheckLineOfSight reports whether the segment between two points crosses no
// blocking tile. It samples at quarter-tile intervals.
func (cs *CollisionSystem) CheckLineOfSight(x1, y1, x2, y2 float64) bool {
	dist := mathutil.Distance(x1, y1, x2, y2)
	steps := int(math.Ceil(dist / (math.Min(cs.tileWidth, cs.tileHeight) / 4)))
	if steps < 1 {
		steps = 1
	}
	width, height := cs.tileChecker.GetWorldBounds()

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		tileX := mathutil.FloorToTile(x1+(x2-x1)*t, cs.tileWidth)
		tileY := mathutil.FloorToTile(y1+(y2-y1)*t, cs.tileHeight)

		if tileX < 0 || tileX >= width || tileY < 0 || tileY >= height {
			return false
		}
		if cs.tileChecker.IsTileBlocking(tileX, tileY) {
			return false
		}
	}
	return true
}
