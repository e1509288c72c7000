package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockTileChecker implements TileChecker for testing
type mockTileChecker struct {
	width, height int
	blockingTiles map[[2]int]bool
}

func newMockTileChecker(width, height int) *mockTileChecker {
	return &mockTileChecker{
		width:         width,
		height:        height,
		blockingTiles: make(map[[2]int]bool),
	}
}

func (m *mockTileChecker) block(tileX, tileY int) {
	m.blockingTiles[[2]int{tileX, tileY}] = true
}

func (m *mockTileChecker) IsTileBlocking(tileX, tileY int) bool {
	return m.blockingTiles[[2]int{tileX, tileY}]
}

func (m *mockTileChecker) GetWorldBounds() (width, height int) {
	return m.width, m.height
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := NewBoundingBox(0, 0, 10, 10)

	assert.True(t, a.Intersects(NewBoundingBox(5, 5, 10, 10)))
	assert.False(t, a.Intersects(NewBoundingBox(10, 0, 10, 10)), "touching edges do not overlap")
	assert.False(t, a.Intersects(NewBoundingBox(0, 20, 10, 10)))
}

func TestBoundingBoxSweep(t *testing.T) {
	b := NewBoundingBox(10, 10, 5, 5)

	assert.Equal(t, NewBoundingBox(10, 10, 25, 5), b.Sweep(20, 0))
	assert.Equal(t, NewBoundingBox(-10, 10, 25, 5), b.Sweep(-20, 0))
	assert.Equal(t, NewBoundingBox(10, 0, 5, 15), b.Sweep(0, -10))
}

func TestSweepAgainstTiles(t *testing.T) {
	tc := newMockTileChecker(10, 10)
	tc.block(3, 2)
	cs := NewCollisionSystem(tc, 32, 32)

	// Body at tile (1,2) heading east: the swept box reaches tile 3 only when
	// moving two tiles.
	assert.False(t, cs.SweepX(24, 24, 32, 32, 64))
	assert.True(t, cs.SweepX(24, 24, 64, 32, 64))
	assert.False(t, cs.SweepX(24, 24, 0, 32, 64), "zero move never collides")

	assert.True(t, cs.SweepY(24, 24, 32, 96, 32))
	assert.False(t, cs.SweepY(24, 24, -32, 96, 32))
}

func TestSweepOutOfBoundsBlocks(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(4, 4), 32, 32)

	assert.True(t, cs.SweepX(24, 24, -32, 0, 0))
	assert.True(t, cs.SweepY(24, 24, -1, 0, 0))
	assert.True(t, cs.SweepX(24, 24, 32, 96, 0))
	assert.False(t, cs.SweepX(24, 24, 8, 96, 0), "box ending on the map edge still fits")
}

func TestBlockedHalfOpenEdges(t *testing.T) {
	tc := newMockTileChecker(4, 4)
	tc.block(1, 0)
	cs := NewCollisionSystem(tc, 32, 32)

	assert.False(t, cs.Blocked(NewBoundingBox(0, 0, 32, 32)))
	assert.True(t, cs.Blocked(NewBoundingBox(0, 0, 32.5, 32)))
}

func TestCheckLineOfSight(t *testing.T) {
	tc := newMockTileChecker(10, 10)
	tc.block(5, 5)
	cs := NewCollisionSystem(tc, 32, 32)

	assert.True(t, cs.CheckLineOfSight(16, 16, 300, 16))
	assert.False(t, cs.CheckLineOfSight(16, 176, 300, 176))
	assert.False(t, cs.CheckLineOfSight(16, 16, 400, 16), "leaving the map blocks sight")
}
