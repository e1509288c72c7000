package mob

import (
	"superduck/internal/ai"
	"superduck/internal/collision"
	"superduck/internal/powerup"
)

type tileGrid struct {
	width, height int
	blocked       map[[2]int]bool
}

func (g *tileGrid) IsTileBlocking(tileX, tileY int) bool { return g.blocked[[2]int{tileX, tileY}] }

func (g *tileGrid) GetWorldBounds() (int, int) { return g.width, g.height }

type spawnedPowerup struct {
	x, y     float64
	kind     powerup.Kind
	duration float64
}

type damageNumber struct {
	amount int
	x, y   float64
}

type fakeObjective struct {
	kills      int
	bossCalls  int
	bossResult bool
}

func (o *fakeObjective) RecordKill() { o.kills++ }

func (o *fakeObjective) CompleteBoss() bool {
	o.bossCalls++
	return o.bossResult
}

type fixedRand struct{ value float64 }

func (r fixedRand) Float64() float64 { return r.value }

// fakeContext records every side effect a mob asks for.
type fakeContext struct {
	playerX, playerY float64
	playerDamage     int
	objective        *fakeObjective
	powerups         []spawnedPowerup
	numbers          []damageNumber
	grid             *tileGrid
	geometry         *collision.CollisionSystem
	rng              ai.Rand
}

func newFakeContext() *fakeContext {
	grid := &tileGrid{width: 20, height: 20, blocked: make(map[[2]int]bool)}
	return &fakeContext{
		playerX:   500,
		playerY:   500,
		objective: &fakeObjective{},
		grid:      grid,
		geometry:  collision.NewCollisionSystem(grid, 32, 32),
		rng:       fixedRand{value: 0.9},
	}
}

func (c *fakeContext) block(tx, ty int) { c.grid.blocked[[2]int{tx, ty}] = true }

func (c *fakeContext) PlayerPosition() (float64, float64) { return c.playerX, c.playerY }

func (c *fakeContext) DamagePlayer(amount int) { c.playerDamage += amount }

func (c *fakeContext) Objective() Objective { return c.objective }

func (c *fakeContext) SpawnPowerup(x, y float64, kind powerup.Kind, duration float64) {
	c.powerups = append(c.powerups, spawnedPowerup{x, y, kind, duration})
}

func (c *fakeContext) ShowDamageNumber(amount int, x, y float64) {
	c.numbers = append(c.numbers, damageNumber{amount, x, y})
}

func (c *fakeContext) Geometry() Geometry { return c.geometry }

func (c *fakeContext) Rand() ai.Rand { return c.rng }

func (c *fakeContext) Drops() (powerup.Table, float64) { return powerup.DefaultTable(), 10 }
