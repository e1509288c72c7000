package mob

import (
	"superduck/internal/ai"
	"superduck/internal/powerup"
)

// Geometry answers sweep queries for a w×h body.
type Geometry interface {
	SweepX(w, h, dx, atX, atY float64) bool
	SweepY(w, h, dy, atX, atY float64) bool
}

// Objective is the part of the round objective a mob's death can affect.
type Objective interface {
	RecordKill()
	CompleteBoss() bool
}

// Context is everything a mob reads or mutates outside itself during an
// update. The round implements it; tests substitute fakes.
type Context interface {
	PlayerPosition() (x, y float64)
	DamagePlayer(amount int)
	Objective() Objective
	SpawnPowerup(x, y float64, kind powerup.Kind, duration float64)
	ShowDamageNumber(amount int, x, y float64)
	Geometry() Geometry
	Rand() ai.Rand
	// Drops returns the powerup drop bands and the duration of a dropped powerup.
	Drops() (powerup.Table, float64)
}
