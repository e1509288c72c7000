package world

import (
	"superduck/internal/collision"
	"superduck/internal/threading/core"
)

// Player is the duck the mobs chase. Position is the bottom-left corner.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	MaxHealth     int
	Score         int

	AttackRange    float64
	AttackCooldown float64
	AttackDamage   int

	health      *core.SafeCounter
	attackTimer float64
	hurtTimer   float64
}

// NewPlayer creates a player at (x, y) with full health.
func NewPlayer(x, y, w, h, speed float64, maxHealth int) *Player {
	return &Player{
		X: x, Y: y,
		Width: w, Height: h,
		Speed:     speed,
		MaxHealth: maxHealth,
		health:    core.NewSafeCounter(int64(maxHealth)),
	}
}

func (p *Player) Health() int {
	return int(p.health.Get())
}

func (p *Player) IsDead() bool {
	return p.Health() <= 0
}

// Damage takes n health off in a single atomic step. It reports whether any
// health was lost.
func (p *Player) Damage(n int) bool {
	if n <= 0 {
		return false
	}
	_, hit := p.health.SubtractFloor(int64(n), 0)
	if hit {
		p.hurtTimer = 0.3
	}
	return hit
}

// Hurt reports whether the player was hit very recently, for flashing.
func (p *Player) Hurt() bool {
	return p.hurtTimer > 0
}

// Box returns the player's collision box.
func (p *Player) Box() collision.BoundingBox {
	return collision.NewBoundingBox(p.X, p.Y, p.Width, p.Height)
}

// Center returns the middle of the player's body.
func (p *Player) Center() (float64, float64) {
	return p.Box().Center()
}

// Move steps the player by (dx, dy), one axis at a time, stopping on any
// axis that would collide.
func (p *Player) Move(dx, dy float64, cs *collision.CollisionSystem) {
	if !cs.SweepX(p.Width, p.Height, dx, p.X, p.Y) {
		p.X += dx
	}
	if !cs.SweepY(p.Width, p.Height, dy, p.X, p.Y) {
		p.Y += dy
	}
}

// tick advances the player's timers.
func (p *Player) tick(delta float64) {
	if p.attackTimer > 0 {
		p.attackTimer -= delta
	}
	if p.hurtTimer > 0 {
		p.hurtTimer -= delta
	}
}

// tryAttack starts an attack if the cooldown allows, scaling the cooldown by
// cooldownScale.
func (p *Player) tryAttack(cooldownScale float64) bool {
	if p.attackTimer > 0 {
		return false
	}
	p.attackTimer = p.AttackCooldown * cooldownScale
	return true
}
