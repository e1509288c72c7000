package mob

import (
	"math"
	"strconv"
	"sync/atomic"

	"superduck/internal/ai"
	"superduck/internal/logger"

	"github.com/sirupsen/logrus"
)

var nextMobID atomic.Int64

func generateUniqueMobID() string {
	return "mob_" + strconv.FormatInt(nextMobID.Add(1), 10)
}

// Mob is a hostile agent. Position is the bottom-left corner of its body.
type Mob struct {
	ID   string
	Key  string // mobs.yaml key
	Name string

	X, Y                 float64
	VelocityX, VelocityY float64
	Width, Height        float64

	CurrentHealth int
	MaximumHealth int
	Speed         float64
	Score         int
	Type          Type

	Facing    Facing
	StateTime float64 // seconds spent moving; resets when the mob stops

	LandSprite  string
	WaterSprite string

	collisionEnabled bool
	controller       *ai.Controller
	deathHandled     bool

	lastTarget     ai.Coordinate
	lastTargetSeen bool
}

// New creates a mob. Bosses ignore collision.
func New(x, y float64, health int, speed float64, score int, typ Type, controller *ai.Controller) *Mob {
	return &Mob{
		ID:               generateUniqueMobID(),
		X:                x,
		Y:                y,
		Width:            24,
		Height:           24,
		CurrentHealth:    health,
		MaximumHealth:    health,
		Speed:            speed,
		Score:            score,
		Type:             typ,
		collisionEnabled: typ != TypeBoss,
		controller:       controller,
	}
}

func (m *Mob) Controller() *ai.Controller { return m.controller }

// CollisionEnabled reports whether the mob is stopped by obstacles.
func (m *Mob) CollisionEnabled() bool { return m.collisionEnabled }

// IsDead reports whether health has run out.
func (m *Mob) IsDead() bool {
	return m.CurrentHealth <= 0
}

// DeathHandled reports whether the one-off death effects have fired; the
// owner removes the mob after this turns true.
func (m *Mob) DeathHandled() bool {
	return m.deathHandled
}

// Damage takes health off the mob and shows the number. Death is noticed on
// the next Update.
func (m *Mob) Damage(amount int, ctx Context) {
	m.CurrentHealth -= amount
	if ctx != nil {
		ctx.ShowDamageNumber(amount, m.X, m.Y)
	}
}

// Center returns the middle of the mob's body.
func (m *Mob) Center() (float64, float64) {
	return m.X + m.Width/2, m.Y + m.Height/2
}

// SetVelocity points the mob along (dirX, dirY) at its own speed.
func (m *Mob) SetVelocity(dirX, dirY float64) {
	if dirX == 0 && dirY == 0 {
		m.VelocityX, m.VelocityY = 0, 0
		return
	}
	magnitude := math.Hypot(dirX, dirY)
	m.VelocityX = dirX * m.Speed / magnitude
	m.VelocityY = dirY * m.Speed / magnitude
}

// LastTarget returns the most recent pathfinding step, for debug drawing.
func (m *Mob) LastTarget() (ai.Coordinate, bool) {
	return m.lastTarget, m.lastTargetSeen
}

// Update advances the mob by delta seconds.
func (m *Mob) Update(ctx Context, delta float64) {
	if m.deathHandled {
		return
	}

	geo := ctx.Geometry()

	if m.controller != nil {
		px, py := ctx.PlayerPosition()
		d := m.controller.Update(agent{m: m, geo: geo}, px, py, delta)
		if d.Steer {
			m.SetVelocity(d.VelocityX, d.VelocityY)
			m.lastTarget, m.lastTargetSeen = d.Target, d.TargetSeen
		}
		if d.Damage > 0 {
			ctx.DamagePlayer(d.Damage)
		}
	}

	if m.IsDead() {
		m.die(ctx)
		return
	}

	if m.VelocityX != 0 || m.VelocityY != 0 {
		m.StateTime += delta
	} else {
		m.StateTime = 0
	}

	m.move(geo, delta)
}

func (m *Mob) die(ctx Context) {
	m.deathHandled = true
	m.VelocityX, m.VelocityY = 0, 0

	table, duration := ctx.Drops()
	if kind, ok := table.Roll(ctx.Rand().Float64()); ok {
		ctx.SpawnPowerup(m.X, m.Y, kind, duration)
	}

	if m.Type == TypeBoss {
		if !ctx.Objective().CompleteBoss() {
			logger.Log.WithField("mob", m.ID).Warn("boss died but the round has no boss objective")
		}
	} else {
		ctx.Objective().RecordKill()
	}

	logger.Log.WithFields(logrus.Fields{
		"mob":  m.ID,
		"type": m.Type,
		"x":    m.X,
		"y":    m.Y,
	}).Debug("mob died")
}

// move applies velocity one axis at a time so a blocked axis does not stop
// sliding along the other.
func (m *Mob) move(geo Geometry, delta float64) {
	dx := m.VelocityX * delta
	dy := m.VelocityY * delta

	if !m.collidesAlongX(geo, dx, m.X, m.Y) {
		m.X += dx
	}
	if !m.collidesAlongY(geo, dy, m.X, m.Y) {
		m.Y += dy
	}
	m.Facing = facingFor(m.VelocityX, m.VelocityY, m.Facing)
}

func (m *Mob) collidesAlongX(geo Geometry, dx, atX, atY float64) bool {
	if !m.collisionEnabled || geo == nil {
		return false
	}
	return geo.SweepX(m.Width, m.Height, dx, atX, atY)
}

func (m *Mob) collidesAlongY(geo Geometry, dy, atX, atY float64) bool {
	if !m.collisionEnabled || geo == nil {
		return false
	}
	return geo.SweepY(m.Width, m.Height, dy, atX, atY)
}

// agent adapts a mob and the round geometry to the controller's view.
type agent struct {
	m   *Mob
	geo Geometry
}

func (a agent) Position() (float64, float64) { return a.m.X, a.m.Y }

func (a agent) Speed() float64 { return a.m.Speed }

func (a agent) CollidesAlongX(dx, atX, atY float64) bool {
	return a.m.collidesAlongX(a.geo, dx, atX, atY)
}

func (a agent) CollidesAlongY(dy, atX, atY float64) bool {
	return a.m.collidesAlongY(a.geo, dy, atX, atY)
}
