package ai

import (
	"fmt"
	"math"
	"strings"
	"time"

	"superduck/internal/mathutil"
)

// Kind selects a controller behaviour.
type Kind int

const (
	// KindDummy never moves and never attacks.
	KindDummy Kind = iota
	// KindPursueMelee paths toward the player on a throttled cadence and hits in melee range.
	KindPursueMelee
)

func (k Kind) String() string {
	switch k {
	case KindDummy:
		return "dummy"
	case KindPursueMelee:
		return "pursue_melee"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a YAML ai name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dummy", "idle", "":
		return KindDummy, nil
	case "pursue_melee", "zombie", "melee":
		return KindPursueMelee, nil
	default:
		return KindDummy, fmt.Errorf("unknown ai kind %q", name)
	}
}

// Tuning holds the shared pursuit parameters. Times are seconds, distances pixels.
type Tuning struct {
	TileWidth        int
	TileHeight       int
	IterationLimit   int
	Rate             float64
	RateOffset       float64
	AttackDelay      float64
	ActivationRadius float64
}

// DefaultTuning matches the stock config.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		TileWidth:        32,
		TileHeight:       32,
		IterationLimit:   30,
		Rate:             1.0,
		RateOffset:       0.05,
		AttackDelay:      1.0,
		ActivationRadius: 320,
	}
}

// Agent is the steering view of a mob.
type Agent interface {
	Walker
	Speed() float64
}

// SearchObserver receives one call per pathfinding search.
type SearchObserver interface {
	ObserveSearch(expanded int, found bool, elapsed time.Duration)
}

// Decision is the outcome of one controller update. Velocity applies only when
// Steer is set; Damage is the melee damage to deal to the player this frame.
type Decision struct {
	Steer      bool
	VelocityX  float64
	VelocityY  float64
	Damage     int
	Target     Coordinate
	TargetSeen bool
}

// Controller is one mob's AI state.
type Controller struct {
	kind        Kind
	tuning      Tuning
	attackRange float64
	pathfinder  *Pathfinder
	rng         Rand
	observer    SearchObserver

	playerX, playerY float64
	deltaOffsetLimit float64
	currentOffset    float64
	attackTimer      float64
}

// NewController creates a controller. rng may be nil to use the global source.
func NewController(kind Kind, tuning Tuning, attackRange float64, rng Rand) *Controller {
	return &Controller{
		kind:        kind,
		tuning:      tuning,
		attackRange: attackRange,
		pathfinder:  NewPathfinder(tuning.TileWidth, tuning.TileHeight, tuning.IterationLimit),
		rng:         rng,
	}
}

// SetObserver attaches a search observer, e.g. the performance monitor.
func (c *Controller) SetObserver(o SearchObserver) {
	c.observer = o
}

// Retune swaps the shared parameters without touching the timers.
func (c *Controller) Retune(t Tuning) {
	c.tuning = t
	c.pathfinder.TileWidth = t.TileWidth
	c.pathfinder.TileHeight = t.TileHeight
	c.pathfinder.IterationLimit = t.IterationLimit
}

func (c *Controller) Kind() Kind { return c.kind }

func (c *Controller) AttackTimer() float64 { return c.attackTimer }

func (c *Controller) AttackRange() float64 { return c.attackRange }

// Pathfinder exposes the search state for debug overlays.
func (c *Controller) Pathfinder() *Pathfinder { return c.pathfinder }

// Update advances the controller by delta seconds given the player's position.
func (c *Controller) Update(a Agent, playerX, playerY, delta float64) Decision {
	switch c.kind {
	case KindPursueMelee:
		return c.updatePursueMelee(a, playerX, playerY, delta)
	default:
		c.playerX, c.playerY = playerX, playerY
		return Decision{}
	}
}

func (c *Controller) updatePursueMelee(a Agent, playerX, playerY, delta float64) Decision {
	var d Decision

	c.playerX, c.playerY = playerX, playerY
	mx, my := a.Position()
	dist := mathutil.Distance(mx, my, c.playerX, c.playerY)

	c.currentOffset += delta
	if c.currentOffset >= c.deltaOffsetLimit && dist < c.tuning.ActivationRadius {
		c.deltaOffsetLimit = c.tuning.Rate + randomFloat(c.rng)*c.tuning.RateOffset
		c.currentOffset = 0

		started := time.Now()
		target, found := c.pathfinder.FindNextStep(a, c.playerX, c.playerY)
		if c.observer != nil {
			c.observer.ObserveSearch(c.pathfinder.Expanded(), found, time.Since(started))
		}

		d.Steer = true
		d.Target, d.TargetSeen = target, found
		// Whole-pixel direction: a missed search returns the truncated start, which
		// must come out as a zero vector rather than a sub-pixel nudge.
		dx := math.Trunc(float64(target.X) - mx)
		dy := math.Trunc(float64(target.Y) - my)
		d.VelocityX, d.VelocityY = steer(dx, dy, a.Speed())
	}

	if dist < c.attackRange && c.attackTimer <= 0 {
		d.Damage = 1
		c.attackTimer = c.tuning.AttackDelay
	} else if c.attackTimer > 0 {
		c.attackTimer -= delta
	}

	return d
}

// steer scales (dx, dy) to the given speed; a zero vector yields zero velocity.
func steer(dx, dy, speed float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return dx / length * speed, dy / length * speed
}
