package world

import (
	"errors"
	"fmt"

	"superduck/internal/ai"
	"superduck/internal/collision"
	"superduck/internal/config"
	"superduck/internal/logger"
	"superduck/internal/mathutil"
	"superduck/internal/mob"
	"superduck/internal/objective"
	"superduck/internal/powerup"
	"superduck/internal/threading/monitoring"

	"github.com/sirupsen/logrus"
)

// Input is one frame of player intent. MoveX and MoveY are in -1..1.
type Input struct {
	MoveX, MoveY float64
	Attack       bool
}

// Outcome is the state of a round.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// TuningFromConfig builds controller tuning from the mob_ai and world sections.
func TuningFromConfig(cfg *config.Config) ai.Tuning {
	return ai.Tuning{
		TileWidth:        cfg.GetTileWidth(),
		TileHeight:       cfg.GetTileHeight(),
		IterationLimit:   cfg.GetIterationLimit(),
		Rate:             cfg.GetPathfindingRate(),
		RateOffset:       cfg.GetPathfindingRateOffset(),
		AttackDelay:      cfg.GetAttackDelay(),
		ActivationRadius: cfg.GetActivationRadius(),
	}
}

// Round is one play-through of a map. It implements mob.Context.
type Round struct {
	cfg       *config.Config
	tileMap   *TileMap
	collision *collision.CollisionSystem
	player    *Player
	mobs      []*mob.Mob
	objective *objective.Objective
	powerups  *powerup.Manager
	floaties  FloatyNumbers
	rng       ai.Rand
	monitor   *monitoring.PerformanceMonitor

	dropTable    powerup.Table
	dropDuration float64
	elapsed      float64
}

// ErrNoMobs is returned for a map without mob spawns, which could never be won.
var ErrNoMobs = errors.New("map has no mob spawns")

// NewRound builds a round from loaded map data. rng and monitor may be nil.
func NewRound(cfg *config.Config, data *MapData, tiles *TileManager, mobs *mob.YAMLConfig, rng ai.Rand, monitor *monitoring.PerformanceMonitor) (*Round, error) {
	if len(data.MobSpawns) == 0 {
		return nil, fmt.Errorf("map %s: %w", data.Name, ErrNoMobs)
	}
	if rng == nil {
		rng = ai.NewRand(0)
	}
	tw, th := cfg.GetTileWidth(), cfg.GetTileHeight()
	tm := NewTileMap(data, tiles, tw, th)

	r := &Round{
		cfg:          cfg,
		tileMap:      tm,
		collision:    collision.NewCollisionSystem(tm, tw, th),
		powerups:     powerup.NewManager(cfg.GetPickupSize()),
		rng:          rng,
		monitor:      monitor,
		dropTable:    powerup.Table(cfg.GetPowerupBands()),
		dropDuration: cfg.GetPowerupDuration(),
	}

	pw, ph := cfg.GetPlayerBox()
	px, py := r.centeredIn(data.StartX, data.StartY, pw, ph)
	r.player = NewPlayer(px, py, pw, ph, cfg.GetPlayerSpeed(), cfg.GetPlayerMaxHealth())
	r.player.AttackRange = cfg.GetPlayerAttackRange()
	r.player.AttackCooldown = cfg.GetPlayerAttackCooldown()
	r.player.AttackDamage = cfg.GetPlayerAttackDamage()

	tuning := TuningFromConfig(cfg)
	hasBoss := false
	for _, spawn := range data.MobSpawns {
		m, err := mobs.Spawn(spawn.MobKey, 0, 0, tuning, rng)
		if err != nil {
			return nil, fmt.Errorf("spawning %s at %d,%d: %w", spawn.MobKey, spawn.TileX, spawn.TileY, err)
		}
		m.X, m.Y = r.centeredIn(spawn.TileX, spawn.TileY, m.Width, m.Height)
		if monitor != nil {
			m.Controller().SetObserver(monitor)
		}
		if m.Type == mob.TypeBoss {
			hasBoss = true
		}
		r.mobs = append(r.mobs, m)
	}

	if hasBoss {
		r.objective = objective.NewBoss()
	} else {
		r.objective = objective.NewKill(mathutil.IntMin(cfg.GetKillTarget(), len(r.mobs)))
	}

	logger.Log.WithFields(logrus.Fields{
		"map":       data.Name,
		"mobs":      len(r.mobs),
		"objective": r.objective.Type(),
	}).Info("round started")
	return r, nil
}

// centeredIn places a w×h body in the middle of a tile.
func (r *Round) centeredIn(tileX, tileY int, w, h float64) (float64, float64) {
	ox, oy := r.tileMap.TileOrigin(tileX, tileY)
	return ox + (float64(r.tileMap.TileWidth())-w)/2, oy + (float64(r.tileMap.TileHeight())-h)/2
}

// Update advances the round by delta seconds.
func (r *Round) Update(delta float64, in Input) {
	if r.Outcome() != Playing {
		return
	}
	r.elapsed += delta

	r.updatePlayer(delta, in)

	update := func() {
		for _, m := range r.mobs {
			m.Update(r, delta)
		}
	}
	if r.monitor != nil {
		r.monitor.ProfiledFunction("entity_update", update)
		r.monitor.RecordMobsUpdated(len(r.mobs))
	} else {
		update()
	}

	r.removeDeadMobs()

	minX, minY, maxX, maxY := r.player.Box().GetBounds()
	for _, kind := range r.powerups.Collect(minX, minY, maxX, maxY) {
		logger.Log.WithField("powerup", kind).Info("powerup collected")
	}
	r.powerups.Update(delta)
	r.floaties.Update(delta)
}

func (r *Round) updatePlayer(delta float64, in Input) {
	p := r.player
	p.tick(delta)

	speed := p.Speed
	if r.powerups.Active(powerup.SuperSpeed) {
		speed *= 2
	}
	p.Move(in.MoveX*speed*delta, in.MoveY*speed*delta, r.collision)

	if !in.Attack {
		return
	}
	cooldownScale := 1.0
	if r.powerups.Active(powerup.RateOfFire) {
		cooldownScale = 0.5
	}
	if !p.tryAttack(cooldownScale) {
		return
	}

	cx, cy := p.Center()
	for _, m := range r.mobs {
		if m.IsDead() {
			continue
		}
		mx, my := m.Center()
		if mathutil.Distance(cx, cy, mx, my) > p.AttackRange {
			continue
		}
		if !r.collision.CheckLineOfSight(cx, cy, mx, my) {
			continue
		}
		m.Damage(p.AttackDamage, r)
	}
}

func (r *Round) removeDeadMobs() {
	multiplier := 1
	if r.powerups.Active(powerup.ScoreMultiplier) {
		multiplier = 2
	}
	kept := r.mobs[:0]
	for _, m := range r.mobs {
		if m.DeathHandled() {
			r.player.Score += m.Score * multiplier
			continue
		}
		kept = append(kept, m)
	}
	for i := len(kept); i < len(r.mobs); i++ {
		r.mobs[i] = nil
	}
	r.mobs = kept
}

// ApplyAITuning pushes reloaded mob_ai values into every live controller.
func (r *Round) ApplyAITuning(cfg *config.Config) {
	r.cfg = cfg
	tuning := TuningFromConfig(cfg)
	for _, m := range r.mobs {
		m.Controller().Retune(tuning)
	}
	logger.Log.WithFields(logrus.Fields{
		"rate":              tuning.Rate,
		"iteration_limit":   tuning.IterationLimit,
		"activation_radius": tuning.ActivationRadius,
	}).Info("mob AI retuned")
}

// Outcome reports whether the round is still being played.
func (r *Round) Outcome() Outcome {
	if r.player.IsDead() {
		return Lost
	}
	if r.objective.Status() == objective.Complete {
		return Won
	}
	return Playing
}

func (r *Round) Player() *Player                        { return r.player }
func (r *Round) Mobs() []*mob.Mob                       { return r.mobs }
func (r *Round) TileMap() *TileMap                      { return r.tileMap }
func (r *Round) Collision() *collision.CollisionSystem  { return r.collision }
func (r *Round) Powerups() *powerup.Manager             { return r.powerups }
func (r *Round) Floaties() []FloatyNumber               { return r.floaties.All() }
func (r *Round) CurrentObjective() *objective.Objective { return r.objective }
func (r *Round) Elapsed() float64                       { return r.elapsed }

// mob.Context

func (r *Round) PlayerPosition() (float64, float64) {
	return r.player.X, r.player.Y
}

// DamagePlayer is ignored while the player is invulnerable.
func (r *Round) DamagePlayer(amount int) {
	if r.powerups.Active(powerup.Invulnerable) {
		return
	}
	if r.player.Damage(amount) {
		r.floaties.Add(amount, r.player.X, r.player.Y+r.player.Height)
	}
}

func (r *Round) Objective() mob.Objective { return r.objective }

func (r *Round) SpawnPowerup(x, y float64, kind powerup.Kind, duration float64) {
	r.powerups.Spawn(x, y, kind, duration)
	logger.Log.WithFields(logrus.Fields{"powerup": kind, "x": x, "y": y}).Debug("powerup dropped")
}

func (r *Round) ShowDamageNumber(amount int, x, y float64) {
	r.floaties.Add(amount, x, y)
}

func (r *Round) Geometry() mob.Geometry { return r.collision }

func (r *Round) Rand() ai.Rand { return r.rng }

func (r *Round) Drops() (powerup.Table, float64) {
	return r.dropTable, r.dropDuration
}
