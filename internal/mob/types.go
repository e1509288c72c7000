package mob

import (
	"fmt"
	"math"
	"strings"
)

// Type is a mob's combat role.
type Type int

const (
	TypeMelee Type = iota
	TypeRanged
	TypeBoss
)

func (t Type) String() string {
	switch t {
	case TypeMelee:
		return "MELEE"
	case TypeRanged:
		return "RANGED"
	case TypeBoss:
		return "BOSS"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a YAML type name to a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "melee":
		return TypeMelee, nil
	case "ranged":
		return TypeRanged, nil
	case "boss":
		return TypeBoss, nil
	default:
		return TypeMelee, fmt.Errorf("unknown mob type %q", name)
	}
}

// Facing picks which side of the sprite sheet to draw.
type Facing int

const (
	FacingFront Facing = iota
	FacingBack
	FacingLeft
	FacingRight
)

func facingFor(vx, vy float64, current Facing) Facing {
	switch {
	case vx == 0 && vy == 0:
		return current
	case abs(vx) > abs(vy) && vx > 0:
		return FacingRight
	case abs(vx) > abs(vy):
		return FacingLeft
	case vy > 0:
		return FacingBack
	default:
		return FacingFront
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Swimming reports whether the mob shows its swimming look on water.
// Bosses always walk.
func (m *Mob) Swimming(onWater bool) bool {
	return onWater && m.Type != TypeBoss
}

// SpriteName picks the sprite for the mob's current surface. Mobs without
// a water sprite keep the land one.
func (m *Mob) SpriteName(onWater bool) string {
	if m.Swimming(onWater) && m.WaterSprite != "" {
		return m.WaterSprite
	}
	return m.LandSprite
}

// HealthFraction returns the share of health left, clamped at zero. ok is
// false when the mob is unhurt and no bar should be drawn.
func (m *Mob) HealthFraction() (frac float64, ok bool) {
	if m.CurrentHealth >= m.MaximumHealth || m.MaximumHealth <= 0 {
		return 0, false
	}
	return math.Max(0, float64(m.CurrentHealth)) / float64(m.MaximumHealth), true
}
