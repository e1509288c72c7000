// Package powerup holds the timed power-ups mobs drop on death.
package powerup

import (
	"fmt"
	"math"
)

// Kind is a power-up effect.
type Kind int

const (
	ScoreMultiplier Kind = iota
	Invulnerable
	SuperSpeed
	RateOfFire
	kindCount
)

func (k Kind) String() string {
	switch k {
	case ScoreMultiplier:
		return "SCORE_MULTIPLIER"
	case Invulnerable:
		return "INVULNERABLE"
	case SuperSpeed:
		return "SUPER_SPEED"
	case RateOfFire:
		return "RATE_OF_FIRE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Table holds the width of each drop band on [0, 1), in Kind order.
type Table [kindCount]float64

// DefaultTable is four 5% bands: [0,.05) score, [.05,.10) invulnerable,
// [.10,.15) speed, [.15,.20) rate of fire.
func DefaultTable() Table {
	return Table{0.05, 0.05, 0.05, 0.05}
}

// Roll maps a uniform value in [0, 1) to a drop. ok is false when r falls
// past the last band.
func (t Table) Roll(r float64) (kind Kind, ok bool) {
	upper := 0.0
	for i, width := range t {
		// Rounded so that 0.05+0.05+0.05 is exactly the 0.15 boundary.
		upper = math.Round((upper+width)*1e9) / 1e9
		if r < upper {
			return Kind(i), true
		}
	}
	return 0, false
}
