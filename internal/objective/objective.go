// Package objective tracks what the player must do to clear a round.
package objective

import (
	"fmt"

	"superduck/internal/threading/core"
)

// Type is the kind of objective a round has.
type Type int

const (
	// Kill requires a number of non-boss kills.
	Kill Type = iota
	// Boss requires the boss to die.
	Boss
)

func (t Type) String() string {
	switch t {
	case Kill:
		return "KILL"
	case Boss:
		return "BOSS"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Status is the progress of an objective.
type Status int

const (
	Ongoing Status = iota
	Complete
)

// Objective is the active goal of a round.
type Objective struct {
	typ       Type
	target    int
	remaining *core.SafeCounter
	completed *core.SafeCounter
}

// NewKill creates a kill objective for n kills.
func NewKill(n int) *Objective {
	if n < 1 {
		n = 1
	}
	return &Objective{
		typ:       Kill,
		target:    n,
		remaining: core.NewSafeCounter(int64(n)),
		completed: core.NewSafeCounter(0),
	}
}

// NewBoss creates a boss objective.
func NewBoss() *Objective {
	return &Objective{
		typ:       Boss,
		remaining: core.NewSafeCounter(0),
		completed: core.NewSafeCounter(0),
	}
}

func (o *Objective) Type() Type { return o.typ }

// RecordKill counts a non-boss kill. It only affects kill objectives.
func (o *Objective) RecordKill() {
	if o.typ != Kill {
		return
	}
	if left, ok := o.remaining.SubtractFloor(1, 0); ok && left == 0 {
		o.completed.Set(1)
	}
}

// CompleteBoss marks a boss objective complete. It reports false for any
// other objective type.
func (o *Objective) CompleteBoss() bool {
	if o.typ != Boss {
		return false
	}
	o.completed.Set(1)
	return true
}

// Remaining returns the kills still needed; zero for boss objectives.
func (o *Objective) Remaining() int {
	return int(o.remaining.Get())
}

func (o *Objective) Status() Status {
	if o.completed.Get() == 1 {
		return Complete
	}
	return Ongoing
}

// Describe returns the HUD line for the objective.
func (o *Objective) Describe() string {
	if o.Status() == Complete {
		return "Objective complete!"
	}
	switch o.typ {
	case Kill:
		return fmt.Sprintf("Kill %d more (%d/%d)", o.Remaining(), o.target-o.Remaining(), o.target)
	case Boss:
		return "Defeat the boss"
	default:
		return ""
	}
}
