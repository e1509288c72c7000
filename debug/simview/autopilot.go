package main

import (
	"math"

	"superduck/internal/mathutil"
	"superduck/internal/world"
)

// autopilot steers the player at the nearest live mob and swings whenever
// one is inside attack range.
func autopilot(r *world.Round) world.Input {
	p := r.Player()
	px, py := p.Center()

	best := math.Inf(1)
	var tx, ty float64
	for _, m := range r.Mobs() {
		if m.IsDead() {
			continue
		}
		mx, my := m.Center()
		if d := mathutil.Distance(px, py, mx, my); d < best {
			best, tx, ty = d, mx, my
		}
	}
	if math.IsInf(best, 1) {
		return world.Input{}
	}

	in := world.Input{Attack: best <= p.AttackRange}
	if best > p.AttackRange/2 {
		in.MoveX = (tx - px) / best
		in.MoveY = (ty - py) / best
	}
	return in
}
