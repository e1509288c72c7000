package ai

import (
	"math"
	"time"
)

// gridWalker is a body on a tile grid with a set of blocked tiles. The grid is
// unbounded; blocked tiles are the only obstacles.
type gridWalker struct {
	x, y          float64
	w, h          float64
	speed         float64
	tileW, tileH  float64
	blocked       map[[2]int]bool
	noCollision   bool
	collisionCall int
}

func newGridWalker(x, y float64) *gridWalker {
	return &gridWalker{
		x: x, y: y,
		w: 24, h: 24,
		speed: 100,
		tileW: 32, tileH: 32,
		blocked: make(map[[2]int]bool),
	}
}

func (g *gridWalker) BlockTile(tx, ty int) {
	g.blocked[[2]int{tx, ty}] = true
}

func (g *gridWalker) Position() (float64, float64) { return g.x, g.y }

func (g *gridWalker) Speed() float64 { return g.speed }

func (g *gridWalker) CollidesAlongX(dx, atX, atY float64) bool {
	g.collisionCall++
	if g.noCollision || dx == 0 {
		return false
	}
	return g.overlapsBlocked(math.Min(atX, atX+dx), atY, math.Max(atX, atX+dx)+g.w, atY+g.h)
}

func (g *gridWalker) CollidesAlongY(dy, atX, atY float64) bool {
	g.collisionCall++
	if g.noCollision || dy == 0 {
		return false
	}
	return g.overlapsBlocked(atX, math.Min(atY, atY+dy), atX+g.w, math.Max(atY, atY+dy)+g.h)
}

func (g *gridWalker) overlapsBlocked(minX, minY, maxX, maxY float64) bool {
	for tx := int(math.Floor(minX / g.tileW)); float64(tx)*g.tileW < maxX; tx++ {
		for ty := int(math.Floor(minY / g.tileH)); float64(ty)*g.tileH < maxY; ty++ {
			if g.blocked[[2]int{tx, ty}] {
				return true
			}
		}
	}
	return false
}

// seqRand returns its values in order, repeating the last one.
type seqRand struct {
	values []float64
	calls  int
}

func (s *seqRand) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i]
}

type countingObserver struct {
	searches int
	misses   int
	expanded int
}

func (o *countingObserver) ObserveSearch(expanded int, found bool, _ time.Duration) {
	o.searches++
	o.expanded += expanded
	if !found {
		o.misses++
	}
}
