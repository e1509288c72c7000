package ai

// Collider answers axis-aligned sweep queries for one agent's body. A step
// from (atX, atY) by dx or dy collides when the swept body overlaps an obstacle.
type Collider interface {
	CollidesAlongX(dx, atX, atY float64) bool
	CollidesAlongY(dy, atX, atY float64) bool
}

// Walker is anything the pathfinder can plan for.
type Walker interface {
	Collider
	Position() (x, y float64)
}

type step struct {
	dx, dy int
}

// Pathfinder runs a budgeted best-first search that yields only the next
// tile-sized step toward the player. It is greedy by construction: the
// frontier is ordered purely by straight-line distance to the player and
// nodes at the iteration limit are dropped rather than expanded.
//
// A Pathfinder reuses its buffers between calls and must not be shared
// between agents.
type Pathfinder struct {
	TileWidth      int
	TileHeight     int
	IterationLimit int

	frontier frontier
	ledger   ledger
	expanded int
}

// NewPathfinder creates a pathfinder for the given tile size.
func NewPathfinder(tileWidth, tileHeight, iterationLimit int) *Pathfinder {
	return &Pathfinder{
		TileWidth:      tileWidth,
		TileHeight:     tileHeight,
		IterationLimit: iterationLimit,
	}
}

// neighbors returns the step offsets in N, E, S, W order. North is +y.
func (p *Pathfinder) neighbors() [4]step {
	return [4]step{
		{0, p.TileHeight},
		{p.TileWidth, 0},
		{0, -p.TileHeight},
		{-p.TileWidth, 0},
	}
}

// Expanded returns how many nodes the last search expanded.
func (p *Pathfinder) Expanded() int {
	return p.expanded
}

// Visited returns how many coordinates the last search recorded.
func (p *Pathfinder) Visited() int {
	return p.ledger.size()
}

// FindNextStep returns the coordinate the walker should head for next, and
// whether the player's tile was reached within the budget. When it was not,
// the walker's own (truncated) position is returned.
func (p *Pathfinder) FindNextStep(w Walker, playerX, playerY float64) (Coordinate, bool) {
	mx, my := w.Position()
	start := Coordinate{X: int(mx), Y: int(my)}
	target := Coordinate{X: int(playerX), Y: int(playerY)}

	p.ledger.reset()
	p.frontier.reset(playerX, playerY)
	p.expanded = 0

	p.ledger.record(start, noPredecessor, 0)
	p.frontier.push(start)

	var goal Coordinate
	found := false
	for !found && p.frontier.Len() > 0 {
		cur := p.frontier.pop()
		curID, _ := p.ledger.lookup(cur)
		curNode := p.ledger.node(curID)
		if curNode.iteration >= p.IterationLimit {
			continue
		}
		p.expanded++

		atX, atY := float64(cur.X), float64(cur.Y)
		for _, s := range p.neighbors() {
			next := Coordinate{X: cur.X + s.dx, Y: cur.Y + s.dy}

			_, seen := p.ledger.lookup(next)
			blocked := w.CollidesAlongX(float64(s.dx), atX, atY) ||
				w.CollidesAlongY(float64(s.dy), atX, atY)
			if !blocked && !seen {
				p.frontier.push(next)
				p.ledger.record(next, curID, curNode.iteration+1)
			}

			// The goal test ignores the collision result, so a player standing
			// behind a wall still ends the search.
			if next.InSameTile(target, p.TileWidth, p.TileHeight) {
				p.ledger.record(next, curID, curNode.iteration+1)
				goal = next
				found = true
				break
			}
		}
	}

	if !found {
		return start, false
	}
	return p.firstStep(start, goal), true
}

// firstStep walks back from goal to start and returns the coordinate of the
// node one step out from start.
func (p *Pathfinder) firstStep(start, goal Coordinate) Coordinate {
	startID, _ := p.ledger.lookup(start)
	goalID, _ := p.ledger.lookup(goal)

	path := []nodeID{goalID}
	for last := goalID; last != startID; {
		pred := p.ledger.node(last).predecessor
		if pred == noPredecessor {
			return start
		}
		path = append(path, pred)
		last = pred
	}

	result := path[len(path)-1]
	if len(path) > 1 {
		result = path[len(path)-2]
	}
	if c, ok := p.ledger.coordinateOf(result); ok {
		return c
	}
	return start
}
