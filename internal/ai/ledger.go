package ai

type nodeID int32

const noPredecessor nodeID = -1

type searchNode struct {
	coord       Coordinate
	predecessor nodeID
	iteration   int
}

// ledger maps visited coordinates to search nodes stored in an arena. Nodes are
// never freed during a search; re-recording a coordinate points its key at a
// fresh node and orphans the old one.
type ledger struct {
	nodes []searchNode
	index map[Coordinate]nodeID
}

func (l *ledger) reset() {
	l.nodes = l.nodes[:0]
	if l.index == nil {
		l.index = make(map[Coordinate]nodeID)
		return
	}
	clear(l.index)
}

func (l *ledger) record(c Coordinate, predecessor nodeID, iteration int) nodeID {
	id := nodeID(len(l.nodes))
	l.nodes = append(l.nodes, searchNode{coord: c, predecessor: predecessor, iteration: iteration})
	l.index[c] = id
	return id
}

func (l *ledger) lookup(c Coordinate) (nodeID, bool) {
	id, ok := l.index[c]
	return id, ok
}

func (l *ledger) node(id nodeID) searchNode {
	return l.nodes[id]
}

// coordinateOf is the reverse lookup: it succeeds only if some key still maps to id.
func (l *ledger) coordinateOf(id nodeID) (Coordinate, bool) {
	if id < 0 || int(id) >= len(l.nodes) {
		return Coordinate{}, false
	}
	c := l.nodes[id].coord
	if current, ok := l.index[c]; ok && current == id {
		return c, true
	}
	return Coordinate{}, false
}

func (l *ledger) size() int {
	return len(l.index)
}
