package ai

import "container/heap"

type frontierItem struct {
	coord Coordinate
	dist  float64
}

// frontier is a min-heap on distance to a reference point fixed for one search.
type frontier struct {
	items      []frontierItem
	refX, refY float64
}

func (f *frontier) Len() int           { return len(f.items) }
func (f *frontier) Less(i, j int) bool { return f.items[i].dist < f.items[j].dist }
func (f *frontier) Swap(i, j int)      { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]
	return item
}

func (f *frontier) reset(refX, refY float64) {
	f.items = f.items[:0]
	f.refX, f.refY = refX, refY
}

func (f *frontier) push(c Coordinate) {
	heap.Push(f, frontierItem{coord: c, dist: c.DistanceTo(f.refX, f.refY)})
}

func (f *frontier) pop() Coordinate {
	return heap.Pop(f).(frontierItem).coord
}
