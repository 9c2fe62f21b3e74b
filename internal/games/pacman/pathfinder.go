package pacman

import (
	"container/heap"
	"math"
	"slices"
)

// openItem is an entry in the open set. Stale entries (a node reached again
// with a lower cost, or already expanded) are skipped when popped.
type openItem struct {
	node int
	f    float64
	seq  int // insertion order; earlier wins ties
}

type openSet []openItem

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x any) { *o = append(*o, x.(openItem)) }

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}

// PathFinder runs best-first searches over a TileGraph.
// The scratch buffers are reused but reset at the start of every search,
// so one finder may serve every pursuer in turn.
type PathFinder struct {
	graph *TileGraph

	closed []bool
	g      []float64
	parent []int
	open   openSet
	seq    int
}

// NewPathFinder creates a finder for g.
func NewPathFinder(g *TileGraph) *PathFinder {
	return &PathFinder{graph: g}
}

func (pf *PathFinder) reset() {
	n := pf.graph.Len()
	if cap(pf.closed) < n {
		pf.closed = make([]bool, n)
		pf.g = make([]float64, n)
		pf.parent = make([]int, n)
	}
	pf.closed = pf.closed[:n]
	pf.g = pf.g[:n]
	pf.parent = pf.parent[:n]
	for i := range n {
		pf.closed[i] = false
		pf.g[i] = math.Inf(1)
		pf.parent[i] = -1
	}
	pf.open = pf.open[:0]
	pf.seq = 0
}

func (pf *PathFinder) push(node int, f float64) {
	heap.Push(&pf.open, openItem{node: node, f: f, seq: pf.seq})
	pf.seq++
}

// heuristic is the straight-line distance between two tiles.
func heuristic(a, b Tile) float64 {
	return math.Hypot(float64(a.Col-b.Col), float64(a.Row-b.Row))
}

// FindPath returns the shortest walkable path from start to target, both
// inclusive. It returns [start] when start == target and an empty slice when
// either end is not walkable or no path exists. It never returns nil.
func (pf *PathFinder) FindPath(start, target Tile) []Tile {
	g := pf.graph
	if !g.IsWalkable(start) || !g.IsWalkable(target) {
		return []Tile{}
	}
	if start == target {
		return []Tile{start}
	}

	pf.reset()
	s, t := g.Index(start), g.Index(target)
	pf.g[s] = 0
	pf.push(s, heuristic(start, target))

	found := false
	for pf.open.Len() > 0 {
		cur := heap.Pop(&pf.open).(openItem)
		if pf.closed[cur.node] {
			continue
		}
		pf.closed[cur.node] = true
		if cur.node == t {
			found = true
			break
		}

		for _, next := range g.nodes[cur.node].edges {
			if pf.closed[next] || g.nodes[next].obstacle {
				continue
			}
			cost := pf.g[cur.node] + 1
			if cost < pf.g[next] {
				pf.g[next] = cost
				pf.parent[next] = cur.node
				pf.push(next, cost+heuristic(g.nodes[next].tile, target))
			}
		}
	}

	if !found {
		return []Tile{}
	}

	var path []Tile
	for n := t; n != -1; n = pf.parent[n] {
		path = append(path, g.nodes[n].tile)
	}
	slices.Reverse(path)
	return path
}
