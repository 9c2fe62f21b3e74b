package pacman

import (
	"math"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Tile is an integer grid coordinate.
type Tile struct {
	Col, Row int
}

// Step returns the tile n steps away in direction d.
func (t Tile) Step(d Direction, n int) Tile {
	dc, dr := d.Delta()
	return Tile{Col: t.Col + dc*n, Row: t.Row + dr*n}
}

// Manhattan returns the grid-step distance between t and o.
func (t Tile) Manhattan(o Tile) int {
	return core.Abs(t.Col-o.Col) + core.Abs(t.Row-o.Row)
}

// Center returns the world-space center of the tile.
func (t Tile) Center(tileSize float64) core.Vec2 {
	return core.V((float64(t.Col)+0.5)*tileSize, (float64(t.Row)+0.5)*tileSize)
}

// TileAt returns the tile containing a world-space position.
func TileAt(pos core.Vec2, tileSize float64) Tile {
	return Tile{
		Col: int(math.Floor(pos.X / tileSize)),
		Row: int(math.Floor(pos.Y / tileSize)),
	}
}

// neighborOrder is the fixed enumeration order used for every tie-break.
var neighborOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

type node struct {
	tile     Tile
	obstacle bool
	edges    []int // indices of in-bounds orthogonal neighbors, in neighborOrder
}

// TileGraph is a 4-connected graph over the level grid.
// Edges are fixed at construction; only the obstacle flags change afterwards.
type TileGraph struct {
	cols, rows int
	nodes      []node
}

// NewTileGraph builds the graph for a level.
func NewTileGraph(l *Level) *TileGraph {
	g := &TileGraph{
		cols:  l.Cols,
		rows:  l.Rows,
		nodes: make([]node, l.Cols*l.Rows),
	}
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			t := Tile{Col: col, Row: row}
			n := &g.nodes[g.Index(t)]
			n.tile = t
			n.obstacle = l.IsObstacle(col, row)
			n.edges = make([]int, 0, len(neighborOrder))
			for _, d := range neighborOrder {
				if nt := t.Step(d, 1); g.InBounds(nt) {
					n.edges = append(n.edges, g.Index(nt))
				}
			}
		}
	}
	return g
}

// Cols returns the grid width.
func (g *TileGraph) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *TileGraph) Rows() int { return g.rows }

// Len returns the number of nodes.
func (g *TileGraph) Len() int { return len(g.nodes) }

// InBounds reports whether t lies on the grid.
func (g *TileGraph) InBounds(t Tile) bool {
	return t.Col >= 0 && t.Row >= 0 && t.Col < g.cols && t.Row < g.rows
}

// Index returns the row-major node index of an in-bounds tile.
func (g *TileGraph) Index(t Tile) int {
	return t.Row*g.cols + t.Col
}

// IsWalkable reports whether t is on the grid and not an obstacle.
func (g *TileGraph) IsWalkable(t Tile) bool {
	return g.InBounds(t) && !g.nodes[g.Index(t)].obstacle
}

// Neighbors returns the in-bounds orthogonal neighbors of t in the order
// up, down, left, right. Obstacles are included; callers filter with IsWalkable.
func (g *TileGraph) Neighbors(t Tile) []Tile {
	if !g.InBounds(t) {
		return nil
	}
	edges := g.nodes[g.Index(t)].edges
	out := make([]Tile, len(edges))
	for i, e := range edges {
		out[i] = g.nodes[e].tile
	}
	return out
}

// SetObstacle changes a tile's walkability. Out-of-bounds tiles are ignored.
func (g *TileGraph) SetObstacle(t Tile, obstacle bool) {
	if g.InBounds(t) {
		g.nodes[g.Index(t)].obstacle = obstacle
	}
}

// Clamp returns the nearest in-bounds tile.
func (g *TileGraph) Clamp(t Tile) Tile {
	return Tile{
		Col: core.Clamp(t.Col, 0, g.cols-1),
		Row: core.Clamp(t.Row, 0, g.rows-1),
	}
}

// Wrap folds the column into range, for agents that tunnel horizontally.
func (g *TileGraph) Wrap(t Tile) Tile {
	t.Col = ((t.Col % g.cols) + g.cols) % g.cols
	return t
}
