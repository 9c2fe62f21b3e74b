package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

func TestTileGraphNeighborsOrder(t *testing.T) {
	g := NewTileGraph(parseRows(t,
		"###",
		"#P#",
		"###",
	))

	assert.Equal(t, []Tile{
		{Col: 1, Row: 0}, // up
		{Col: 1, Row: 2}, // down
		{Col: 0, Row: 1}, // left
		{Col: 2, Row: 1}, // right
	}, g.Neighbors(Tile{Col: 1, Row: 1}))

	// Corners only have in-bounds edges.
	assert.Equal(t, []Tile{{Col: 0, Row: 1}, {Col: 1, Row: 0}}, g.Neighbors(Tile{Col: 0, Row: 0}))
	assert.Nil(t, g.Neighbors(Tile{Col: 5, Row: 5}))
}

func TestTileGraphWalkability(t *testing.T) {
	g := NewTileGraph(parseRows(t,
		"#.#",
		"#P#",
	))

	tests := []struct {
		tile Tile
		want bool
	}{
		{Tile{Col: 1, Row: 0}, true},
		{Tile{Col: 1, Row: 1}, true},
		{Tile{Col: 0, Row: 0}, false},
		{Tile{Col: -1, Row: 0}, false},
		{Tile{Col: 1, Row: 2}, false},
		{Tile{Col: 3, Row: 1}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.IsWalkable(tt.tile), "IsWalkable(%v)", tt.tile)
	}

	g.SetObstacle(Tile{Col: 1, Row: 0}, true)
	assert.False(t, g.IsWalkable(Tile{Col: 1, Row: 0}))
	g.SetObstacle(Tile{Col: 0, Row: 0}, false)
	assert.True(t, g.IsWalkable(Tile{Col: 0, Row: 0}))
	g.SetObstacle(Tile{Col: 9, Row: 9}, false) // ignored
}

func TestTileGraphClampAndWrap(t *testing.T) {
	g := NewTileGraph(parseRows(t, "P...", "...."))

	assert.Equal(t, Tile{Col: 0, Row: 1}, g.Clamp(Tile{Col: -3, Row: 7}))
	assert.Equal(t, Tile{Col: 3, Row: 0}, g.Clamp(Tile{Col: 9, Row: -1}))
	assert.Equal(t, Tile{Col: 3, Row: 1}, g.Wrap(Tile{Col: -1, Row: 1}))
	assert.Equal(t, Tile{Col: 0, Row: 1}, g.Wrap(Tile{Col: 4, Row: 1}))
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 8, g.Len())
}

func TestTileAt(t *testing.T) {
	tests := []struct {
		pos  core.Vec2
		want Tile
	}{
		{core.V(0, 0), Tile{Col: 0, Row: 0}},
		{core.V(24.9, 25), Tile{Col: 0, Row: 1}},
		{core.V(-0.1, 12), Tile{Col: -1, Row: 0}},
		{core.V(62.5, 37.5), Tile{Col: 2, Row: 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TileAt(tt.pos, 25), "TileAt(%v)", tt.pos)
	}
	assert.Equal(t, core.V(62.5, 37.5), Tile{Col: 2, Row: 1}.Center(25))
}
