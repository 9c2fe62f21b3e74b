package pacman

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("small", []byte("#####\n#P.o#\n#G G#\n#####\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, lvl.Cols)
	assert.Equal(t, 4, lvl.Rows)
	assert.Equal(t, Tile{Col: 1, Row: 1}, lvl.Player)
	assert.Equal(t, []Tile{{Col: 1, Row: 2}, {Col: 3, Row: 2}}, lvl.Pursuers)
	assert.Equal(t, []PickupSpawn{
		{Tile: Tile{Col: 2, Row: 1}},
		{Tile: Tile{Col: 3, Row: 1}, Potent: true},
	}, lvl.Pickups)
	assert.True(t, lvl.IsObstacle(0, 0))
	assert.False(t, lvl.IsObstacle(2, 2))
	assert.True(t, lvl.IsObstacle(-1, 2), "out of bounds counts as obstacle")
}

func TestParseLevelCRLF(t *testing.T) {
	lvl, err := ParseLevel("crlf", []byte("###\r\n#P#\r\n###\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Cols)
	assert.Equal(t, 3, lvl.Rows)
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
		line int
	}{
		{"empty", "", ErrEmptyLevel, 0},
		{"only newlines", "\n", ErrEmptyLevel, 0},
		{"ragged", "####\n#P#\n####", ErrRaggedLevel, 2},
		{"no player", "###\n#.#\n###", ErrNoPlayerSpawn, 0},
		{"two players", "####\n#PP#\n####", ErrMultiplePlayerSpawns, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel("bad", []byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, "bad", le.Source)
			assert.Equal(t, tt.line, le.Line)
		})
	}
}

func TestLoadLevelFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.txt")
	require.NoError(t, os.WriteFile(path, []byte("###\n#P#\n###\n"), 0o600))

	lvl, err := LoadLevelFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, lvl.Name)

	_, err = LoadLevelFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// A path is used when no built-in level has that name.
	lvl, err = ResolveLevel(path)
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Cols)
}

func TestEmbeddedLevels(t *testing.T) {
	names := EmbeddedLevels()
	assert.Contains(t, names, DefaultLevel)
	assert.Contains(t, names, "maze")

	for _, name := range names {
		lvl, err := LoadEmbeddedLevel(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, lvl.Pickups, name)
		assert.NotEmpty(t, lvl.Pursuers, name)
	}

	lvl, err := ResolveLevel("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, lvl.Name)

	_, err = LoadEmbeddedLevel("nope")
	assert.Error(t, err)
}

func TestLevelStringRoundTrip(t *testing.T) {
	src := "#####\n#P.o#\n#G  #\n#####\n"
	lvl, err := ParseLevel("rt", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, lvl.String())
}
