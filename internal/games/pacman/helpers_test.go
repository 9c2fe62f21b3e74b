package pacman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// testConfig disables the ready delay and difficulty scaling so that tests
// start in the Active phase with constant speeds.
func testConfig() config.PacmanConfig {
	cfg := config.DefaultPacmanConfig()
	cfg.Timing.ReadyDelay = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func parseRows(t *testing.T, rows ...string) *Level {
	t.Helper()
	lvl, err := ParseLevel("test", []byte(strings.Join(rows, "\n")))
	require.NoError(t, err)
	return lvl
}

func testRuntime() core.RuntimeConfig {
	return core.DefaultConfig()
}

// newActiveSim builds a sim from rows and steps it out of Ready.
func newActiveSim(t *testing.T, cfg config.PacmanConfig, rows ...string) *Sim {
	t.Helper()
	s := NewSim(parseRows(t, rows...), cfg, testRuntime())
	s.Step(DirNone)
	require.Equal(t, PhaseActive, s.Phase())
	return s
}

// boxRows returns a size x size room with a wall border. Cells lists
// symbol overrides keyed by tile.
func boxRows(size int, cells map[Tile]rune) []string {
	rows := make([]string, size)
	for r := range size {
		line := make([]rune, size)
		for c := range size {
			switch {
			case r == 0 || c == 0 || r == size-1 || c == size-1:
				line[c] = SymbolObstacle
			default:
				line[c] = ' '
			}
			if sym, ok := cells[Tile{Col: c, Row: r}]; ok {
				line[c] = sym
			}
		}
		rows[r] = string(line)
	}
	return rows
}
