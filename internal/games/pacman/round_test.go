package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyIgnoresInput(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.ReadyDelay = 1.0
	s := NewSim(parseRows(t, "#####", "#P  #", "#####"), cfg, testRuntime())
	spawn := s.Player().Pos

	for range 59 {
		s.Step(DirRight)
		require.Equal(t, PhaseReady, s.Phase())
	}
	assert.Equal(t, spawn, s.Player().Pos)
	assert.Equal(t, DirNone, s.Player().Desired)

	s.Step(DirRight)
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestDyingReturnsToReady(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.DyingDelay = 0.5
	s := newActiveSim(t, cfg,
		"#######",
		"#P  . #",
		"#    G#",
		"#######",
	)
	ts := s.cfg.tileSize

	for range 5 {
		s.Step(DirRight)
	}
	p := s.Pursuers()[0]
	p.Pos = s.player.Pos
	s.resolvePursuers()
	require.Equal(t, PhaseDying, s.Phase())
	require.Equal(t, 2, s.Lives())

	for range 29 {
		s.Step(DirNone)
		require.Equal(t, PhaseDying, s.Phase())
	}
	s.Step(DirNone)

	// Ready delay is zero in tests, so the next step activates again.
	assert.Equal(t, PhaseReady, s.Phase())
	assert.Equal(t, s.level.Player.Center(ts), s.Player().Pos)
	assert.Equal(t, DirNone, s.Player().Dir)
	assert.Equal(t, p.Spawn.Center(ts), p.Pos)
	assert.Empty(t, p.Path)
	assert.Equal(t, 1, s.Remaining(), "pickups persist across lives")

	s.Step(DirNone)
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestLastLifeLost(t *testing.T) {
	cfg := testConfig()
	cfg.World.Lives = 1
	cfg.Timing.DyingDelay = 0.1
	s := newActiveSim(t, cfg,
		"######",
		"#P . G",
		"######",
	)
	s.Pursuers()[0].Pos = s.player.Pos
	s.resolvePursuers()
	require.Equal(t, PhaseDying, s.Phase())
	assert.Zero(t, s.Lives())

	for range 6 {
		s.Step(DirNone)
	}
	assert.Equal(t, PhaseLost, s.Phase())
	assert.True(t, s.Phase().Terminal())

	snap := s.Snapshot()
	for range 20 {
		s.Step(DirRight)
	}
	assert.Equal(t, snap, s.Snapshot(), "lost is terminal")
}

func TestRestart(t *testing.T) {
	s := newActiveSim(t, testConfig(),
		"######",
		"#P.o #",
		"#   G#",
		"######",
	)
	for range 40 {
		s.Step(DirRight)
	}
	require.NotZero(t, s.Score())
	s.Graph().SetObstacle(Tile{Col: 1, Row: 2}, true)

	s.Restart()

	assert.Equal(t, PhaseReady, s.Phase())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Tick())
	assert.Equal(t, s.cfg.lives, s.Lives())
	assert.Equal(t, 2, s.Remaining())
	assert.True(t, s.Graph().IsWalkable(Tile{Col: 1, Row: 2}), "restart rebuilds the graph")
	for _, pk := range s.Pickups() {
		assert.True(t, pk.Active)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseReady, "ready"},
		{PhaseActive, "active"},
		{PhaseDying, "dying"},
		{PhaseWon, "won"},
		{PhaseLost, "lost"},
		{Phase(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.phase.String())
	}
}
