package pong

// Snapshot contains the complete state of a match for replay and
// determinism tests. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	BallX       int // Positions and velocities scaled by 1000
	BallY       int
	BallVX      int
	BallVY      int
	PlayerY     int
	CPUY        int
	PlayerScore int
	CPUScore    int
	GameOver    bool
	Serving     bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        uint64(max(0, g.tickCount)), //#nosec G115 -- tickCount is always non-negative
		BallX:       int(g.ballX * 1000),
		BallY:       int(g.ballY * 1000),
		BallVX:      int(g.ballVX * 1000),
		BallVY:      int(g.ballVY * 1000),
		PlayerY:     int(g.playerY * 1000),
		CPUY:        int(g.cpuY * 1000),
		PlayerScore: g.playerScore,
		CPUScore:    g.cpuScore,
		GameOver:    g.gameOver,
		Serving:     g.serving,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.PlayerY, snap.CPUY, snap.PlayerScore, snap.CPUScore} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.GameOver {
		h = h*31 + 1
	}
	if snap.Serving {
		h = h*31 + 1
	}
	return h
}
