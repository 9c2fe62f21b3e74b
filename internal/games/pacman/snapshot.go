package pacman

// Snapshot contains the complete simulation state for replay and
// determinism tests. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	Remaining int
	Phase     int
	Combo     int

	// Positions are world units scaled by 1000.
	PlayerX   int
	PlayerY   int
	PlayerDir int

	// Each pursuer is 6 ints: X, Y, State, Timer, TargetCol, TargetRow.
	// Target is -1, -1 when holding.
	PursuerData []int

	// One entry per pickup, 1 when active.
	PickupData []int
}

// Snapshot returns the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	pursuers := make([]int, 0, len(s.pursuers)*6)
	for _, p := range s.pursuers {
		tc, tr := -1, -1
		if t, ok := p.Target(); ok {
			tc, tr = t.Col, t.Row
		}
		pursuers = append(pursuers,
			int(p.Pos.X*1000), int(p.Pos.Y*1000), int(p.State), p.Timer, tc, tr)
	}

	pickups := make([]int, len(s.pickups))
	for i, pk := range s.pickups {
		if pk.Active {
			pickups[i] = 1
		}
	}

	return Snapshot{
		Tick:        uint64(max(0, s.tick)), //#nosec G115 -- tick count is always positive
		Score:       s.score,
		Lives:       s.lives,
		Remaining:   s.remaining,
		Phase:       int(s.phase),
		Combo:       s.combo,
		PlayerX:     int(s.player.Pos.X * 1000),
		PlayerY:     int(s.player.Pos.Y * 1000),
		PlayerDir:   int(s.player.Dir),
		PursuerData: pursuers,
		PickupData:  pickups,
	}
}

// Snapshot returns the running simulation's state, or the zero Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}
	return g.sim.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.Score, snap.Lives, snap.Remaining, snap.Phase, snap.Combo,
		snap.PlayerX, snap.PlayerY, snap.PlayerDir} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PursuerData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PickupData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
