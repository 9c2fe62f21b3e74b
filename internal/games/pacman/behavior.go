package pacman

// updatePursuerStates counts down the Retreating and Captured timers.
func (s *Sim) updatePursuerStates() {
	for _, p := range s.pursuers {
		if p.State == Pursuing {
			continue
		}
		p.Timer--
		if p.Timer > 0 {
			continue
		}
		s.logger.Debug("pursuer resumes", "identity", p.Identity, "from", p.State)
		if p.State == Captured {
			p.Path = nil
		}
		p.State = Pursuing
		p.Timer = 0
		p.reverseOK = false
	}
}

// plan replaces the pursuer's path. It is called at tile-center arrival only.
func (s *Sim) plan(p *Pursuer) {
	switch p.State {
	case Pursuing:
		target, ok := s.chooseTarget(p)
		if !ok {
			s.hold(p)
			return
		}
		p.Path = s.finder.FindPath(p.anchor, target)
		if len(p.Path) < 2 {
			p.Dir = DirNone
			return
		}
		p.Dir = directionBetween(p.Path[0], p.Path[1])
	case Retreating:
		s.planRetreat(p)
	default:
		s.hold(p)
	}
}

func (s *Sim) hold(p *Pursuer) {
	p.Path = nil
	p.Dir = DirNone
}

// chooseTarget picks the pursuit target for p's identity. Targets are
// clamped to the grid and fall back to the player's tile when they land on
// a wall. It reports false when even the player's tile is unusable.
func (s *Sim) chooseTarget(p *Pursuer) (Tile, bool) {
	playerTile := s.playerTile()
	heading := s.player.Dir
	target := playerTile

	switch p.Identity {
	case Pinky:
		target = playerTile.Step(heading, s.cfg.lookahead)
	case Inky:
		if ref := s.reference(Blinky); ref != nil {
			pivot := playerTile.Step(heading, s.cfg.pivotAhead)
			b := TileAt(ref.Pos, s.cfg.tileSize)
			target = Tile{Col: 2*pivot.Col - b.Col, Row: 2*pivot.Row - b.Row}
		}
	case Clyde:
		if heuristic(p.anchor, playerTile) < s.cfg.shyDistance {
			target = Tile{Col: 1, Row: s.graph.Rows() - 2}
		}
	}

	target = s.graph.Clamp(target)
	if !s.graph.IsWalkable(target) {
		target = playerTile
	}
	if !s.graph.IsWalkable(target) {
		return Tile{}, false
	}
	return target, true
}

// reference returns the first non-captured pursuer with the given identity.
func (s *Sim) reference(id Identity) *Pursuer {
	for _, p := range s.pursuers {
		if p.Identity == id && p.State != Captured {
			return p
		}
	}
	return nil
}

// planRetreat takes one greedy step away from the player: the walkable
// neighbor with the largest Manhattan distance from the player's tile,
// ties resolved in neighbor order. Turning back is only allowed at a dead
// end or on the first decision after a potent pickup.
func (s *Sim) planRetreat(p *Pursuer) {
	cur := p.anchor
	playerTile := s.playerTile()
	back := cur.Step(p.Dir.Opposite(), 1)
	canReverse := p.reverseOK || p.Dir == DirNone

	var best Tile
	bestDist := -1
	reverse, hasReverse := Tile{}, false
	for _, n := range s.graph.Neighbors(cur) {
		if !s.graph.IsWalkable(n) {
			continue
		}
		if !canReverse && n == back {
			reverse, hasReverse = n, true
			continue
		}
		if d := n.Manhattan(playerTile); d > bestDist {
			best, bestDist = n, d
		}
	}
	if bestDist < 0 && hasReverse {
		best, bestDist = reverse, reverse.Manhattan(playerTile)
	}

	p.reverseOK = false
	if bestDist < 0 {
		s.hold(p)
		return
	}
	p.Path = []Tile{cur, best}
	p.Dir = directionBetween(cur, best)
}

// frighten sends every non-captured pursuer into Retreating with a fresh
// countdown and takes its first retreat decision immediately.
func (s *Sim) frighten() {
	s.combo = 0
	for _, p := range s.pursuers {
		if p.State == Captured {
			continue
		}
		p.State = Retreating
		p.Timer = s.cfg.retreatTicks
		p.reverseOK = true
		p.anchor = TileAt(p.Pos, s.cfg.tileSize)
		s.planRetreat(p)
	}
	s.logger.Debug("pursuers retreating", "ticks", s.cfg.retreatTicks)
}

// pursuerSpeed is the per-tick speed for a pursuer in its current state.
func (s *Sim) pursuerSpeed(p *Pursuer) float64 {
	speed := s.difficulty.Speed(s.cfg.pursuerSpeed, s.score, s.tick)
	if p.State == Retreating {
		speed *= s.cfg.retreatFactor
	}
	return speed
}
