package pacman

// movePlayer advances the player by one tick.
// At a tile center the desired direction is adopted if its next tile is open,
// and the player stops if the tile ahead is blocked.
func (s *Sim) movePlayer() {
	p := &s.player
	ts := s.cfg.tileSize
	tile := TileAt(p.Pos, ts)
	center := tile.Center(ts)

	if p.Pos.Dist(center) < p.Speed && (tile != p.anchor || p.Dir == DirNone) {
		p.Pos = center
		p.anchor = tile
		if p.Desired != DirNone && s.playerCanEnter(tile.Step(p.Desired, 1)) {
			p.Dir = p.Desired
		}
		if p.Dir != DirNone && !s.playerCanEnter(tile.Step(p.Dir, 1)) {
			p.Dir = DirNone
		}
	}

	p.Pos = p.Pos.Add(p.Dir.Vec().Scale(p.Speed))
	s.wrapPlayer()
}

// playerCanEnter checks walkability with the column wrapped, so tunnels on
// the left and right edges connect.
func (s *Sim) playerCanEnter(t Tile) bool {
	return s.graph.IsWalkable(s.graph.Wrap(t))
}

func (s *Sim) wrapPlayer() {
	width := float64(s.graph.Cols()) * s.cfg.tileSize
	switch {
	case s.player.Pos.X < 0:
		s.player.Pos.X += width
	case s.player.Pos.X >= width:
		s.player.Pos.X -= width
	}
}

// movePursuer advances a pursuer by one tick. On arrival at a tile center it
// snaps and asks for a new plan, then heads for the center of Path[1].
// With no usable path it settles on the center of its current tile.
func (s *Sim) movePursuer(p *Pursuer) {
	if p.State == Captured {
		return
	}

	ts := s.cfg.tileSize
	tile := TileAt(p.Pos, ts)
	center := tile.Center(ts)
	near := p.Pos.Dist(center) < p.Speed

	if near && (tile != p.anchor || len(p.Path) < 2) {
		p.Pos = center
		p.anchor = tile
		s.plan(p)
	}

	dest := center
	if len(p.Path) >= 2 {
		dest = p.Path[1].Center(ts)
	}
	delta := dest.Sub(p.Pos)
	if d := delta.Len(); d > 0 {
		p.Pos = p.Pos.Add(delta.Scale(min(p.Speed, d) / d))
	}
}
