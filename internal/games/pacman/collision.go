package pacman

import "github.com/vovakirdan/maze-arcade/internal/core"

// collectPickups consumes every active pickup touching the player.
// It reports whether this tick collected the last one.
func (s *Sim) collectPickups() bool {
	collected := false
	for i := range s.pickups {
		pk := &s.pickups[i]
		if !pk.Active || !core.CirclesOverlap(s.player.Pos, s.player.Radius, pk.Pos, pk.Radius) {
			continue
		}
		pk.Active = false
		s.score += pk.Value
		s.remaining--
		collected = true
		if pk.Potent {
			s.frighten()
		}
	}
	return collected && s.remaining == 0
}

// resolvePursuers handles player contact. Retreating pursuers are captured
// for an escalating bonus; the first Pursuing contact costs a life and ends
// the tick. Captured pursuers are ignored.
func (s *Sim) resolvePursuers() {
	for _, p := range s.pursuers {
		if p.State == Captured || !core.CirclesOverlap(s.player.Pos, s.player.Radius, p.Pos, p.Radius) {
			continue
		}
		if p.State == Retreating {
			s.capture(p)
			continue
		}
		s.lives--
		s.logger.Debug("life lost", "identity", p.Identity, "lives", s.lives)
		s.setPhase(PhaseDying, s.cfg.dyingTicks)
		return
	}
}

func (s *Sim) capture(p *Pursuer) {
	bonus := s.captureBonus()
	s.score += bonus
	s.combo++

	p.placeAt(p.Spawn, s.cfg.tileSize)
	p.State = Captured
	p.Timer = s.cfg.captureTicks
	p.Path = nil
	p.reverseOK = false
	s.logger.Debug("pursuer captured", "identity", p.Identity, "bonus", bonus)
}

// captureBonus doubles the base value for each capture since the last
// potent pickup, up to the cap.
func (s *Sim) captureBonus() int {
	bonus := s.cfg.scoring.CaptureBase
	for i := 0; i < s.combo && bonus < s.cfg.scoring.CaptureCap; i++ {
		bonus *= 2
	}
	return min(bonus, s.cfg.scoring.CaptureCap)
}
