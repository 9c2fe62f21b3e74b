package pacman

// Phase is the round state.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseActive
	PhaseDying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseActive:
		return "active"
	case PhaseDying:
		return "dying"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round is over until restarted.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

func (s *Sim) setPhase(p Phase, ticks int) {
	if p != s.phase {
		s.logger.Debug("phase", "from", s.phase, "to", p, "score", s.score, "lives", s.lives)
	}
	s.phase = p
	s.phaseTimer = ticks
}

// Step advances the simulation by one tick. desired is the direction
// requested by input this tick; DirNone keeps the previous request.
// Input is ignored outside the Active phase.
func (s *Sim) Step(desired Direction) {
	switch s.phase {
	case PhaseReady:
		s.phaseTimer--
		if s.phaseTimer <= 0 {
			s.setPhase(PhaseActive, 0)
		}
	case PhaseActive:
		s.tick++
		s.stepActive(desired)
	case PhaseDying:
		s.phaseTimer--
		if s.phaseTimer > 0 {
			return
		}
		if s.lives <= 0 {
			s.setPhase(PhaseLost, 0)
			return
		}
		s.resetAgents()
		s.setPhase(PhaseReady, s.cfg.readyTicks)
	}
}

func (s *Sim) stepActive(desired Direction) {
	if desired != DirNone {
		s.player.Desired = desired
	}

	s.updatePursuerStates()
	s.movePlayer()
	for _, p := range s.pursuers {
		p.Speed = s.pursuerSpeed(p)
		s.movePursuer(p)
	}

	if s.collectPickups() {
		s.setPhase(PhaseWon, 0)
		return
	}
	s.resolvePursuers()
}
