package pacman

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// settings holds the configuration converted to world units and ticks.
type settings struct {
	tileSize      float64
	lives         int
	playerSpeed   float64
	pursuerSpeed  float64
	retreatFactor float64
	playerRadius  float64
	pursuerRadius float64
	pickupRadius  float64
	potentRadius  float64
	lookahead     int
	pivotAhead    int
	shyDistance   float64
	readyTicks    int
	dyingTicks    int
	retreatTicks  int
	captureTicks  int
	scoring       config.PacmanScoring
}

func newSettings(cfg config.PacmanConfig, rc core.RuntimeConfig) settings {
	ts := cfg.World.TileSize
	perTick := ts / float64(rc.Rate())
	return settings{
		tileSize:      ts,
		lives:         cfg.World.Lives,
		playerSpeed:   cfg.Player.Speed * perTick,
		pursuerSpeed:  cfg.Pursuers.Speed * perTick,
		retreatFactor: cfg.Pursuers.RetreatFactor,
		playerRadius:  cfg.Player.Radius * ts,
		pursuerRadius: cfg.Pursuers.Radius * ts,
		pickupRadius:  cfg.World.PickupRadius * ts,
		potentRadius:  cfg.World.PotentRadius * ts,
		lookahead:     cfg.Pursuers.Lookahead,
		pivotAhead:    cfg.Pursuers.PivotAhead,
		shyDistance:   cfg.Pursuers.ShyDistance,
		readyTicks:    rc.Ticks(cfg.Timing.ReadyDelay),
		dyingTicks:    rc.Ticks(cfg.Timing.DyingDelay),
		retreatTicks:  rc.Ticks(cfg.Timing.RetreatDuration),
		captureTicks:  rc.Ticks(cfg.Timing.CaptureDuration),
		scoring:       cfg.Scoring,
	}
}

// Sim is one simulation instance: the graph, the agents and the round state
// for a single level. It is single-threaded and advanced one tick at a time.
type Sim struct {
	level      *Level
	cfg        settings
	difficulty *config.DifficultyManager
	logger     *log.Logger

	graph    *TileGraph
	finder   *PathFinder
	player   Player
	pursuers []*Pursuer
	pickups  []Pickup

	score      int
	lives      int
	remaining  int // active pickups
	combo      int // captures since the last potent pickup
	phase      Phase
	phaseTimer int
	tick       int
}

// NewSim creates a simulation for level and starts it in the Ready phase.
func NewSim(level *Level, cfg config.PacmanConfig, rc core.RuntimeConfig) *Sim {
	s := &Sim{
		level:      level,
		cfg:        newSettings(cfg, rc),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.Default().WithPrefix("pacman"),
	}
	s.Restart()
	return s
}

// Restart rebuilds the level and returns to Ready with full lives and score 0.
func (s *Sim) Restart() {
	s.graph = NewTileGraph(s.level)
	s.finder = NewPathFinder(s.graph)

	ts := s.cfg.tileSize
	s.pickups = make([]Pickup, len(s.level.Pickups))
	for i, sp := range s.level.Pickups {
		pk := Pickup{
			Tile:   sp.Tile,
			Pos:    sp.Tile.Center(ts),
			Radius: s.cfg.pickupRadius,
			Value:  s.cfg.scoring.Pickup,
			Active: true,
		}
		if sp.Potent {
			pk.Potent = true
			pk.Radius = s.cfg.potentRadius
			pk.Value = s.cfg.scoring.Potent
		}
		s.pickups[i] = pk
	}
	s.remaining = len(s.pickups)

	s.player = Player{Agent: Agent{Spawn: s.level.Player, Radius: s.cfg.playerRadius}}
	s.pursuers = make([]*Pursuer, len(s.level.Pursuers))
	for i, spawn := range s.level.Pursuers {
		s.pursuers[i] = &Pursuer{
			Agent:    Agent{Spawn: spawn, Radius: s.cfg.pursuerRadius},
			Identity: identityFor(i),
		}
	}

	s.score = 0
	s.lives = s.cfg.lives
	s.tick = 0
	s.resetAgents()
	s.setPhase(PhaseReady, s.cfg.readyTicks)
}

// resetAgents returns every agent to its spawn with no plan.
func (s *Sim) resetAgents() {
	ts := s.cfg.tileSize
	s.player.placeAt(s.player.Spawn, ts)
	s.player.Desired = DirNone
	s.player.Speed = s.cfg.playerSpeed
	for _, p := range s.pursuers {
		p.placeAt(p.Spawn, ts)
		p.State = Pursuing
		p.Timer = 0
		p.Path = nil
		p.reverseOK = false
		p.Speed = s.cfg.pursuerSpeed
	}
	s.combo = 0
}

// Graph returns the live tile graph.
func (s *Sim) Graph() *TileGraph { return s.graph }

// Player returns the player agent.
func (s *Sim) Player() *Player { return &s.player }

// Pursuers returns the pursuers in spawn order.
func (s *Sim) Pursuers() []*Pursuer { return s.pursuers }

// Pickups returns every pickup, active or not.
func (s *Sim) Pickups() []Pickup { return s.pickups }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.lives }

// Remaining returns the number of active pickups.
func (s *Sim) Remaining() int { return s.remaining }

// Phase returns the round phase.
func (s *Sim) Phase() Phase { return s.phase }

// Tick returns the number of ticks simulated since the last restart.
func (s *Sim) Tick() int { return s.tick }

// Level returns the level the simulation was built from.
func (s *Sim) Level() *Level { return s.level }

// playerTile is the tile currently containing the player.
func (s *Sim) playerTile() Tile {
	return s.graph.Wrap(TileAt(s.player.Pos, s.cfg.tileSize))
}
