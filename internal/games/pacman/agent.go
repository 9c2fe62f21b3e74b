package pacman

import "github.com/vovakirdan/maze-arcade/internal/core"

// Direction is a compass heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid offset of one step.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Vec returns the unit vector for d (zero for DirNone).
func (d Direction) Vec() core.Vec2 {
	dc, dr := d.Delta()
	return core.V(float64(dc), float64(dr))
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// directionBetween returns the compass heading from a to an adjacent tile b.
func directionBetween(a, b Tile) Direction {
	switch {
	case b.Row < a.Row:
		return DirUp
	case b.Row > a.Row:
		return DirDown
	case b.Col < a.Col:
		return DirLeft
	case b.Col > a.Col:
		return DirRight
	default:
		return DirNone
	}
}

// Agent is the state shared by every moving actor.
type Agent struct {
	Pos    core.Vec2
	Spawn  Tile
	Dir    Direction
	Speed  float64 // world units per tick
	Radius float64

	// anchor is the tile whose center the agent last snapped to.
	// Arrival is only detected again once the agent is in another tile.
	anchor Tile
}

// placeAt puts the agent at the center of t, stationary.
func (a *Agent) placeAt(t Tile, tileSize float64) {
	a.Pos = t.Center(tileSize)
	a.Dir = DirNone
	a.anchor = t
}

// Anchor returns the tile the agent last arrived at.
func (a *Agent) Anchor() Tile {
	return a.anchor
}

// Player is the agent steered by input.
type Player struct {
	Agent
	Desired Direction
}

// Identity selects a pursuer's targeting rule.
type Identity int

const (
	Blinky Identity = iota // chases the player tile
	Pinky                  // aims ahead of the player
	Inky                   // pincer through Blinky
	Clyde                  // shy when close
)

func (id Identity) String() string {
	switch id {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// identityFor assigns identities by spawn order; extra pursuers chase directly.
func identityFor(i int) Identity {
	if i >= 0 && i <= int(Clyde) {
		return Identity(i)
	}
	return Blinky
}

// BehaviorState is a pursuer's mode.
type BehaviorState int

const (
	Pursuing BehaviorState = iota
	Retreating
	Captured
)

func (s BehaviorState) String() string {
	switch s {
	case Pursuing:
		return "pursuing"
	case Retreating:
		return "retreating"
	case Captured:
		return "captured"
	default:
		return "unknown"
	}
}

// Pursuer is an agent driven by PursuerBehavior along a planned path.
type Pursuer struct {
	Agent
	Identity Identity
	State    BehaviorState
	Timer    int // ticks left in Retreating or Captured

	// Path runs from the anchor tile to the chosen target. Empty means hold.
	Path []Tile

	// reverseOK allows the next retreat decision to turn back.
	reverseOK bool
}

// Target returns the last tile of the planned path.
func (p *Pursuer) Target() (Tile, bool) {
	if len(p.Path) == 0 {
		return Tile{}, false
	}
	return p.Path[len(p.Path)-1], true
}

// Pickup is a collectible.
type Pickup struct {
	Tile   Tile
	Pos    core.Vec2
	Radius float64
	Value  int
	Potent bool
	Active bool
}
