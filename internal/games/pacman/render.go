package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Visual characters for rendering
const (
	WallChar     = '█'
	PickupChar   = '·'
	PotentChar   = '●'
	PlayerChar   = 'C'
	PursuerChar  = 'M'
	RetreatChar  = 'm'
	CapturedChar = '"'
)

// hudRows is the number of screen rows above the maze.
const hudRows = 1

var identityColors = map[Identity]core.Color{
	Blinky: core.ColorRed,
	Pinky:  core.ColorPink,
	Inky:   core.ColorCyan,
	Clyde:  core.ColorOrange,
}

// minScreen returns the smallest screen that fits the level at one cell per tile.
func (g *Game) minScreen() (int, int) {
	if g.level == nil {
		return 0, 0
	}
	return g.level.Cols, g.level.Rows + hudRows
}

// layout maps tiles to screen cells: tiles are two cells wide when the
// screen allows it, and the maze is centered horizontally.
type layout struct {
	cellW    int
	ox, oy   int
	tileSize float64
}

func (l layout) cell(pos core.Vec2) (int, int) {
	x := l.ox + int(pos.X/l.tileSize*float64(l.cellW))
	y := l.oy + int(pos.Y/l.tileSize)
	return x, y
}

func (g *Game) layoutFor(dst *core.Screen) layout {
	cols := g.level.Cols
	cellW := 1
	if cols*2 <= dst.Width() {
		cellW = 2
	}
	return layout{
		cellW:    cellW,
		ox:       max(0, (dst.Width()-cols*cellW)/2),
		oy:       hudRows,
		tileSize: g.sim.cfg.tileSize,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawOverlay("LEVEL UNPLAYABLE", truncate(g.loadErr.Error(), dst.Width()-4))
		return
	}
	if g.sim == nil {
		return
	}
	if g.tooSmall {
		w, h := g.minScreen()
		dst.DrawOverlay("SCREEN TOO SMALL", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	s := g.sim
	l := g.layoutFor(dst)

	g.drawWalls(dst, l)
	for _, pk := range s.pickups {
		if !pk.Active {
			continue
		}
		x, y := l.cell(pk.Pos)
		if pk.Potent {
			dst.SetColored(x, y, PotentChar, core.ColorBrightWhite)
		} else {
			dst.SetColored(x, y, PickupChar, core.ColorWhite)
		}
	}

	for _, p := range s.pursuers {
		x, y := l.cell(p.Pos)
		switch p.State {
		case Retreating:
			c := core.ColorBlue
			// Flash during the last two seconds.
			if p.Timer < 2*g.runtime.Rate() && (p.Timer/8)%2 == 0 {
				c = core.ColorBrightWhite
			}
			dst.SetColored(x, y, RetreatChar, c)
		case Captured:
			dst.SetColored(x, y, CapturedChar, core.ColorGray)
		default:
			dst.SetColored(x, y, PursuerChar, identityColors[p.Identity])
		}
	}

	if s.phase != PhaseDying || (s.phaseTimer/6)%2 == 0 {
		x, y := l.cell(s.player.Pos)
		dst.SetColored(x, y, PlayerChar, core.ColorYellow)
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	case s.phase == PhaseReady:
		dst.DrawOverlay("READY!", "Arrows or WASD to move")
	case s.phase == PhaseWon:
		dst.DrawOverlay("YOU WIN!", fmt.Sprintf("Score: %d  |  R to play again", s.score))
	case s.phase == PhaseLost:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", s.score))
	}
}

func (g *Game) drawWalls(dst *core.Screen, l layout) {
	graph := g.sim.graph
	for row := 0; row < graph.Rows(); row++ {
		for col := 0; col < graph.Cols(); col++ {
			if graph.IsWalkable(Tile{Col: col, Row: row}) {
				continue
			}
			for i := range l.cellW {
				dst.SetColored(l.ox+col*l.cellW+i, l.oy+row, WallChar, core.ColorBlue)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	h := g.HUD()
	left := fmt.Sprintf("SCORE %05d  HI %05d", h.Score, h.HighScore)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	lives := strings.TrimSpace(strings.Repeat(string(PlayerChar)+" ", max(0, h.Lives)))
	right := fmt.Sprintf("%s  %s", strings.ToUpper(h.Phase.String()), lives)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorYellow)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
