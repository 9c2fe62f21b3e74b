package pacman

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"unicode/utf8"
)

// Level symbols.
const (
	SymbolObstacle = '#'
	SymbolPickup   = '.'
	SymbolPotent   = 'o'
	SymbolPlayer   = 'P'
	SymbolPursuer  = 'G'
)

//go:embed levels/*.txt
var levelFS embed.FS

// Load errors. They are always wrapped in a *LoadError.
var (
	ErrEmptyLevel           = errors.New("level is empty")
	ErrRaggedLevel          = errors.New("rows have different lengths")
	ErrNoPlayerSpawn        = errors.New("no player spawn")
	ErrMultiplePlayerSpawns = errors.New("more than one player spawn")
)

// LoadError describes why a level could not be loaded.
type LoadError struct {
	Source string // file path or embedded level name
	Line   int    // 1-based line number, 0 when not line-specific
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("level %s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("level %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PickupSpawn is a pickup position read from the level.
type PickupSpawn struct {
	Tile   Tile
	Potent bool
}

// Level is a parsed, immutable level layout.
type Level struct {
	Name      string
	Cols      int
	Rows      int
	Obstacles []bool // row-major, Cols*Rows
	Player    Tile
	Pursuers  []Tile // in scan order; the order assigns pursuer identities
	Pickups   []PickupSpawn
}

// IsObstacle reports whether the tile at (col, row) is a wall.
func (l *Level) IsObstacle(col, row int) bool {
	if col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return true
	}
	return l.Obstacles[row*l.Cols+col]
}

// ParseLevel parses a text grid. source names the level in errors.
// A trailing newline and CRLF line endings are accepted.
func ParseLevel(source string, data []byte) (*Level, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, &LoadError{Source: source, Err: ErrEmptyLevel}
	}

	lines := strings.Split(text, "\n")
	cols := utf8.RuneCountInString(strings.TrimSuffix(lines[0], "\r"))

	lvl := &Level{
		Name:      source,
		Cols:      cols,
		Rows:      len(lines),
		Obstacles: make([]bool, cols*len(lines)),
	}

	playerFound := false
	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, &LoadError{
				Source: source,
				Line:   row + 1,
				Err:    fmt.Errorf("%w: got %d, expected %d", ErrRaggedLevel, n, cols),
			}
		}

		col := 0
		for _, r := range line {
			t := Tile{Col: col, Row: row}
			switch r {
			case SymbolObstacle:
				lvl.Obstacles[row*cols+col] = true
			case SymbolPickup:
				lvl.Pickups = append(lvl.Pickups, PickupSpawn{Tile: t})
			case SymbolPotent:
				lvl.Pickups = append(lvl.Pickups, PickupSpawn{Tile: t, Potent: true})
			case SymbolPlayer:
				if playerFound {
					return nil, &LoadError{Source: source, Line: row + 1, Err: ErrMultiplePlayerSpawns}
				}
				playerFound = true
				lvl.Player = t
			case SymbolPursuer:
				lvl.Pursuers = append(lvl.Pursuers, t)
			}
			col++
		}
	}

	if !playerFound {
		return nil, &LoadError{Source: source, Err: ErrNoPlayerSpawn}
	}
	return lvl, nil
}

// LoadLevelFile reads and parses a level from disk.
func LoadLevelFile(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{Source: filename, Err: err}
	}
	return ParseLevel(filename, data)
}

// LoadEmbeddedLevel parses one of the built-in levels by name.
func LoadEmbeddedLevel(name string) (*Level, error) {
	data, err := levelFS.ReadFile(path.Join("levels", name+".txt"))
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return ParseLevel(name, data)
}

// ResolveLevel loads a built-in level when nameOrPath matches one,
// otherwise it treats nameOrPath as a file path.
func ResolveLevel(nameOrPath string) (*Level, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultLevel
	}
	for _, name := range EmbeddedLevels() {
		if name == nameOrPath {
			return LoadEmbeddedLevel(name)
		}
	}
	return LoadLevelFile(nameOrPath)
}

// DefaultLevel is the built-in level used when none is configured.
const DefaultLevel = "classic"

// EmbeddedLevels returns the names of the built-in levels, sorted.
func EmbeddedLevels() []string {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".txt"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// String renders the level back into its text form (pickups as placed at load).
func (l *Level) String() string {
	grid := make([][]rune, l.Rows)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", l.Cols))
		for col := range grid[row] {
			if l.IsObstacle(col, row) {
				grid[row][col] = SymbolObstacle
			}
		}
	}
	for _, p := range l.Pickups {
		r := rune(SymbolPickup)
		if p.Potent {
			r = SymbolPotent
		}
		grid[p.Tile.Row][p.Tile.Col] = r
	}
	for _, t := range l.Pursuers {
		grid[t.Row][t.Col] = SymbolPursuer
	}
	grid[l.Player.Row][l.Player.Col] = SymbolPlayer

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
