package registry

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Switcher owns one instance per channel and guarantees that at most one of
// them receives updates. Switching away freezes the old channel; switching
// (back) to a channel always starts it on a fresh round.
type Switcher struct {
	create    func(id string) (Game, error)
	instances map[string]Game
	active    Game
	config    core.RuntimeConfig
	logger    *log.Logger
}

// NewSwitcher creates a switcher that instantiates games from the registry.
func NewSwitcher(cfg core.RuntimeConfig) *Switcher {
	return NewSwitcherWith(cfg, Create)
}

// NewSwitcherWith creates a switcher with a custom factory lookup.
func NewSwitcherWith(cfg core.RuntimeConfig, create func(id string) (Game, error)) *Switcher {
	return &Switcher{
		create:    create,
		instances: make(map[string]Game),
		config:    cfg,
		logger:    log.Default().WithPrefix("switcher"),
	}
}

// Activate makes the channel with the given id the active one.
func (s *Switcher) Activate(id string) (Game, error) {
	g, ok := s.instances[id]
	if !ok {
		created, err := s.create(id)
		if err != nil {
			return nil, fmt.Errorf("registry: activate %q: %w", id, err)
		}
		g = created
		s.instances[id] = g
	}

	if s.active != nil && s.active != g {
		s.active.Deactivate()
	}
	s.active = g
	g.Reset(s.config)
	s.logger.Debug("channel activated", "id", id)
	return g, nil
}

// Replace swaps the instance registered under id (for example after a level
// file changed on disk). If id was active the new instance is activated.
func (s *Switcher) Replace(id string, g Game) {
	old, ok := s.instances[id]
	s.instances[id] = g
	if ok && old == s.active {
		old.Deactivate()
		s.active = g
		g.Reset(s.config)
	}
}

// Deactivate freezes the active channel, leaving none active.
func (s *Switcher) Deactivate() {
	if s.active == nil {
		return
	}
	s.active.Deactivate()
	s.logger.Debug("channel deactivated", "id", s.active.ID())
	s.active = nil
}

// Active returns the active channel, or nil.
func (s *Switcher) Active() Game {
	return s.active
}

// Config returns the runtime config handed to channels on activation.
func (s *Switcher) Config() core.RuntimeConfig {
	return s.config
}

// SetSeed changes the seed used for the next activation.
func (s *Switcher) SetSeed(seed int64) {
	s.config.Seed = seed
}

// Step forwards one tick to the active channel only.
func (s *Switcher) Step(in core.InputFrame) core.StepResult {
	if s.active == nil {
		return core.StepResult{}
	}
	return s.active.Step(in)
}

// Resize updates screen dimensions. The active channel is restarted so it can
// lay itself out for the new size.
func (s *Switcher) Resize(w, h int) {
	s.config.ScreenW = w
	s.config.ScreenH = h
	if s.active != nil {
		s.active.Reset(s.config)
	}
}
