package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/registry"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full arcade session flow: menu -> channel -> menu.
// Channels are owned by a registry.Switcher, so only the channel on screen
// is ever stepped.
type SessionModel struct {
	store      *storage.Store
	switcher   *registry.Switcher
	username   string
	view       sessionView
	menu       MenuModel
	scoreboard ScoreboardModel
	screen     *core.Screen
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	results    *resultRecorder
	tickGen    int
	quitting   bool
	logger     *log.Logger
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:      store,
		switcher:   registry.NewSwitcher(cfg),
		username:   username,
		menu:       NewMenuModel(store, cfg),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		results:    &resultRecorder{},
		logger:     log.Default().WithPrefix("session"),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.screen.Resize(wsm.Width, wsm.Height)
		m.switcher.Resize(wsm.Width, wsm.Height)
		if m.view == viewGame {
			m.results.start(m.switcher.Active(), m.store)
		}
		// Keep the other views sized too.
		m.menu, _ = updateAs[MenuModel](m.menu, msg)
		m.scoreboard, _ = updateAs[ScoreboardModel](m.scoreboard, msg)
		return m, nil
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateAs forwards msg to a sub-model and keeps its concrete type.
func updateAs[T tea.Model](model T, msg tea.Msg) (T, tea.Cmd) {
	next, cmd := model.Update(msg)
	if typed, ok := next.(T); ok {
		return typed, cmd
	}
	return model, cmd
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = updateAs(m.menu, msg)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		cfg := m.switcher.Config()
		m.scoreboard = NewScoreboardModel(m.store, cfg.ScreenW, cfg.ScreenH)
		m.view = viewScores
		return m, nil

	case m.menu.Selected() != nil:
		return m.enterChannel(m.menu.Selected().GameID)
	}

	return m, cmd
}

func (m SessionModel) enterChannel(id string) (tea.Model, tea.Cmd) {
	game, err := m.switcher.Activate(id)
	if err != nil {
		m.logger.Warn("cannot start channel", "user", m.username, "err", err)
		m.menu = NewMenuModel(m.store, m.switcher.Config())
		return m, nil
	}

	m.logger.Debug("channel started", "user", m.username, "id", id)
	m.view = viewGame
	m.gameState = game.State()
	m.inputFrame.Clear()
	m.results.start(game, m.store)
	m.tickGen++
	return m, channelTickCmd(m.switcher.Config().TickRate, m.tickGen)
}

func (m SessionModel) leaveChannel() (tea.Model, tea.Cmd) {
	m.switcher.Deactivate()
	m.view = viewMenu
	m.tickGen++
	m.menu = NewMenuModel(m.store, m.switcher.Config())
	return m, m.menu.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inputFrame.Has(core.ActionBack) {
			return m.leaveChannel()
		}

	case channelTickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		game := m.switcher.Active()
		wasOver := m.gameState.GameOver
		m.gameState = m.switcher.Step(m.inputFrame).State
		if wasOver && !m.gameState.GameOver {
			m.results.start(game, m.store)
		}
		m.results.observe(game, m.store, m.gameState)
		m.inputFrame.Clear()
		return m, channelTickCmd(m.switcher.Config().TickRate, m.tickGen)
	}
	return m, nil
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = updateAs(m.scoreboard, msg)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewMenu
		m.menu = NewMenuModel(m.store, m.switcher.Config())
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if g := m.switcher.Active(); g != nil {
			g.Render(m.screen)
			return RenderScreen(m.screen)
		}
	case viewScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu -> channel -> menu loop in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(store, cfg, "local"), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
