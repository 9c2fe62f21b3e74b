package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/registry"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

// RoundReporter is implemented by games that distinguish won and lost rounds.
type RoundReporter interface {
	RoundOutcome() (outcome string, over bool)
}

// HighScoreSetter is implemented by games that show the stored best score.
type HighScoreSetter interface {
	SetHighScore(score int)
}

// resultRecorder persists a finished round exactly once.
type resultRecorder struct {
	saved bool
	ticks int
}

// start seeds the game's high score and resets the round bookkeeping.
func (r *resultRecorder) start(game registry.Game, store *storage.Store) {
	r.saved = false
	r.ticks = 0
	if store == nil {
		return
	}
	hs, ok := game.(HighScoreSetter)
	if !ok {
		return
	}
	best, err := store.HighScore(game.ID())
	if err != nil {
		log.Warn("cannot load high score", "game", game.ID(), "err", err)
		return
	}
	hs.SetHighScore(best)
}

// observe counts a tick and saves the result the first time the game is over.
func (r *resultRecorder) observe(game registry.Game, store *storage.Store, state core.GameState) {
	if !state.GameOver {
		if !state.Paused {
			r.ticks++
		}
		return
	}
	if r.saved {
		return
	}
	r.saved = true
	if store == nil {
		return
	}

	if state.Score > 0 {
		if _, err := store.SaveScore(game.ID(), state.Score); err != nil {
			log.Warn("cannot save score", "game", game.ID(), "err", err)
		}
	}
	if rr, ok := game.(RoundReporter); ok {
		if outcome, over := rr.RoundOutcome(); over {
			if _, err := store.SaveRound(game.ID(), outcome, state.Score, r.ticks); err != nil {
				log.Warn("cannot save round", "game", game.ID(), "err", err)
			}
		}
	}
}
