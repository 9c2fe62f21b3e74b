package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("pacman", 420); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 420 {
		t.Errorf("Expected high score 420 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := newTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("pacman", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pong", 300); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "pacman" {
			t.Errorf("scores[%d] has game %q", i, scores[i].GameID)
		}
	}

	limited, err := store.TopScores("pacman", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}

	all, err := store.AllScores("pong")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 1 || all[0].Score != 300 {
		t.Errorf("Expected one pong score of 300, got %+v", all)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := newTestStore(t)

	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty scores, got %d", high)
	}

	store.SaveScore("pacman", 10)
	store.SaveScore("pacman", 25)
	store.SaveScore("pacman", 15)

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 25 {
		t.Errorf("Expected high score 25, got %d", high)
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := newTestStore(t)

	rounds := []struct {
		outcome string
		score   int
		ticks   int
	}{
		{OutcomeLost, 120, 900},
		{OutcomeWon, 2600, 5400},
		{OutcomeLost, 40, 300},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound("pacman", r.outcome, r.score, r.ticks); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds("pacman", 2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(recent))
	}
	if recent[0].Score != 40 || recent[0].Outcome != OutcomeLost || recent[0].Ticks != 300 {
		t.Errorf("newest round = %+v", recent[0])
	}
	if recent[1].Outcome != OutcomeWon {
		t.Errorf("second round outcome = %q, want won", recent[1].Outcome)
	}
}

func TestStoreSaveRoundRejectsOutcome(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SaveRound("pacman", "draw", 0, 0)
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("Expected ErrInvalidOutcome, got %v", err)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := newTestStore(t)

	store.SaveScore("pacman", 100)
	store.SaveScore("pong", 500)
	store.SaveRound("pacman", OutcomeWon, 100, 10)

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("pacman", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	rounds, _ := store.RecentRounds("pacman", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}

	pong, _ := store.TopScores("pong", 10)
	if len(pong) != 1 {
		t.Errorf("Other games should be untouched, got %d pong scores", len(pong))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.Wins != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("pacman", 100)
	store.SaveScore("pacman", 300)
	store.SaveRound("pacman", OutcomeWon, 300, 10)
	store.SaveRound("pacman", OutcomeLost, 100, 10)
	store.SaveRound("pacman", OutcomeLost, 0, 10)

	stats, err = store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected score stats %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.Wins != 1 || stats.Losses != 2 {
		t.Errorf("Expected 1 win and 2 losses, got %d/%d", stats.Wins, stats.Losses)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["pacman"] == nil || all["pacman"].Wins != 1 {
		t.Errorf("unexpected all-games stats %+v", all)
	}
}
