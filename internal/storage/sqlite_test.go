package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{GameID: "orbit", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveRun(Run{GameID: "orbit_pulse", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("orbit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != LocalPlayer {
		t.Errorf("Player = %q, expected %q", scores[0].Player, LocalPlayer)
	}

	pulse, err := store.TopScores("orbit_pulse", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pulse) != 1 {
		t.Errorf("Expected 1 pulse score, got %d", len(pulse))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	_, err := store.SaveRun(Run{
		GameID:   "orbit_rewind",
		Player:   "alice",
		Score:    42,
		Deaths:   3,
		Duration: 95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("orbit_rewind", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(scores))
	}

	e := scores[0]
	if e.Player != "alice" || e.Score != 42 || e.Deaths != 3 || e.Duration != 95*time.Second {
		t.Errorf("unexpected entry: %+v", e)
	}
	if !e.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, expected %v", e.CreatedAt, fixed)
	}

	if _, err := store.SaveRun(Run{Score: 1}); err == nil {
		t.Error("SaveRun() without a game ID should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v", len(all), err)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{GameID: "orbit", Player: "first", Score: 7})
	store.SaveRun(Run{GameID: "orbit", Player: "second", Score: 7})

	scores, err := store.TopScores("orbit", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %s, %s", scores[0].Player, scores[1].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("nonexistent")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for nonexistent game, got %d", high)
	}

	store.SaveRun(Run{GameID: "orbit", Score: 100})
	store.SaveRun(Run{GameID: "orbit", Score: 300})
	store.SaveRun(Run{GameID: "orbit", Score: 200})

	high, err = store.HighScore("orbit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreIsPerProcess(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveRun(Run{GameID: "orbit", Score: 10})
	if scores, _ := b.TopScores("orbit", 10); len(scores) != 0 {
		t.Error("separate stores should not share runs")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("orbit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "orbit", Score: 10, Deaths: 1, Duration: 2 * time.Second})
	store.SaveRun(Run{GameID: "orbit", Score: 30, Deaths: 2, Duration: 3 * time.Second})
	store.SaveRun(Run{GameID: "orbit_pulse", Score: 5})

	stats, err := store.GetGameStats("orbit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Deaths != 3 || stats.PlayTime != 5*time.Second {
		t.Errorf("Deaths=%d PlayTime=%v", stats.Deaths, stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["orbit_pulse"].GamesCount != 1 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}
