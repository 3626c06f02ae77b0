package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{GameID: gameID, Score: score, Level: 1}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "gems", 100)
	save(t, store, "gems", 50)
	save(t, store, "gems", 200)
	save(t, store, "gems_blitz", 500)

	scores, err := store.TopScores("gems", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	blitzScores, err := store.TopScores("gems_blitz", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(blitzScores) != 1 {
		t.Errorf("Expected 1 blitz score, got %d", len(blitzScores))
	}
}

func TestStoreSavesRunDetails(t *testing.T) {
	store := openTestStore(t)

	entry := ScoreEntry{GameID: "gems_surge", Score: 4200, Level: 7, MaxChain: 5, Duration: 183}
	if _, err := store.SaveScore(entry); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("gems_surge", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Level != 7 || got.MaxChain != 5 || got.Duration != 183 {
		t.Errorf("Run details = level %d chain %d duration %d, want 7, 5, 183",
			got.Level, got.MaxChain, got.Duration)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "gems", (i+1)*100)
	}

	scores, err := store.TopScores("gems", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("gems")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "gems", 100)
	save(t, store, "gems", 300)
	save(t, store, "gems", 200)

	high, err = store.HighScore("gems")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "gems", 100)
	save(t, store, "gems", 200)
	save(t, store, "gems_twist", 300)

	if err := store.ClearScores("gems"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	gemScores, _ := store.TopScores("gems", 10)
	if len(gemScores) != 0 {
		t.Errorf("Expected 0 gems scores after clear, got %d", len(gemScores))
	}

	twistScores, _ := store.TopScores("gems_twist", 10)
	if len(twistScores) != 1 {
		t.Errorf("Twist scores should not be affected by clearing gems")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "gems", i*10)
	}

	scores, err := store.AllScores("gems")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{GameID: "gems", Score: 100, Level: 2, MaxChain: 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore(ScoreEntry{GameID: "gems", Score: 300, Level: 4, MaxChain: 6}); err != nil {
		t.Fatal(err)
	}

	stats, err := store.GetGameStats("gems")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v, want 2 games, high 300, total 400", stats)
	}
	if stats.BestChain != 6 {
		t.Errorf("best chain = %d, want 6", stats.BestChain)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["gems"]; !ok {
		t.Error("aggregated stats missing gems entry")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
