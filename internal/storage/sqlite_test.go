package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("pacman", score, "normal", "classic"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500, "normal", "classic"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Difficulty != "normal" || scores[0].MazeID != "classic" {
		t.Errorf("run metadata not persisted: %+v", scores[0])
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("pacman", (i+1)*100, "normal", "classic")
	}

	scores, err := store.TopScores("pacman", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresFor(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 100, "normal", "classic")
	store.SaveScore("pacman", 900, "easy", "classic")
	store.SaveScore("pacman", 500, "normal", "custom")

	scores, err := store.TopScoresFor("pacman", "normal", "classic", 10)
	if err != nil {
		t.Fatalf("TopScoresFor() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 100 {
		t.Errorf("filter by difficulty and maze failed: %v", scores)
	}

	scores, err = store.TopScoresFor("pacman", "normal", "", 10)
	if err != nil {
		t.Fatalf("TopScoresFor() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 500 || scores[1].Score != 100 {
		t.Errorf("empty maze filter should match any maze: %v", scores)
	}

	scores, err = store.TopScoresFor("pacman", "", "", 10)
	if err != nil {
		t.Fatalf("TopScoresFor() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("empty filters should match every run: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("pacman", 100, "normal", "classic")
	store.SaveScore("pacman", 300, "normal", "classic")
	store.SaveScore("pacman", 200, "normal", "classic")

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 100, "normal", "classic")
	store.SaveScore("pacman", 200, "normal", "classic")
	store.SaveScore("other", 300, "normal", "classic")

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	pacmanScores, _ := store.TopScores("pacman", 10)
	if len(pacmanScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(pacmanScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Other games should not be affected by the clear")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("pacman", i*10, "normal", "classic")
	}

	scores, err := store.AllScores("pacman")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 100, "normal", "classic")
	store.SaveScore("pacman", 300, "normal", "classic")

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount: got %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore: got %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore: got %d, want 400", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
