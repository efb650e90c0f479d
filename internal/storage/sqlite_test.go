package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, gameID, variant string, score int) {
	t.Helper()
	if _, err := s.SaveScore(gameID, variant, score); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreCreatesNestedPath(t *testing.T) {
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

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "scores.db"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	got, _ = ExpandPath("/tmp/x.db")
	if got != "/tmp/x.db" {
		t.Errorf("Absolute paths should pass through, got %s", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	mustSave(t, store, "memory", "6x4", 12)
	mustSave(t, store, "memory", "4x4", 30)
	mustSave(t, store, "memory", "6x4", 20)
	mustSave(t, store, "snake", "", 7)

	scores, err := store.TopScores("memory", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 30 || scores[1].Score != 20 || scores[2].Score != 12 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	if scores[0].Variant != "4x4" {
		t.Errorf("Expected variant 4x4, got %q", scores[0].Variant)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}

	only, err := store.VariantScores("memory", "6x4", 10)
	if err != nil {
		t.Fatalf("VariantScores() failed: %v", err)
	}
	if len(only) != 2 || only[0].Score != 20 {
		t.Errorf("Expected the two 6x4 scores, got %+v", only)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 5; i++ {
		mustSave(t, store, "tetris", "", (i+1)*10)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("tetris", 0)
	if len(all) != 5 {
		t.Errorf("Default limit should cover all 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("simon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "simon", "", 4)
	mustSave(t, store, "simon", "", 9)
	mustSave(t, store, "simon", "", 6)

	high, _ = store.HighScore("simon")
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store, "slide", "4x4", 80)
	mustSave(t, store, "snake", "", 3)

	if err := store.ClearScores("slide"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("slide", 10); len(scores) != 0 {
		t.Errorf("Expected 0 slide scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("snake", 10); len(scores) != 1 {
		t.Error("Snake scores should not be affected by clearing slide")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	stats, err := store.Stats("snake")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	mustSave(t, store, "snake", "", 2)
	mustSave(t, store, "snake", "", 6)

	stats, err = store.Stats("snake")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.AvgScore != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
