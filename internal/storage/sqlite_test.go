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

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		level string
		score int
		coins int
		won   bool
	}{
		{"undercroft", 100, 10, false},
		{"undercroft", 50, 5, false},
		{"undercroft", 200, 18, true},
		{"tiny", 500, 1, true},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.level, r.score, r.coins, r.won); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("undercroft", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if !scores[0].Won || scores[0].Coins != 18 || scores[0].Level != "undercroft" {
		t.Errorf("Top entry fields wrong: %+v", scores[0])
	}
	if scores[1].Won {
		t.Error("Second entry should not be a win")
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Level != "tiny" {
		t.Errorf("TopScores across levels = %v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, 0, false)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("undercroft")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed level, got %d", high)
	}

	store.SaveScore("undercroft", 100, 0, false)
	store.SaveScore("undercroft", 300, 0, true)
	store.SaveScore("undercroft", 200, 0, false)

	high, err = store.HighScore("undercroft")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("undercroft", 100, 0, false)
	store.SaveScore("undercroft", 200, 0, false)
	store.SaveScore("tiny", 300, 0, false)

	if err := store.ClearScores("undercroft"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("undercroft", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("tiny", 10); len(scores) != 1 {
		t.Error("Other levels should not be affected by clearing one")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(all) failed: %v", err)
	}
	if scores, _ := store.AllScores(""); len(scores) != 0 {
		t.Errorf("Expected no scores after clearing all, got %d", len(scores))
	}
}

func TestStoreRecall(t *testing.T) {
	store := openTestStore(t)

	lines, err := store.LoadRecall(10)
	if err != nil {
		t.Fatalf("LoadRecall() failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected empty history, got %v", lines)
	}

	for _, line := range []string{"help", "player", "tp 3 4", "score"} {
		if err := store.AppendRecall(line); err != nil {
			t.Fatalf("AppendRecall() failed: %v", err)
		}
	}

	lines, err = store.LoadRecall(3)
	if err != nil {
		t.Fatalf("LoadRecall() failed: %v", err)
	}
	expected := []string{"player", "tp 3 4", "score"}
	if len(lines) != len(expected) {
		t.Fatalf("LoadRecall(3) = %v, expected %v", lines, expected)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("lines[%d] = %q, expected %q", i, lines[i], expected[i])
		}
	}

	if err := store.ClearRecall(); err != nil {
		t.Fatalf("ClearRecall() failed: %v", err)
	}
	if lines, _ := store.LoadRecall(10); len(lines) != 0 {
		t.Errorf("Expected empty history after clear, got %v", lines)
	}
}
