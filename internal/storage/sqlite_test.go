//go:build !js

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTestStore(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, _ := openTestStore(t)

	runs := []struct {
		game  string
		score int
		level int
	}{
		{"flappy", 100, 4},
		{"flappy", 50, 4},
		{"flappy", 200, 4},
		{"other", 500, 1},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.score, r.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].Level != 4 {
			t.Errorf("scores[%d].Level = %d, want 4", i, scores[i].Level)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store, _ := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore("flappy", (i+1)*100, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("flappy", 3)
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

func TestStoreHighScore(t *testing.T) {
	store, _ := openTestStore(t)

	score, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty history, got %d", score)
	}

	store.SaveScore("flappy", 30, 3)
	store.SaveScore("flappy", 75, 4)
	store.SaveScore("flappy", 12, 2)

	score, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 75 {
		t.Errorf("Expected high score 75, got %d", score)
	}
}

func TestStoreClearScores(t *testing.T) {
	store, _ := openTestStore(t)

	store.SaveScore("flappy", 10, 1)
	store.SaveScore("flappy", 20, 2)
	store.SaveScore("other", 5, 1)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.AllScores("flappy")
	if len(scores) != 0 {
		t.Errorf("Expected no flappy scores after clear, got %d", len(scores))
	}

	other, _ := store.AllScores("other")
	if len(other) != 1 {
		t.Errorf("Clearing one game removed another's scores: %d left", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store, _ := openTestStore(t)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("flappy", 10, 2)
	store.SaveScore("flappy", 30, 3)

	stats, err = store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.BestLevel != 3 {
		t.Errorf("BestLevel = %d, want 3", stats.BestLevel)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, want 40", stats.TotalScore)
	}
}

func TestStoreKeyValue(t *testing.T) {
	store, _ := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
	}

	if err := store.Set(HighScoreKey, "12"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(HighScoreKey, "34"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(HighScoreKey)
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != "34" {
		t.Errorf("Get() = %q, want %q", v, "34")
	}

	if err := store.Delete(HighScoreKey); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get(HighScoreKey); ok {
		t.Error("key still present after Delete()")
	}
}

func TestStoreSetMax(t *testing.T) {
	store, _ := openTestStore(t)

	steps := []struct {
		value int
		want  string
	}{
		{8, "8"},   // inserted
		{3, "8"},   // lower, kept
		{8, "8"},   // equal, kept
		{21, "21"}, // raised
	}
	for _, step := range steps {
		if err := store.SetMax(HighScoreKey, step.value); err != nil {
			t.Fatalf("SetMax(%d) failed: %v", step.value, err)
		}
		v, _, err := store.Get(HighScoreKey)
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		if v != step.want {
			t.Errorf("after SetMax(%d) value = %q, want %q", step.value, v, step.want)
		}
	}

	// A non-numeric value counts as 0 and is replaced.
	if err := store.Set(HighScoreKey, "junk"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.SetMax(HighScoreKey, 4); err != nil {
		t.Fatalf("SetMax() failed: %v", err)
	}
	if v, _, _ := store.Get(HighScoreKey); v != "4" {
		t.Errorf("corrupt value not replaced, got %q", v)
	}
}

func TestStoreHighScoreSharedBySessions(t *testing.T) {
	store, _ := openTestStore(t)
	first := NewHighScores(store, HighScoreKey)
	second := NewHighScores(store, HighScoreKey)

	if err := first.SaveHighScore(10); err != nil {
		t.Fatalf("SaveHighScore(10) failed: %v", err)
	}
	if err := second.SaveHighScore(5); err != nil {
		t.Fatalf("SaveHighScore(5) failed: %v", err)
	}

	best, err := first.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if best != 10 {
		t.Errorf("LoadHighScore() = %d, want 10", best)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "best.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := NewHighScores(store, HighScoreKey).SaveHighScore(57); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := NewHighScores(store, HighScoreKey).LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if best != 57 {
		t.Errorf("LoadHighScore() = %d, want 57", best)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	testDir := filepath.Join(home, ".flappy-test-"+filepath.Base(t.TempDir()))
	defer os.RemoveAll(testDir)

	store, err := Open("~/" + filepath.Base(testDir) + "/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	expectedPath := filepath.Join(testDir, "test.db")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("Database not created at expected path: %s", expectedPath)
	}
}
