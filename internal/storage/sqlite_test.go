package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pipeslide/internal/core"
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
	store := openTemp(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("pipeslide", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pipeslide_mini", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("pipeslide", 10)
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
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	mini, err := store.TopScores("pipeslide_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(mini) != 1 || mini[0].Score != 500 {
		t.Errorf("mini scores = %+v", mini)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := range 15 {
		store.SaveScore("pipeslide", i*10)
	}

	scores, err := store.TopScores("pipeslide", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", scores[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("pipeslide")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("pipeslide", 40)
	store.SaveScore("pipeslide", 90)

	high, err = store.HighScore("pipeslide")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("Expected high score 90, got %d", high)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTemp(t)

	runs := []core.RunSummary{
		{Score: 0, TilesFilled: 0, Seed: 1, Ticks: 40, EndReason: "spilled"},
		{Score: 120, TilesFilled: 9, Seed: 2, Ticks: 900, EndReason: "spilled"},
		{Score: 60, TilesFilled: 5, Seed: 3, Ticks: 300, EndReason: "invalid"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("pipeslide", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("pipeslide", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Seed != 3 || recent[0].EndReason != "invalid" {
		t.Errorf("newest run = %+v", recent[0])
	}
	if recent[1].Ticks != 900 || recent[1].TilesFilled != 9 {
		t.Errorf("second run = %+v", recent[1])
	}

	stats, err := store.GetGameStats("pipeslide")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 3 || stats.HighScore != 120 || stats.BestFilled != 9 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 60 {
		t.Errorf("AvgScore = %v, want 60", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreGameStatsEmpty(t *testing.T) {
	store := openTemp(t)

	stats, err := store.GetGameStats("pipeslide")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("pipeslide", 100)
	store.SaveRun("pipeslide", core.RunSummary{Score: 100})
	store.SaveScore("pipeslide_mini", 200)

	if err := store.ClearScores("pipeslide"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("pipeslide", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("pipeslide", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	other, _ := store.TopScores("pipeslide_mini", 10)
	if len(other) != 1 {
		t.Error("Other game's scores should not be affected")
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
