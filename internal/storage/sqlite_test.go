package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, r RunRecord) int64 {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	v, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != 1 {
		t.Errorf("Expected schema version 1, got %d", v)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 42})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("neondodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := RunRecord{
		GameID:         "neondodge",
		Player:         "ada",
		Score:          230,
		DurationMs:     61_500,
		PeakMultiplier: 2.75,
		OrbsCollected:  17,
		HitsTaken:      3,
		Difficulty:     27.6,
		Seed:           99,
	}
	id := mustSave(t, store, want)
	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 100})
	mustSave(t, store, RunRecord{GameID: "other", Score: 500})

	runs, err := store.TopRuns("neondodge", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != id {
		t.Errorf("Expected ID %d, got %d", id, got.ID)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
	got.ID, got.CreatedAt = 0, time.Time{}
	if got != want {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
	if got.Duration() != 61500*time.Millisecond {
		t.Errorf("Duration() = %v", got.Duration())
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunRecord{Score: 1}); err == nil {
		t.Error("Expected error for run without game id")
	}
}

func TestStoreTopRunsLimitAndOrder(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 100, 500, 200, 400, 500} {
		mustSave(t, store, RunRecord{GameID: "test", Score: score})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 500 || runs[2].Score != 400 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].ID > runs[1].ID {
		t.Error("Ties should list the earlier run first")
	}

	all, err := store.TopRuns("test", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Default limit should include all 6 runs, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		mustSave(t, store, RunRecord{GameID: "test", Score: i})
	}

	runs, err := store.RecentRuns("test", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Score != 5 || runs[1].Score != 4 {
		t.Errorf("Expected newest first, got %d then %d", runs[0].Score, runs[1].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("neondodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 100})
	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 300})
	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 200})

	high, err = store.HighScore("neondodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 100})
	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 200})
	mustSave(t, store, RunRecord{GameID: "other", Score: 300})

	if err := store.ClearRuns("neondodge"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("neondodge", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	others, _ := store.TopRuns("other", 10)
	if len(others) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("neondodge")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 100, OrbsCollected: 4, DurationMs: 1000})
	mustSave(t, store, RunRecord{GameID: "neondodge", Score: 300, OrbsCollected: 6, DurationMs: 9000})

	stats, err := store.Stats("neondodge")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalOrbs != 10 {
		t.Errorf("TotalOrbs = %d, want 10", stats.TotalOrbs)
	}
	if stats.LongestMs != 9000 {
		t.Errorf("LongestMs = %d, want 9000", stats.LongestMs)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
