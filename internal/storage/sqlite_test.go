package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/nugget-hunt/internal/core"
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

func run(id, difficulty string, pits, moves int, d time.Duration) core.RunResult {
	return core.RunResult{
		RunID:            id,
		Difficulty:       difficulty,
		HazardsRequested: 20,
		HazardsPlaced:    20,
		Pitfalls:         pits,
		Moves:            moves,
		Duration:         d,
		Seed:             42,
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

	runs := []core.RunResult{
		run("a", "medium", 2, 40, 30*time.Second),
		run("b", "medium", 0, 80, 50*time.Second),
		run("c", "medium", 0, 60, 70*time.Second),
		run("d", "hard", 1, 50, 40*time.Second),
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", r.RunID, err)
		}
	}

	best, err := store.BestRuns("medium", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 medium runs, got %d", len(best))
	}

	// Fewest pits first, then fewest moves
	order := []string{"c", "b", "a"}
	for i, id := range order {
		if best[i].RunID != id {
			t.Errorf("BestRuns()[%d] = %s, expected %s", i, best[i].RunID, id)
		}
	}

	first := best[0]
	if first.Duration != 70*time.Second {
		t.Errorf("Duration = %v, expected 70s", first.Duration)
	}
	if first.Seed != 42 || first.HazardsPlaced != 20 {
		t.Errorf("Entry = %+v, expected seed and hazard counts preserved", first)
	}
	if !first.Flawless() {
		t.Error("A run with no pits should be flawless")
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	hard, err := store.BestRuns("hard", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard run, got %d", len(hard))
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(run(string(rune('a'+i)), "easy", 0, 100-i*10, time.Minute))
	}

	best, err := store.BestRuns("easy", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(best))
	}
	if best[0].Moves != 60 || best[1].Moves != 70 || best[2].Moves != 80 {
		t.Errorf("Runs not in expected order: %v", best)
	}
}

func TestStoreSaveRunOnce(t *testing.T) {
	store := openTestStore(t)

	r := run("same", "easy", 0, 30, time.Minute)
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(r); !errors.Is(err, ErrRunExists) {
		t.Errorf("second SaveRun() error = %v, expected ErrRunExists", err)
	}

	entry, err := store.RunByID("same")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if entry == nil || entry.Moves != 30 {
		t.Errorf("RunByID() = %+v, expected the first save", entry)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(nope) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("hard")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty history = %+v", empty)
	}

	store.SaveRun(run("a", "hard", 3, 90, time.Minute))
	store.SaveRun(run("b", "hard", 0, 120, time.Minute))
	store.SaveRun(run("c", "hard", 1, 70, time.Minute))
	store.SaveRun(run("d", "easy", 0, 10, time.Minute))

	stats, err := store.Stats("hard")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.Flawless != 1 {
		t.Errorf("Flawless = %d, expected 1", stats.Flawless)
	}
	if stats.FewestPits != 0 || stats.FewestMoves != 70 {
		t.Errorf("FewestPits = %d, FewestMoves = %d, expected 0 and 70", stats.FewestPits, stats.FewestMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("first", "easy", 0, 10, time.Minute))
	store.SaveRun(run("second", "hard", 0, 10, time.Minute))

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].RunID != "second" {
		t.Errorf("RecentRuns(1) = %v, expected the latest run", recent)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("a", "easy", 0, 10, time.Minute))
	store.SaveRun(run("b", "hard", 0, 10, time.Minute))

	if err := store.ClearRuns("easy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	easy, _ := store.BestRuns("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy runs after clear, got %d", len(easy))
	}
	hard, _ := store.BestRuns("hard", 10)
	if len(hard) != 1 {
		t.Error("Hard runs should not be affected by clearing easy")
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
