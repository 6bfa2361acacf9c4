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

func save(t *testing.T, store *Store, layout string, score int) {
	t.Helper()
	if _, err := store.SaveRound(RoundResult{LayoutID: layout, Score: score, OrdersServed: score / 20, Duration: 120}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
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

	id, err := store.SaveRound(RoundResult{
		LayoutID:     "classic",
		Difficulty:   "hard",
		Score:        60,
		OrdersServed: 3,
		PlatesServed: 4,
		PlatesMissed: 1,
		Duration:     90,
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	save(t, store, "classic", 20)
	save(t, store, "classic", 100)
	save(t, store, "compact", 500)

	rounds, err := store.TopRounds("classic", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Should be sorted descending
	if rounds[0].Score != 100 || rounds[1].Score != 60 || rounds[2].Score != 20 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}

	got := rounds[1]
	if got.ID != id || got.Difficulty != "hard" || got.OrdersServed != 3 ||
		got.PlatesServed != 4 || got.PlatesMissed != 1 || got.Duration != 90 {
		t.Errorf("Round fields not preserved: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "classic", (i+1)*20)
	}

	rounds, err := store.TopRounds("classic", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 100 || rounds[1].Score != 80 || rounds[2].Score != 60 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty layout, got %d", high)
	}

	save(t, store, "classic", 100)
	save(t, store, "classic", 300)
	save(t, store, "classic", 200)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "classic", 100)
	save(t, store, "classic", 200)
	save(t, store, "compact", 300)

	if err := store.ClearRounds("classic"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	classic, _ := store.TopRounds("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic rounds after clear, got %d", len(classic))
	}

	compact, _ := store.TopRounds("compact", 10)
	if len(compact) != 1 {
		t.Errorf("Compact rounds should not be affected by clearing classic")
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "classic", 10)
	save(t, store, "compact", 20)
	save(t, store, "classic", 30)

	rounds, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 || rounds[0].Score != 30 || rounds[1].Score != 20 {
		t.Errorf("RecentRounds() = %+v", rounds)
	}
}

func TestStoreLayoutStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLayoutStats("classic")
	if err != nil {
		t.Fatalf("GetLayoutStats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	save(t, store, "classic", 40)
	save(t, store, "classic", 80)
	save(t, store, "compact", 20)

	stats, err := store.GetLayoutStats("classic")
	if err != nil {
		t.Fatalf("GetLayoutStats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 80 || stats.AvgScore != 60 || stats.OrdersServed != 6 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.GetAllLayoutStats()
	if err != nil {
		t.Fatalf("GetAllLayoutStats() failed: %v", err)
	}
	if len(all) != 2 || all["compact"].Rounds != 1 {
		t.Errorf("Unexpected all-layout stats: %+v", all)
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
