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

func TestStoreOpen(t *testing.T) {
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

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetInt("starfall.high_score", 42); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, err := store.Int("starfall.high_score")
	if err != nil {
		t.Fatalf("Int() failed: %v", err)
	}
	if v != 42 {
		t.Errorf("high score after reopen = %d, expected 42", v)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("starfall", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("starfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	recent, err := store.RecentScores("starfall", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 200 || recent[1].Score != 50 {
		t.Errorf("RecentScores() = %v, expected newest first [200 50]", recent)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
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

	high, err := store.HighScore("starfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("starfall", 100)
	store.SaveScore("starfall", 300)
	store.SaveScore("starfall", 200)

	high, err = store.HighScore("starfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("starfall", 100)
	store.SaveScore("starfall", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("starfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("starfall", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("starfall")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if stats.Rounds != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("starfall", 10)
	store.SaveScore("starfall", 30)

	stats, err = store.GetGameStats("starfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v, expected 2 rounds, high 30, avg 20", stats)
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Int("missing")
	if err != nil {
		t.Fatalf("Int() on missing key failed: %v", err)
	}
	if v != 0 {
		t.Errorf("missing key = %d, expected 0", v)
	}

	if err := store.SetInt("k", 3); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	if err := store.SetInt("k", 7); err != nil {
		t.Fatalf("SetInt() overwrite failed: %v", err)
	}
	if v, _ := store.Int("k"); v != 7 {
		t.Errorf("Int(k) = %d, expected 7", v)
	}

	if err := store.DeleteSetting("k"); err != nil {
		t.Fatalf("DeleteSetting() failed: %v", err)
	}
	if v, _ := store.Int("k"); v != 0 {
		t.Errorf("Int(k) after delete = %d, expected 0", v)
	}
	if err := store.DeleteSetting("k"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestMemorySettings(t *testing.T) {
	m := NewMemorySettings()

	if v, err := m.Int("k"); err != nil || v != 0 {
		t.Errorf("Int(k) = %d, %v; expected 0, nil", v, err)
	}
	m.SetInt("k", 9)
	if v, _ := m.Int("k"); v != 9 {
		t.Errorf("Int(k) = %d, expected 9", v)
	}
}

type intRaiser interface {
	Int(key string) (int, error)
	RaiseInt(key string, value int) (int, error)
}

func TestSettingsRaiseInt(t *testing.T) {
	stores := []struct {
		name string
		s    intRaiser
	}{
		{"sqlite", openTestStore(t)},
		{"memory", NewMemorySettings()},
	}

	for _, tc := range stores {
		t.Run(tc.name, func(t *testing.T) {
			steps := []struct {
				raise int
				want  int
			}{
				{5, 5},
				{50, 50},
				{10, 50}, // lower write is ignored
				{50, 50},
				{51, 51},
			}
			for _, st := range steps {
				got, err := tc.s.RaiseInt("high", st.raise)
				if err != nil {
					t.Fatalf("RaiseInt(%d) failed: %v", st.raise, err)
				}
				if got != st.want {
					t.Errorf("RaiseInt(%d) = %d, expected %d", st.raise, got, st.want)
				}
				if v, _ := tc.s.Int("high"); v != st.want {
					t.Errorf("Int(high) after RaiseInt(%d) = %d, expected %d", st.raise, v, st.want)
				}
			}
		})
	}
}

func TestRaiseIntSharedAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.db")
	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer a.Close()
	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer b.Close()

	if _, err := a.RaiseInt("high", 50); err != nil {
		t.Fatalf("RaiseInt() failed: %v", err)
	}
	got, err := b.RaiseInt("high", 10)
	if err != nil {
		t.Fatalf("RaiseInt() failed: %v", err)
	}
	if got != 50 {
		t.Errorf("second handle RaiseInt(10) = %d, expected 50", got)
	}
}
