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

	saves := []struct {
		game     string
		initials string
		score    int
	}{
		{"bandit", "AAA", 100},
		{"bandit", "bob", 50},
		{"bandit", "CJ", 200},
		{"bandit_2p", "ZZZ", 500},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.initials, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("bandit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		initials string
		score    int
	}{
		{"CJ ", 200},
		{"AAA", 100},
		{"BOB", 50},
	}
	for i, w := range want {
		if scores[i].Initials != w.initials || scores[i].Score != w.score {
			t.Errorf("entry %d = %q %d, expected %q %d", i, scores[i].Initials, scores[i].Score, w.initials, w.score)
		}
	}

	twoPlayer, err := store.TopScores("bandit_2p", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(twoPlayer) != 1 {
		t.Errorf("Expected 1 two-player score, got %d", len(twoPlayer))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "ABC", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
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

	high, err := store.HighScore("bandit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("bandit", "AAA", 100)
	store.SaveScore("bandit", "BBB", 300)
	store.SaveScore("bandit", "CCC", 200)

	high, err = store.HighScore("bandit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{400, 300, 200, 100, 50} {
		store.SaveScore("bandit", "AAA", s)
	}

	tests := []struct {
		score    int
		expected int
	}{
		{500, 1},
		{400, 2}, // ties stay behind the existing entry
		{350, 2},
		{101, 4},
		{100, 5}, // equal to the lowest entry does not qualify
		{60, 5},
		{0, 5},
	}
	for _, tc := range tests {
		rank, err := store.Rank("bandit", tc.score, 4)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if rank != tc.expected {
			t.Errorf("Rank(%d) = %d, expected %d", tc.score, rank, tc.expected)
		}
	}

	if _, err := store.Rank("bandit", 10, 0); err == nil {
		t.Error("Rank() with table size 0 should fail")
	}
}

func TestStoreIsHighScore(t *testing.T) {
	store := openTestStore(t)

	// An empty table is all zeros.
	ok, err := store.IsHighScore("bandit", 1, 4)
	if err != nil || !ok {
		t.Errorf("IsHighScore(1) on empty table = %v, %v", ok, err)
	}
	ok, _ = store.IsHighScore("bandit", 0, 4)
	if ok {
		t.Error("a zero score should never qualify")
	}

	for _, s := range []int{40, 30, 20, 10} {
		store.SaveScore("bandit", "AAA", s)
	}
	if ok, _ := store.IsHighScore("bandit", 10, 4); ok {
		t.Error("score equal to the lowest entry should not qualify")
	}
	if ok, _ := store.IsHighScore("bandit", 11, 4); !ok {
		t.Error("score above the lowest entry should qualify")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bandit", "AAA", 100)
	store.SaveScore("bandit", "AAA", 200)
	store.SaveScore("bandit_2p", "BBB", 300)

	if err := store.ClearScores("bandit"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("bandit", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	twoPlayer, _ := store.TopScores("bandit_2p", 10)
	if len(twoPlayer) != 1 {
		t.Errorf("Two-player scores should not be affected by clearing bandit")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("bandit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("bandit", "AAA", 100)
	store.SaveScore("bandit", "BBB", 300)

	stats, err = store.GetGameStats("bandit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["bandit"].HighScore != 300 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestNormalizeInitials(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"abc", "ABC"},
		{"A", "A  "},
		{"", "   "},
		{"ABCD", "ABC"},
		{"a1b", "A B"},
		{"é z", "  Z"},
	}
	for _, tc := range tests {
		if got := NormalizeInitials(tc.in); got != tc.expected {
			t.Errorf("NormalizeInitials(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestStoreNestedPath(t *testing.T) {
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
