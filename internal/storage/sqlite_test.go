package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// openTestStore opens a fresh database in a temp dir.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "tetris", 700)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected 700 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore(ScoreEntry{GameID: "tetris", Player: "ada", Score: 1200, Lines: 9, Pieces: 41})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}
	save(t, store, "tetris", 300)
	save(t, store, "other", 5000)

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}

	top := scores[0]
	if top.Score != 1200 || top.Player != "ada" || top.Lines != 9 || top.Pieces != 41 {
		t.Errorf("Top entry = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
	if time.Since(top.CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt looks wrong: %v", top.CreatedAt)
	}

	// Missing player name falls back to the default.
	if scores[1].Player != DefaultPlayer {
		t.Errorf("Expected player %q, got %q", DefaultPlayer, scores[1].Player)
	}
}

func TestStoreSaveRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore() without game ID should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "tetris", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit defaults to 10
	scores, _ = store.TopScores("tetris", 0)
	if len(scores) != 5 {
		t.Errorf("Expected all 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore(ScoreEntry{GameID: "tetris", Player: "first", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "tetris", Player: "second", Score: 100})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first {
		t.Errorf("Earlier game should rank first on a tie, got %+v", scores[0])
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "tetris", 100)
	save(t, store, "tetris", 800)
	save(t, store, "tetris", 300)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 800 {
		t.Errorf("Expected high score of 800, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "tetris", 100)
	save(t, store, "tetris", 200)
	save(t, store, "other", 300)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveScore(ScoreEntry{GameID: "tetris", Score: 100, Lines: 1})
	store.SaveScore(ScoreEntry{GameID: "tetris", Score: 500, Lines: 6})
	store.SaveScore(ScoreEntry{GameID: "tetris", Score: 300, Lines: 3})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 500 {
		t.Errorf("HighScore = %d, expected 500", stats.HighScore)
	}
	if stats.AvgScore != 300 {
		t.Errorf("AvgScore = %f, expected 300", stats.AvgScore)
	}
	if stats.TotalScore != 900 {
		t.Errorf("TotalScore = %d, expected 900", stats.TotalScore)
	}
	if stats.BestLines != 6 || stats.TotalLines != 10 {
		t.Errorf("lines stats = %d/%d, expected 6/10", stats.BestLines, stats.TotalLines)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "tetris", 100)
	save(t, store, "tetris", 200)
	save(t, store, "other", 50)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(all))
	}
	if all["tetris"].GamesCount != 2 || all["tetris"].HighScore != 200 {
		t.Errorf("tetris stats = %+v", all["tetris"])
	}
	if all["other"].TotalScore != 50 {
		t.Errorf("other stats = %+v", all["other"])
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.blockfall/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".blockfall", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
