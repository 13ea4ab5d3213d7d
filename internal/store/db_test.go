package store

import (
	"path/filepath"
	"testing"

	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
)

func setupTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() {
		if cErr := db.Close(); cErr != nil {
			t.Logf("db.Close error: %v", cErr)
		}
	})
	return db, path
}

func reopen(t *testing.T, path string) *DB {
	t.Helper()
	db, err := NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("Failed to reopen db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewSQLiteDB_MigrationsIdempotent(t *testing.T) {
	_, path := setupTestDB(t)
	// Opening the same file again must not re-run migrations destructively.
	db := reopen(t, path)

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM archive"); err != nil {
		t.Fatalf("archive table missing: %v", err)
	}
	if err := db.Get(&count, "SELECT COUNT(*) FROM playlists"); err != nil {
		t.Fatalf("playlists table missing: %v", err)
	}
}

func TestNewTable_UnknownName(t *testing.T) {
	db, _ := setupTestDB(t)
	if _, err := NewTable[domain.Track](db, "tracks; DROP TABLE archive"); err == nil {
		t.Error("Expected error for unknown table name")
	}
}

func TestTable_StoreAndReload(t *testing.T) {
	db, path := setupTestDB(t)

	archive, err := NewTable[domain.Track](db, constants.ArchiveTable)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	archive.Set("ydl//https://x/1", domain.Track{Title: "One", Artist: "A", Locator: "ydl//https://x/1", Duration: 120})
	archive.Set("ydl//https://x/2", domain.Track{Title: "Two", Artist: "A", Locator: "ydl//https://x/2", Duration: 130})
	if err := archive.Store(); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	reloaded, err := NewTable[domain.Track](reopen(t, path), constants.ArchiveTable)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", reloaded.Len())
	}
	keys := reloaded.Keys()
	if keys[0] != "ydl//https://x/1" || keys[1] != "ydl//https://x/2" {
		t.Errorf("Expected insertion order preserved, got %v", keys)
	}
	got, ok := reloaded.Get("ydl//https://x/2")
	if !ok || got.Title != "Two" || got.Duration != 130 {
		t.Errorf("Unexpected entry: %+v %v", got, ok)
	}
}

func TestTable_OverwriteKeepsPosition(t *testing.T) {
	db, path := setupTestDB(t)

	archive, err := NewTable[domain.Track](db, constants.ArchiveTable)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	archive.Set("a", domain.Track{Title: "first"})
	archive.Set("b", domain.Track{Title: "second"})
	archive.Set("a", domain.Track{Title: "first again"})
	if err := archive.Store(); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	if archive.Len() != 2 {
		t.Fatalf("Expected overwrite, not duplicate; len=%d", archive.Len())
	}

	reloaded, err := NewTable[domain.Track](reopen(t, path), constants.ArchiveTable)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	values := reloaded.Values()
	if len(values) != 2 || values[0].Title != "first again" || values[1].Title != "second" {
		t.Errorf("Unexpected values after reload: %+v", values)
	}
}

func TestTable_ClearThenStore(t *testing.T) {
	db, path := setupTestDB(t)

	playlists, err := NewTable[domain.Playlist](db, constants.PlaylistTable)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	playlists.Set("jazz", domain.Playlist{Title: "Jazz (Playlist)"})
	if err := playlists.Store(); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	playlists.Clear()
	playlists.Set("rock", domain.Playlist{Title: "Rock (Playlist)"})
	if err := playlists.Store(); err != nil {
		t.Fatalf("Store after clear failed: %v", err)
	}

	reloaded, err := NewTable[domain.Playlist](reopen(t, path), constants.PlaylistTable)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if keys := reloaded.Keys(); len(keys) != 1 || keys[0] != "rock" {
		t.Errorf("Expected only 'rock' after clear, got %v", keys)
	}
}

func TestTable_UnflushedChangesAreNotPersisted(t *testing.T) {
	db, path := setupTestDB(t)

	archive, err := NewTable[domain.Track](db, constants.ArchiveTable)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	archive.Set("a", domain.Track{Title: "pending"})

	reloaded, err := NewTable[domain.Track](reopen(t, path), constants.ArchiveTable)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.Len() != 0 {
		t.Errorf("Expected nothing persisted before Store, got %d", reloaded.Len())
	}
}

func TestMemoryTable_Items(t *testing.T) {
	m := NewMemoryTable[int]()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("z", 3)

	var keys []string
	for k, v := range m.Items() {
		keys = append(keys, k)
		if v == 2 {
			break
		}
	}
	if len(keys) != 2 || keys[0] != "x" || keys[1] != "y" {
		t.Errorf("Expected early stop after y, got %v", keys)
	}
	if err := m.Store(); err != nil {
		t.Errorf("Memory Store should be a no-op, got %v", err)
	}
}

func TestMemoryTable_ItemsSnapshot(t *testing.T) {
	m := NewMemoryTable[int]()
	m.Set("a", 1)

	count := 0
	for range m.Items() {
		m.Set("b", 2)
		count++
	}
	if count != 1 {
		t.Errorf("Expected snapshot iteration of 1 entry, got %d", count)
	}
	if m.Len() != 2 {
		t.Errorf("Expected set during iteration to land, len=%d", m.Len())
	}
}
