package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "planr.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveState([]byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: data survives and migration does not run again.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	raw, err := s2.LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"a":1}` {
		t.Fatalf("expected saved state after reopen, got %q", raw)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "planr.db" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestPragmasConfigured(t *testing.T) {
	s := newTestStore(t)

	var timeout int
	s.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout)
	if timeout != 5000 {
		t.Fatalf("expected busy_timeout=5000, got %d", timeout)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	// Running migrate again should be a no-op
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Key-value records
// ============================================================

func TestPutGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("theme", "laduree"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("theme", "nocturne"); err != nil {
		t.Fatal(err)
	}
	val, err := s.Get("theme")
	if err != nil {
		t.Fatal(err)
	}
	if val != "nocturne" {
		t.Fatalf("expected upsert to overwrite, got %q", val)
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	s.Put("k", "v")
	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted key to be gone, got %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("deleting a missing key should succeed: %v", err)
	}
}

func TestLoadStateEmpty(t *testing.T) {
	s := newTestStore(t)
	raw, err := s.LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if raw != nil {
		t.Fatalf("expected nil state, got %q", raw)
	}
}

func TestSaveLoadState(t *testing.T) {
	s := newTestStore(t)
	want := `{"schemaVersion": 1}`
	if err := s.SaveState([]byte(want)); err != nil {
		t.Fatal(err)
	}
	raw, err := s.LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != want {
		t.Fatalf("got %q, want %q", raw, want)
	}
	if _, err := s.Get(StateKey); err != nil {
		t.Fatalf("state should live under %q: %v", StateKey, err)
	}
}

func TestBackup(t *testing.T) {
	s := newTestStore(t)
	if err := s.Backup(); err != nil {
		t.Fatalf("backup with no state: %v", err)
	}
	if raw, _ := s.LoadBackup(); raw != nil {
		t.Fatalf("expected no backup, got %q", raw)
	}

	s.SaveState([]byte("old"))
	if err := s.Backup(); err != nil {
		t.Fatal(err)
	}
	s.SaveState([]byte("new"))

	raw, err := s.LoadBackup()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "old" {
		t.Fatalf("expected backup %q, got %q", "old", raw)
	}
}

func TestSaveBackupNilKeepsExisting(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveBackup([]byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveBackup(nil); err != nil {
		t.Fatal(err)
	}
	raw, err := s.LoadBackup()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "first" {
		t.Fatalf("expected backup %q, got %q", "first", raw)
	}
}
